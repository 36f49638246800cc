package mathkeyboard

// ActivePlaceholder identifies the placeholder that has editing focus.
type ActivePlaceholder struct {
	StructureIndex   int `json:"structureIndex"`
	PlaceholderIndex int `json:"placeholderIndex"`
}

// Attachment is a file carried by a paste or drop. The editor never inspects
// its contents.
type Attachment struct {
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Data     []byte `json:"-"`
}

// Payload is the data of a paste or drop event.
type Payload struct {
	Text  string       `json:"text"`
	Files []Attachment `json:"files"`
}

type Option func(*Editor)

// WithOnChange registers the callback receiving the serialized value after
// edits that change it.
func WithOnChange(fn func(value string)) Option {
	return func(e *Editor) {
		e.onChange = fn
	}
}

// WithAttachmentHandler registers the receiver of pasted or dropped files.
func WithAttachmentHandler(fn func(files []Attachment)) Option {
	return func(e *Editor) {
		e.onAttachments = fn
	}
}

// WithValue starts the editor hydrated from v without reporting a change.
func WithValue(v string) Option {
	return func(e *Editor) {
		e.hydrate(v)
	}
}

// Editor holds one document, its cursor and placeholder focus.
type Editor struct {
	doc       Document
	cursor    int
	active    *ActivePlaceholder
	lastValue string
	version   uint64
	focus     bool

	onChange      func(string)
	onAttachments func([]Attachment)
}

func NewEditor(opts ...Option) *Editor {
	e := &Editor{doc: Document{Text("")}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Document returns a copy of the current document.
func (e *Editor) Document() Document { return e.doc.Clone() }

func (e *Editor) Cursor() int      { return e.cursor }
func (e *Editor) Value() string    { return e.lastValue }
func (e *Editor) Version() uint64  { return e.version }
func (e *Editor) TotalLength() int { return TotalLength(e.doc) }

// Active returns the focused placeholder, if any.
func (e *Editor) Active() (ActivePlaceholder, bool) {
	if e.active == nil {
		return ActivePlaceholder{}, false
	}
	return *e.active, true
}

// InPlaceholder reports whether edits currently target a placeholder.
func (e *Editor) InPlaceholder() bool { return e.active != nil }

// HasStructures reports whether the document contains any template.
func (e *Editor) HasStructures() bool {
	for _, n := range e.doc {
		if _, ok := n.(*StructureNode); ok {
			return true
		}
	}
	return false
}

// TakeFocusRequest reports whether the input should be refocused after the
// last render and clears the request.
func (e *Editor) TakeFocusRequest() bool {
	f := e.focus
	e.focus = false
	return f
}

// SetValue syncs the editor with an externally bound value. Values the editor
// produced itself are ignored; anything else replaces the document with plain
// text and moves the cursor to its end. The change callback is not invoked.
func (e *Editor) SetValue(v string) bool {
	if v == e.lastValue {
		return false
	}
	e.hydrate(v)
	e.version++
	return true
}

func (e *Editor) hydrate(v string) {
	e.doc = Hydrate(v)
	e.cursor = TotalLength(e.doc)
	e.active = nil
	e.lastValue = v
}

func (e *Editor) requestFocus() { e.focus = true }

// commit runs after every mutation and reports the new value only when it
// differs from the last one seen.
func (e *Editor) commit() {
	e.version++
	e.cursor = clamp(e.cursor, 0, TotalLength(e.doc))
	v := Serialize(e.doc)
	if v == e.lastValue {
		return
	}
	e.lastValue = v
	if e.onChange != nil {
		e.onChange(v)
	}
}
