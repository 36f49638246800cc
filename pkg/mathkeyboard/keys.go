package mathkeyboard

import "unicode/utf8"

// Key names as reported by browser keyboard events.
const (
	KeyTab        = "Tab"
	KeyEscape     = "Escape"
	KeyBackspace  = "Backspace"
	KeyEnter      = "Enter"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Static panel actions.
const (
	ActionClearAll  = "מחק הכל"
	ActionBackspace = "⌫"
	ActionUp        = "↑"
	ActionDown      = "↓"
	ActionLeft      = "←"
	ActionRight     = "→"
)

type KeyEvent struct {
	Key   string `json:"key"`
	Shift bool   `json:"shift,omitempty"`
	Ctrl  bool   `json:"ctrl,omitempty"`
	Meta  bool   `json:"meta,omitempty"`
	Alt   bool   `json:"alt,omitempty"`
}

// Printable reports whether the event types a single character.
func (k KeyEvent) Printable() bool {
	return utf8.RuneCountInString(k.Key) == 1 && !k.Ctrl && !k.Meta && !k.Alt
}

// HandleKey applies a physical key press. It returns true when the key was
// consumed and the host should suppress its default action.
func (e *Editor) HandleKey(k KeyEvent) bool {
	handled := k.Printable()
	switch k.Key {
	case KeyBackspace, KeyTab, KeyEscape, KeyArrowLeft, KeyArrowRight, KeyEnter:
		handled = true
	}

	switch {
	case k.Key == KeyTab && k.Shift:
		e.PreviousPlaceholder()
		return handled
	case k.Key == KeyTab:
		e.NextPlaceholder()
		return handled
	case k.Key == KeyEscape:
		e.ExitPlaceholder()
		return handled
	}

	if e.active != nil {
		switch {
		case k.Key == KeyBackspace:
			e.Backspace()
		case k.Printable():
			e.InsertText(k.Key)
		}
		return handled
	}

	switch {
	case k.Key == KeyBackspace:
		e.Backspace()
	case k.Printable():
		e.InsertText(k.Key)
	case k.Key == KeyArrowLeft:
		e.MoveCursor(-1)
	case k.Key == KeyArrowRight:
		e.MoveCursor(1)
	case k.Key == KeyEnter:
		e.InsertText("\n")
	}
	return handled
}

// HandleStaticAction applies a key from the static panel. Values without a
// dedicated action insert themselves as text.
func (e *Editor) HandleStaticAction(value string) {
	switch value {
	case ActionClearAll:
		e.ClearAll()
	case ActionBackspace:
		e.HandleKey(KeyEvent{Key: KeyBackspace})
	case ActionUp, ActionDown:
		e.requestFocus()
	case ActionLeft:
		e.MoveCursor(-1)
	case ActionRight:
		e.MoveCursor(1)
	default:
		e.InsertText(value)
	}
}

// HandleKeyClick applies a virtual keyboard key through KeyToTemplate.
func (e *Editor) HandleKeyClick(value string) {
	m := KeyToTemplate(value)
	switch {
	case m.InsertText != "":
		e.InsertText(m.InsertText)
	case m.Latex != "":
		e.InsertTemplate(m.Latex, m.HasPlaceholders)
	}
}
