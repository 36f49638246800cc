package mathkeyboard

// InsertText inserts text at the cursor, or appends it to the focused
// placeholder. In document mode the cursor advances past the text.
func (e *Editor) InsertText(text string) {
	defer e.requestFocus()
	if text == "" {
		return
	}
	if ph := e.focused(); ph != nil {
		appendText(ph, text)
		e.commit()
		return
	}
	e.insertTextAt(text)
	e.cursor += UnitLength(Text(text))
	e.commit()
}

func appendText(ph *PlaceholderPart, text string) {
	if n := len(ph.Content); n > 0 {
		if last, ok := ph.Content[n-1].(*TextNode); ok {
			last.Value += text
			return
		}
	}
	ph.Content = append(ph.Content, Text(text))
}

// insertTextAt reuses a text node touching the cursor when there is one.
func (e *Editor) insertTextAt(text string) {
	idx, off := Locate(e.doc, e.cursor)
	if t, ok := e.doc[idx].(*TextNode); ok {
		before, after := splitRunes(t.Value, off)
		t.Value = before + text + after
		return
	}
	if off == 0 {
		if idx > 0 {
			if prev, ok := e.doc[idx-1].(*TextNode); ok {
				prev.Value += text
				return
			}
		}
		e.doc = insertNodes(e.doc, idx, Text(text))
		return
	}
	if idx+1 < len(e.doc) {
		if next, ok := e.doc[idx+1].(*TextNode); ok {
			next.Value = text + next.Value
			return
		}
	}
	e.doc = insertNodes(e.doc, idx+1, Text(text))
}

// InsertTemplate inserts a LaTeX template. With placeholders it becomes a
// structure whose first placeholder takes focus; the cursor stays at the
// insertion point until placeholder mode ends. Without placeholders it is a
// single latex node, appended to the focused placeholder when there is one.
func (e *Editor) InsertTemplate(template string, hasPlaceholders bool) {
	defer e.requestFocus()
	if template == "" {
		return
	}
	if !hasPlaceholders {
		if ph := e.focused(); ph != nil {
			ph.Content = append(ph.Content, Latex(template))
			e.commit()
			return
		}
		e.insertAtomic(Latex(template))
		e.cursor++
		e.commit()
		return
	}

	// Placeholders hold only text and latex, so a new structure always goes
	// to the top level after the one being edited.
	if e.focused() != nil {
		idx := e.active.StructureIndex
		e.active = nil
		e.cursor = offsetAfter(e.doc, idx)
	}
	s := NewStructure(template)
	idx := e.insertAtomic(s)
	if s.PlaceholderCount() > 0 {
		e.active = &ActivePlaceholder{StructureIndex: idx}
	} else {
		e.cursor++
	}
	e.commit()
}

// insertAtomic places a one-unit node at the cursor, splitting a text node
// when needed, and returns its index. A trailing text node is kept so the
// position after the node stays addressable.
func (e *Editor) insertAtomic(n Node) int {
	idx, off := Locate(e.doc, e.cursor)
	if t, ok := e.doc[idx].(*TextNode); ok {
		before, after := splitRunes(t.Value, off)
		var items []Node
		if before != "" {
			items = append(items, Text(before))
		}
		items = append(items, n, Text(after))
		e.doc = replaceNode(e.doc, idx, items...)
		if before != "" {
			return idx + 1
		}
		return idx
	}
	if off == 0 {
		e.doc = insertNodes(e.doc, idx, n)
		return idx
	}
	e.doc = insertNodes(e.doc, idx+1, n, Text(""))
	return idx + 1
}

// Backspace removes the unit before the cursor, or the last rune or latex
// node of the focused placeholder. Latex and structure nodes are removed
// whole. Placeholder mode is kept even when the placeholder empties.
func (e *Editor) Backspace() {
	defer e.requestFocus()
	if ph := e.focused(); ph != nil {
		if trimLast(ph) {
			e.commit()
		}
		return
	}
	if e.cursor == 0 {
		return
	}
	idx, off := Locate(e.doc, e.cursor-1)
	switch n := e.doc[idx].(type) {
	case *TextNode:
		r := []rune(n.Value)
		n.Value = string(r[:off]) + string(r[off+1:])
	case *LatexNode, *StructureNode:
		e.doc = replaceNode(e.doc, idx)
	}
	e.doc = normalize(e.doc)
	e.cursor--
	e.commit()
}

func trimLast(ph *PlaceholderPart) bool {
	n := len(ph.Content)
	if n == 0 {
		return false
	}
	if t, ok := ph.Content[n-1].(*TextNode); ok {
		r := []rune(t.Value)
		if len(r) > 1 {
			t.Value = string(r[:len(r)-1])
			return true
		}
	}
	ph.Content = ph.Content[:n-1]
	return true
}

// MoveCursor shifts the cursor by delta units within the document. It does
// nothing while a placeholder is focused.
func (e *Editor) MoveCursor(delta int) {
	defer e.requestFocus()
	if e.active != nil {
		return
	}
	next := clamp(e.cursor+delta, 0, TotalLength(e.doc))
	if next == e.cursor {
		return
	}
	e.cursor = next
	e.commit()
}

// ClearAll resets the editor to an empty document.
func (e *Editor) ClearAll() {
	defer e.requestFocus()
	e.doc = Document{Text("")}
	e.cursor = 0
	e.active = nil
	e.commit()
}

// Paste forwards attached files to the attachment handler, or inserts the
// text when there are none.
func (e *Editor) Paste(p Payload) {
	e.receive(p)
}

// Drop behaves like Paste.
func (e *Editor) Drop(p Payload) {
	e.receive(p)
}

func (e *Editor) receive(p Payload) {
	if len(p.Files) > 0 {
		if e.onAttachments != nil {
			e.onAttachments(p.Files)
		}
		e.requestFocus()
		return
	}
	if p.Text != "" {
		e.InsertText(p.Text)
	}
}

// normalize drops empty text nodes and merges adjacent ones. The result is
// never empty.
func normalize(doc Document) Document {
	out := doc[:0]
	for _, n := range doc {
		t, ok := n.(*TextNode)
		if !ok {
			out = append(out, n)
			continue
		}
		if t.Value == "" {
			continue
		}
		if len(out) > 0 {
			if prev, ok := out[len(out)-1].(*TextNode); ok {
				prev.Value += t.Value
				continue
			}
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return Document{Text("")}
	}
	return out
}

func insertNodes(doc Document, at int, nodes ...Node) Document {
	out := make(Document, 0, len(doc)+len(nodes))
	out = append(out, doc[:at]...)
	out = append(out, nodes...)
	return append(out, doc[at:]...)
}

func replaceNode(doc Document, at int, nodes ...Node) Document {
	out := make(Document, 0, len(doc)-1+len(nodes))
	out = append(out, doc[:at]...)
	out = append(out, nodes...)
	return append(out, doc[at+1:]...)
}
