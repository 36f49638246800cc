package mathkeyboard

// focused resolves the active placeholder part. It clears a focus that no
// longer points at a placeholder.
func (e *Editor) focused() *PlaceholderPart {
	if e.active == nil {
		return nil
	}
	if e.active.StructureIndex < 0 || e.active.StructureIndex >= len(e.doc) {
		e.active = nil
		return nil
	}
	s, ok := e.doc[e.active.StructureIndex].(*StructureNode)
	if !ok {
		e.active = nil
		return nil
	}
	ph := s.Placeholder(e.active.PlaceholderIndex)
	if ph == nil {
		e.active = nil
	}
	return ph
}

// EnterStructure focuses the first placeholder of the structure nearest the
// cursor: one the cursor touches, else the first one after it, else the last
// one in the document. Nothing happens without structures or while a
// placeholder is already focused.
func (e *Editor) EnterStructure() {
	defer e.requestFocus()
	if e.active != nil {
		return
	}
	idx := e.nearestStructure()
	if idx < 0 {
		return
	}
	e.active = &ActivePlaceholder{StructureIndex: idx}
	e.commit()
}

func (e *Editor) nearestStructure() int {
	start := 0
	for i, n := range e.doc {
		if _, ok := n.(*StructureNode); ok && e.cursor >= start && e.cursor <= start+1 {
			return i
		}
		start += UnitLength(n)
	}
	start = 0
	for i, n := range e.doc {
		if _, ok := n.(*StructureNode); ok && start >= e.cursor {
			return i
		}
		start += UnitLength(n)
	}
	for i := len(e.doc) - 1; i >= 0; i-- {
		if _, ok := e.doc[i].(*StructureNode); ok {
			return i
		}
	}
	return -1
}

// FocusStructure focuses the first placeholder of the structure at index i,
// leaving any current focus. Indices that are not structures are ignored.
func (e *Editor) FocusStructure(i int) {
	defer e.requestFocus()
	if i < 0 || i >= len(e.doc) {
		return
	}
	if _, ok := e.doc[i].(*StructureNode); !ok {
		return
	}
	e.active = &ActivePlaceholder{StructureIndex: i}
	e.commit()
}

// NextPlaceholder moves focus to the following placeholder of the structure,
// leaving placeholder mode after the last one.
func (e *Editor) NextPlaceholder() {
	defer e.requestFocus()
	if e.focused() == nil {
		return
	}
	s := e.doc[e.active.StructureIndex].(*StructureNode)
	if next := e.active.PlaceholderIndex + 1; next < s.PlaceholderCount() {
		e.active.PlaceholderIndex = next
		e.commit()
		return
	}
	e.exitPlaceholder()
}

// PreviousPlaceholder moves focus back one placeholder. It never leaves
// placeholder mode.
func (e *Editor) PreviousPlaceholder() {
	defer e.requestFocus()
	if e.active == nil || e.active.PlaceholderIndex == 0 {
		return
	}
	e.active.PlaceholderIndex--
	e.commit()
}

// ExitPlaceholder leaves placeholder mode with the cursor just past the
// structure that was being edited.
func (e *Editor) ExitPlaceholder() {
	defer e.requestFocus()
	if e.active == nil {
		return
	}
	e.exitPlaceholder()
}

func (e *Editor) exitPlaceholder() {
	idx := e.active.StructureIndex
	e.active = nil
	e.cursor = offsetAfter(e.doc, idx)
	e.commit()
}
