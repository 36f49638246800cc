package mathkeyboard

import "unicode/utf8"

// UnitLength is the number of cursor units a node occupies in the top-level
// stream: one per rune of text, one for any latex or structure node.
func UnitLength(n Node) int {
	switch v := n.(type) {
	case *TextNode:
		return utf8.RuneCountInString(v.Value)
	case *LatexNode, *StructureNode:
		return 1
	}
	return 0
}

// TotalLength is the number of addressable units in the document.
func TotalLength(doc Document) int {
	total := 0
	for _, n := range doc {
		total += UnitLength(n)
	}
	return total
}

// Locate maps a cursor position to a node index and an offset inside that
// node. A position on a boundary resolves to offset 0 of the node starting
// there; the end of the document resolves to the end of the last node.
// Positions outside [0, TotalLength] are clamped.
func Locate(doc Document, pos int) (index, offset int) {
	if len(doc) == 0 {
		return 0, 0
	}
	if pos < 0 {
		pos = 0
	}
	start := 0
	for i, n := range doc {
		l := UnitLength(n)
		if pos < start+l {
			return i, pos - start
		}
		start += l
	}
	last := len(doc) - 1
	return last, UnitLength(doc[last])
}

// offsetAfter returns the cursor position just past node i.
func offsetAfter(doc Document, i int) int {
	pos := 0
	for j := 0; j <= i && j < len(doc); j++ {
		pos += UnitLength(doc[j])
	}
	return pos
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// splitRunes cuts s at a rune offset.
func splitRunes(s string, at int) (string, string) {
	r := []rune(s)
	at = clamp(at, 0, len(r))
	return string(r[:at]), string(r[at:])
}
