package mathkeyboard

// Markers drawn for placeholders in rendered LaTeX.
const (
	activeEmptyMarker   = `\underline{\;\;}`
	inactiveEmptyMarker = `\boxed{\;}`
)

// Segment is one display unit of a rendered document.
type Segment struct {
	Kind      string `json:"kind"`
	Value     string `json:"value"`
	NodeIndex int    `json:"nodeIndex"`
	Active    bool   `json:"active,omitempty"`
}

// RenderStructure draws the structure at index i. The focused placeholder is
// underlined, empty ones show a slot marker and filled ones show their
// content.
func (e *Editor) RenderStructure(i int) string {
	if i < 0 || i >= len(e.doc) {
		return ""
	}
	s, ok := e.doc[i].(*StructureNode)
	if !ok {
		return ""
	}
	var out string
	for _, p := range s.Parts {
		switch v := p.(type) {
		case *StaticPart:
			out += v.Value
		case *PlaceholderPart:
			active := e.active != nil && e.active.StructureIndex == i && e.active.PlaceholderIndex == v.Index
			out += renderPlaceholder(SerializeLeaves(v.Content), active)
		}
	}
	return out
}

func renderPlaceholder(content string, active bool) string {
	switch {
	case content != "" && active:
		return `\underline{` + content + `}`
	case active:
		return activeEmptyMarker
	case content == "":
		return inactiveEmptyMarker
	}
	return content
}

// Render returns the document as display segments, one per node. Empty text
// nodes are skipped.
func (e *Editor) Render() []Segment {
	segments := make([]Segment, 0, len(e.doc))
	for i, n := range e.doc {
		switch v := n.(type) {
		case *TextNode:
			if v.Value == "" {
				continue
			}
			segments = append(segments, Segment{Kind: KindText, Value: v.Value, NodeIndex: i})
		case *LatexNode:
			segments = append(segments, Segment{Kind: KindLatex, Value: v.Value, NodeIndex: i})
		case *StructureNode:
			segments = append(segments, Segment{
				Kind:      KindStructure,
				Value:     e.RenderStructure(i),
				NodeIndex: i,
				Active:    e.active != nil && e.active.StructureIndex == i,
			})
		}
	}
	return segments
}
