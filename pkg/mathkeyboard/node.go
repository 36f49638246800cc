package mathkeyboard

import "encoding/json"

// Node kinds as they appear on the wire.
const (
	KindText        = "text"
	KindLatex       = "latex"
	KindStructure   = "structure"
	KindStatic      = "static"
	KindPlaceholder = "placeholder"
)

// Node is one element of a Document: *TextNode, *LatexNode or *StructureNode.
type Node interface {
	Kind() string
	node()
}

// Leaf is a node allowed inside a placeholder: *TextNode or *LatexNode.
type Leaf interface {
	Node
	leaf()
}

// Part is one segment of a StructureNode: *StaticPart or *PlaceholderPart.
type Part interface {
	Kind() string
	part()
}

type TextNode struct {
	Value string
}

type LatexNode struct {
	Value string
}

// StructureNode is an inserted template. Its parts keep the shape parsed from
// Template for the lifetime of the node.
type StructureNode struct {
	Template string
	Parts    []Part
}

type StaticPart struct {
	Value string
}

type PlaceholderPart struct {
	Index   int
	Content []Leaf
}

// Document is the ordered top-level sequence edited by an Editor.
type Document []Node

func Text(v string) *TextNode   { return &TextNode{Value: v} }
func Latex(v string) *LatexNode { return &LatexNode{Value: v} }

func (*TextNode) Kind() string      { return KindText }
func (*LatexNode) Kind() string     { return KindLatex }
func (*StructureNode) Kind() string { return KindStructure }
func (*StaticPart) Kind() string    { return KindStatic }

func (*PlaceholderPart) Kind() string { return KindPlaceholder }

func (*TextNode) node()      {}
func (*LatexNode) node()     {}
func (*StructureNode) node() {}

func (*TextNode) leaf()  {}
func (*LatexNode) leaf() {}

func (*StaticPart) part()      {}
func (*PlaceholderPart) part() {}

// Placeholder returns the part with the given stable index, or nil.
func (s *StructureNode) Placeholder(index int) *PlaceholderPart {
	for _, p := range s.Parts {
		if ph, ok := p.(*PlaceholderPart); ok && ph.Index == index {
			return ph
		}
	}
	return nil
}

// PlaceholderCount reports how many placeholder parts the structure has.
func (s *StructureNode) PlaceholderCount() int {
	n := 0
	for _, p := range s.Parts {
		if _, ok := p.(*PlaceholderPart); ok {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for i, n := range d {
		out[i] = cloneNode(n)
	}
	return out
}

func cloneNode(n Node) Node {
	switch v := n.(type) {
	case *TextNode:
		return Text(v.Value)
	case *LatexNode:
		return Latex(v.Value)
	case *StructureNode:
		parts := make([]Part, len(v.Parts))
		for i, p := range v.Parts {
			switch pv := p.(type) {
			case *StaticPart:
				parts[i] = &StaticPart{Value: pv.Value}
			case *PlaceholderPart:
				content := make([]Leaf, len(pv.Content))
				for j, l := range pv.Content {
					content[j] = cloneNode(l).(Leaf)
				}
				parts[i] = &PlaceholderPart{Index: pv.Index, Content: content}
			}
		}
		return &StructureNode{Template: v.Template, Parts: parts}
	}
	return nil
}

type leafJSON struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func (n *TextNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(leafJSON{Type: KindText, Value: n.Value})
}

func (n *LatexNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(leafJSON{Type: KindLatex, Value: n.Value})
}

func (n *StructureNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string `json:"type"`
		Template string `json:"template"`
		Parts    []Part `json:"parts"`
	}{KindStructure, n.Template, n.Parts})
}

func (p *StaticPart) MarshalJSON() ([]byte, error) {
	return json.Marshal(leafJSON{Type: KindStatic, Value: p.Value})
}

func (p *PlaceholderPart) MarshalJSON() ([]byte, error) {
	content := p.Content
	if content == nil {
		content = []Leaf{}
	}
	return json.Marshal(struct {
		Type    string `json:"type"`
		Index   int    `json:"index"`
		Content []Leaf `json:"content"`
	}{KindPlaceholder, p.Index, content})
}
