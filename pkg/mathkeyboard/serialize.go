package mathkeyboard

import "strings"

// Serialize flattens the document to LaTeX source. Which spans came from
// templates is not recoverable from the result.
func Serialize(doc Document) string {
	var b strings.Builder
	for _, n := range doc {
		writeNode(&b, n)
	}
	return b.String()
}

// SerializeNode flattens a single node.
func SerializeNode(n Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

// SerializeLeaves flattens placeholder content.
func SerializeLeaves(content []Leaf) string {
	var b strings.Builder
	for _, l := range content {
		writeNode(&b, l)
	}
	return b.String()
}

func writeNode(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case *TextNode:
		b.WriteString(v.Value)
	case *LatexNode:
		b.WriteString(v.Value)
	case *StructureNode:
		for _, p := range v.Parts {
			switch pv := p.(type) {
			case *StaticPart:
				b.WriteString(pv.Value)
			case *PlaceholderPart:
				for _, l := range pv.Content {
					writeNode(b, l)
				}
			}
		}
	}
}

// Hydrate builds a document holding s as a single text node. Structure is
// never reconstructed from LaTeX source.
func Hydrate(s string) Document {
	return Document{Text(s)}
}
