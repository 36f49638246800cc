package mathkeyboard

import "strings"

// PlaceholderMarker marks an editable slot in a template string.
const PlaceholderMarker = '@'

// ParseTemplate splits a template into static and placeholder parts.
// Placeholders are numbered from 0 in order of appearance.
func ParseTemplate(template string) []Part {
	var (
		parts   []Part
		current strings.Builder
		next    int
	)
	flush := func() {
		if current.Len() > 0 {
			parts = append(parts, &StaticPart{Value: current.String()})
			current.Reset()
		}
	}
	for _, r := range template {
		if r != PlaceholderMarker {
			current.WriteRune(r)
			continue
		}
		flush()
		parts = append(parts, &PlaceholderPart{Index: next})
		next++
	}
	flush()
	return parts
}

// NewStructure instantiates a template as a structure node.
func NewStructure(template string) *StructureNode {
	return &StructureNode{Template: template, Parts: ParseTemplate(template)}
}
