// Package mathkeyboard implements the content model behind the math keyboard
// input: a flat document of text, latex and template structure nodes, a
// rune-based cursor over that document, placeholder focus for editing inside
// templates, and the symbol table that maps virtual keys to LaTeX templates.
//
// An Editor is owned by a single writer. Callers that share one across
// goroutines must serialize access themselves.
package mathkeyboard
