package mathkeyboard

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed layouts.yaml
var defaultLayoutsYAML []byte

// KeyDef is one key of the virtual keyboard. Glyph names a drawing the client
// uses instead of text; Width is relative to a standard key.
type KeyDef struct {
	Value   string  `yaml:"value" json:"value"`
	Label   string  `yaml:"label,omitempty" json:"label,omitempty"`
	Display string  `yaml:"display,omitempty" json:"display,omitempty"`
	Glyph   string  `yaml:"glyph,omitempty" json:"glyph,omitempty"`
	Style   string  `yaml:"style,omitempty" json:"style,omitempty"`
	Width   float64 `yaml:"width,omitempty" json:"width"`
}

type Layout struct {
	Label string     `yaml:"label" json:"label"`
	Rows  [][]KeyDef `yaml:"rows" json:"rows"`
}

type Tab struct {
	Label string `yaml:"label" json:"label"`
	Type  string `yaml:"type" json:"type"`
}

// Layouts is the full keyboard chrome: tabs, per-tab key grids, the static
// and operator keys, the digit pad and tooltips.
type Layouts struct {
	Tabs       []Tab             `yaml:"tabs" json:"tabs"`
	Keyboards  map[string]Layout `yaml:"keyboards" json:"keyboards"`
	OpKeys     []KeyDef          `yaml:"op_keys" json:"opKeys"`
	StaticKeys []KeyDef          `yaml:"static_keys" json:"staticKeys"`
	Numpad     [][]KeyDef        `yaml:"numpad" json:"numpad"`
	Tooltips   map[string]string `yaml:"tooltips" json:"tooltips"`
}

// Keys returns every key of every keyboard, op key, static key and digit.
func (l *Layouts) Keys() []KeyDef {
	var keys []KeyDef
	for _, kb := range l.Keyboards {
		for _, row := range kb.Rows {
			keys = append(keys, row...)
		}
	}
	keys = append(keys, l.OpKeys...)
	keys = append(keys, l.StaticKeys...)
	for _, row := range l.Numpad {
		keys = append(keys, row...)
	}
	return keys
}

// ParseLayouts decodes a layouts document and checks that every tab points at
// a defined keyboard.
func ParseLayouts(data []byte) (*Layouts, error) {
	var l Layouts
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("decode layouts: %w", err)
	}
	for _, tab := range l.Tabs {
		if _, ok := l.Keyboards[tab.Type]; !ok {
			return nil, fmt.Errorf("tab %q: unknown keyboard %q", tab.Label, tab.Type)
		}
	}
	applyDefaultWidth(l.OpKeys)
	applyDefaultWidth(l.StaticKeys)
	for _, row := range l.Numpad {
		applyDefaultWidth(row)
	}
	for _, kb := range l.Keyboards {
		for _, row := range kb.Rows {
			applyDefaultWidth(row)
		}
	}
	return &l, nil
}

func applyDefaultWidth(keys []KeyDef) {
	for i := range keys {
		if keys[i].Width == 0 {
			keys[i].Width = 1
		}
	}
}

var (
	defaultLayouts    *Layouts
	defaultLayoutsErr error
	defaultLayoutsOnce  sync.Once
)

// DefaultLayouts returns the built-in keyboard layouts.
func DefaultLayouts() (*Layouts, error) {
	defaultLayoutsOnce.Do(func() {
		defaultLayouts, defaultLayoutsErr = ParseLayouts(defaultLayoutsYAML)
	})
	return defaultLayouts, defaultLayoutsErr
}
