package mathkeyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayouts(t *testing.T) {
	l, err := DefaultLayouts()
	require.NoError(t, err)

	require.Len(t, l.Tabs, 4)
	assert.Equal(t, "basic", l.Tabs[0].Type)
	for _, name := range []string{"basic", "geometry", "hebrew", "english", "logic", "differential", "others"} {
		assert.Contains(t, l.Keyboards, name)
	}

	require.Len(t, l.StaticKeys, 2)
	assert.Equal(t, "\n", l.StaticKeys[1].Value)
	assert.Equal(t, `\mathbb{N}`, l.Keyboards["geometry"].Rows[4][0].Value)
	assert.Equal(t, `f"(x)`, l.Keyboards["basic"].Rows[7][2].Value)
	assert.Equal(t, 2.0, l.Numpad[3][0].Width)
	assert.Equal(t, 1.0, l.Numpad[3][1].Width)
}

func TestTooltipsReferenceKeys(t *testing.T) {
	l, err := DefaultLayouts()
	require.NoError(t, err)

	values := map[string]bool{}
	for _, k := range l.Keys() {
		values[k.Value] = true
	}
	for key := range l.Tooltips {
		assert.True(t, values[key], "tooltip for unknown key %q", key)
	}
}

func TestEveryKeyProducesInput(t *testing.T) {
	l, err := DefaultLayouts()
	require.NoError(t, err)

	for _, k := range l.Keys() {
		e := NewEditor()
		e.HandleKeyClick(k.Value)
		assert.NotEmpty(t, e.Value(), "key %q", k.Value)
	}
}

func TestParseLayoutsRejectsUnknownTab(t *testing.T) {
	_, err := ParseLayouts([]byte("tabs:\n  - {label: x, type: missing}\nkeyboards: {}\n"))
	assert.Error(t, err)
}
