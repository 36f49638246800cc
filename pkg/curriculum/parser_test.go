package curriculum

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const outline = `# 3-10
## אלגברה
### משוואות ריבועיות
### אי-שוויונים

## גאומטריה
### משולשים

some stray paragraph
# 5-12
## חשבון דיפרנציאלי
### נגזרות
`

func TestParse(t *testing.T) {
	units, err := Parse(strings.NewReader(outline))
	require.NoError(t, err)
	require.Len(t, units, 2)

	assert.Equal(t, "3", units[0].Level)
	assert.Equal(t, "10", units[0].Grade)
	require.Len(t, units[0].MainTopics, 2)
	assert.Equal(t, "אלגברה", units[0].MainTopics[0].Name)
	assert.Equal(t, []string{"משוואות ריבועיות", "אי-שוויונים"}, units[0].MainTopics[0].Subtopics)
	assert.Equal(t, []string{"משולשים"}, units[0].MainTopics[1].Subtopics)

	assert.Equal(t, "5", units[1].Level)
	assert.Equal(t, []string{"נגזרות"}, units[1].MainTopics[0].Subtopics)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"main topic before unit", "## אלגברה\n"},
		{"subtopic before main topic", "# 4-11\n### נגזרות\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	units, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, units)
}
