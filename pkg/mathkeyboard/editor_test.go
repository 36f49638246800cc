package mathkeyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(doc Document) []string {
	out := make([]string, len(doc))
	for i, n := range doc {
		out[i] = n.Kind()
	}
	return out
}

func TestInsertFractionAfterText(t *testing.T) {
	var changes []string
	e := NewEditor(WithValue("x="), WithOnChange(func(v string) { changes = append(changes, v) }))
	require.Equal(t, 2, e.Cursor())

	e.InsertTemplate(`\frac{@}{@}`, true)

	doc := e.Document()
	require.Equal(t, []string{KindText, KindStructure, KindText}, kinds(doc))
	assert.Equal(t, "x=", doc[0].(*TextNode).Value)
	assert.Equal(t, "", doc[2].(*TextNode).Value)

	s := doc[1].(*StructureNode)
	assert.Equal(t, 2, s.PlaceholderCount())
	require.Len(t, s.Parts, 5)
	assert.Equal(t, `\frac{`, s.Parts[0].(*StaticPart).Value)
	assert.Equal(t, 0, s.Parts[1].(*PlaceholderPart).Index)
	assert.Equal(t, `}{`, s.Parts[2].(*StaticPart).Value)
	assert.Equal(t, 1, s.Parts[3].(*PlaceholderPart).Index)
	assert.Equal(t, `}`, s.Parts[4].(*StaticPart).Value)

	active, ok := e.Active()
	require.True(t, ok)
	assert.Equal(t, ActivePlaceholder{StructureIndex: 1, PlaceholderIndex: 0}, active)
	assert.Equal(t, `x=\frac{}{}`, e.Value())
	assert.Equal(t, []string{`x=\frac{}{}`}, changes)
}

func TestFillFractionAndContinue(t *testing.T) {
	e := NewEditor(WithValue("x="))
	e.InsertTemplate(`\frac{@}{@}`, true)

	e.InsertText("1")
	e.HandleKey(KeyEvent{Key: KeyTab})
	e.InsertText("2")
	assert.Equal(t, 2, e.Cursor(), "cursor is frozen in placeholder mode")

	e.HandleKey(KeyEvent{Key: KeyTab})
	assert.False(t, e.InPlaceholder())
	assert.Equal(t, 3, e.Cursor())

	e.InsertText("+")
	assert.Equal(t, `x=\frac{1}{2}+`, e.Value())
	assert.Equal(t, 4, e.Cursor())
}

func TestBackspaceRemovesWholeStructure(t *testing.T) {
	e := NewEditor(WithValue("ab"))
	e.MoveCursor(-1)
	e.InsertTemplate(`\sqrt{@}`, true)
	e.InsertText("9")
	e.ExitPlaceholder()

	require.Equal(t, []string{KindText, KindStructure, KindText}, kinds(e.Document()))
	require.Equal(t, 2, e.Cursor())

	e.Backspace()

	assert.Equal(t, 1, e.Cursor())
	assert.Equal(t, "ab", e.Value())
	assert.Equal(t, Document{Text("ab")}, e.Document())
}

func TestBackspaceRemovesWholeLatex(t *testing.T) {
	e := NewEditor(WithValue("ab"))
	e.MoveCursor(-1)
	e.HandleKeyClick("π")

	assert.Equal(t, `a\pib`, e.Value())
	assert.Equal(t, 2, e.Cursor())

	e.Backspace()
	assert.Equal(t, "ab", e.Value())
	assert.Equal(t, 1, e.Cursor())
	assert.Len(t, e.Document(), 1)
}

func TestBackspaceAtStartIsNoop(t *testing.T) {
	e := NewEditor(WithValue("ab"))
	e.MoveCursor(-5)
	v := e.Version()

	e.Backspace()

	assert.Equal(t, "ab", e.Value())
	assert.Equal(t, 0, e.Cursor())
	assert.Equal(t, v, e.Version())
}

func TestBackspaceKeepsSentinel(t *testing.T) {
	e := NewEditor(WithValue("a"))
	e.Backspace()

	assert.Equal(t, Document{Text("")}, e.Document())
	assert.Equal(t, 0, e.Cursor())
}

func TestPlaceholderNavigation(t *testing.T) {
	e := NewEditor()
	e.HandleKeyClick("lim_x_to_x")

	active, _ := e.Active()
	assert.Equal(t, 0, active.PlaceholderIndex)

	e.PreviousPlaceholder()
	active, ok := e.Active()
	require.True(t, ok, "previous at index 0 keeps placeholder mode")
	assert.Equal(t, 0, active.PlaceholderIndex)

	e.NextPlaceholder()
	active, _ = e.Active()
	assert.Equal(t, 1, active.PlaceholderIndex)

	e.NextPlaceholder()
	active, _ = e.Active()
	assert.Equal(t, 2, active.PlaceholderIndex)

	e.HandleKey(KeyEvent{Key: KeyTab, Shift: true})
	active, _ = e.Active()
	assert.Equal(t, 1, active.PlaceholderIndex)

	e.NextPlaceholder()
	e.NextPlaceholder()
	assert.False(t, e.InPlaceholder())
	assert.Equal(t, 1, e.Cursor())
}

func TestPlaceholderBackspace(t *testing.T) {
	e := NewEditor()
	e.HandleKeyClick("──")
	e.InsertText("12")
	e.HandleKeyClick("π")
	assert.Equal(t, `\frac{12\pi}{}`, e.Value())

	e.Backspace()
	assert.Equal(t, `\frac{12}{}`, e.Value())
	e.Backspace()
	e.Backspace()
	assert.Equal(t, `\frac{}{}`, e.Value())

	e.Backspace()
	assert.True(t, e.InPlaceholder())
	assert.Equal(t, `\frac{}{}`, e.Value())
}

func TestPlaceholderModeIgnoresArrows(t *testing.T) {
	e := NewEditor(WithValue("ab"))
	e.HandleKeyClick("√")
	cursor := e.Cursor()

	assert.True(t, e.HandleKey(KeyEvent{Key: KeyArrowLeft}))
	assert.Equal(t, cursor, e.Cursor())
	assert.True(t, e.InPlaceholder())
}

func TestTemplateInsidePlaceholderGoesToTopLevel(t *testing.T) {
	e := NewEditor(WithValue("x="))
	e.HandleKeyClick("──")
	e.InsertText("1")

	e.HandleKeyClick("√")

	require.Equal(t, []string{KindText, KindStructure, KindStructure, KindText}, kinds(e.Document()))
	active, ok := e.Active()
	require.True(t, ok)
	assert.Equal(t, ActivePlaceholder{StructureIndex: 2, PlaceholderIndex: 0}, active)
	assert.Equal(t, `x=\frac{1}{}\sqrt{}`, e.Value())
}

func TestInsertTextBeforeStructure(t *testing.T) {
	e := NewEditor()
	e.HandleKeyClick("^")
	e.ExitPlaceholder()
	require.Equal(t, 1, e.Cursor())

	e.MoveCursor(-1)
	e.InsertText("x")

	assert.Equal(t, "x^{}", e.Value())
	assert.Equal(t, 1, e.Cursor())
	assert.Equal(t, []string{KindText, KindStructure, KindText}, kinds(e.Document()))
}

func TestInsertTextCountsRunes(t *testing.T) {
	e := NewEditor()
	e.InsertText("שלום")
	assert.Equal(t, 4, e.Cursor())

	e.MoveCursor(-2)
	e.InsertText("π")
	assert.Equal(t, "שלπום", e.Value())
	assert.Equal(t, 3, e.Cursor())
}

func TestEnterStructure(t *testing.T) {
	e := NewEditor(WithValue("abcd"))
	e.MoveCursor(-2)
	e.HandleKeyClick("^")
	e.ExitPlaceholder()
	e.MoveCursor(2)
	e.HandleKeyClick("□▖")
	e.ExitPlaceholder()
	require.Equal(t, []string{KindText, KindStructure, KindText, KindStructure, KindText}, kinds(e.Document()))
	require.Equal(t, 6, e.Cursor())

	e.EnterStructure()
	active, _ := e.Active()
	assert.Equal(t, 3, active.StructureIndex, "adjacent structure wins")

	e.ExitPlaceholder()
	e.MoveCursor(-6)
	e.EnterStructure()
	active, _ = e.Active()
	assert.Equal(t, 1, active.StructureIndex, "first structure after the cursor")
}

func TestEnterStructureFallsBackToLast(t *testing.T) {
	e := NewEditor()
	e.HandleKeyClick("√")
	e.ExitPlaceholder()
	e.InsertText("abc")
	require.Equal(t, 4, e.Cursor())

	e.EnterStructure()
	active, ok := e.Active()
	require.True(t, ok)
	assert.Equal(t, 0, active.StructureIndex)
}

func TestEnterStructureWithoutStructures(t *testing.T) {
	e := NewEditor(WithValue("abc"))
	e.EnterStructure()
	assert.False(t, e.InPlaceholder())
}

func TestFocusStructure(t *testing.T) {
	e := NewEditor(WithValue("a"))
	e.HandleKeyClick("──")
	e.ExitPlaceholder()

	e.FocusStructure(0)
	assert.False(t, e.InPlaceholder())

	e.FocusStructure(1)
	active, ok := e.Active()
	require.True(t, ok)
	assert.Equal(t, ActivePlaceholder{StructureIndex: 1}, active)
}

func TestClearAll(t *testing.T) {
	e := NewEditor(WithValue("abc"))
	e.HandleKeyClick("──")

	e.HandleStaticAction(ActionClearAll)

	assert.Equal(t, Document{Text("")}, e.Document())
	assert.Equal(t, 0, e.Cursor())
	assert.False(t, e.InPlaceholder())
	assert.Equal(t, "", e.Value())
}

func TestMoveCursorClamps(t *testing.T) {
	e := NewEditor(WithValue("ab"))
	e.MoveCursor(5)
	assert.Equal(t, 2, e.Cursor())
	e.HandleStaticAction(ActionLeft)
	e.HandleStaticAction(ActionLeft)
	e.HandleStaticAction(ActionLeft)
	assert.Equal(t, 0, e.Cursor())
	e.HandleStaticAction(ActionRight)
	assert.Equal(t, 1, e.Cursor())
}

func TestExternalValueSync(t *testing.T) {
	var changes []string
	e := NewEditor(WithOnChange(func(v string) { changes = append(changes, v) }))

	e.InsertText("ab")
	assert.False(t, e.SetValue("ab"), "own value is not re-hydrated")

	e.HandleKeyClick("──")
	assert.True(t, e.SetValue(""))
	assert.Equal(t, Document{Text("")}, e.Document())
	assert.False(t, e.InPlaceholder())

	assert.True(t, e.SetValue(`\frac{1}{2}`))
	assert.Equal(t, 11, e.Cursor())
	assert.Len(t, e.Document(), 1, "structure is not rebuilt from source")

	assert.Equal(t, []string{"ab", `ab\frac{}{}`}, changes)
}

func TestChangeCallbackOnlyOnNewValue(t *testing.T) {
	calls := 0
	e := NewEditor(WithValue("ab"), WithOnChange(func(string) { calls++ }))

	e.MoveCursor(-1)
	e.HandleKey(KeyEvent{Key: KeyArrowRight})
	e.HandleStaticAction(ActionUp)
	assert.Equal(t, 0, calls)

	e.HandleKey(KeyEvent{Key: "c"})
	assert.Equal(t, 1, calls)
}

func TestHandleKey(t *testing.T) {
	e := NewEditor()

	assert.True(t, e.HandleKey(KeyEvent{Key: "a"}))
	assert.False(t, e.HandleKey(KeyEvent{Key: "c", Ctrl: true}))
	assert.False(t, e.HandleKey(KeyEvent{Key: "Shift"}))
	assert.True(t, e.HandleKey(KeyEvent{Key: KeyEnter}))
	assert.Equal(t, "a\n", e.Value())

	assert.True(t, e.HandleKey(KeyEvent{Key: KeyBackspace}))
	assert.Equal(t, "a", e.Value())
	assert.True(t, e.HandleKey(KeyEvent{Key: KeyEscape}))
}

func TestStaticActions(t *testing.T) {
	e := NewEditor()
	e.HandleStaticAction("5")
	e.HandleStaticAction(" ")
	e.HandleStaticAction("=")
	e.HandleStaticAction("\n")
	assert.Equal(t, "5 =\n", e.Value())

	e.HandleStaticAction(ActionBackspace)
	assert.Equal(t, "5 =", e.Value())

	e.TakeFocusRequest()
	e.HandleStaticAction(ActionDown)
	assert.True(t, e.TakeFocusRequest())
	assert.False(t, e.TakeFocusRequest())
}

func TestPasteAndDrop(t *testing.T) {
	var got []Attachment
	e := NewEditor(WithAttachmentHandler(func(files []Attachment) { got = append(got, files...) }))

	e.Paste(Payload{Text: "ignored", Files: []Attachment{{Name: "q.png", MimeType: "image/png"}}})
	assert.Equal(t, "", e.Value())
	require.Len(t, got, 1)
	assert.Equal(t, "q.png", got[0].Name)

	e.Drop(Payload{Text: "x+1"})
	assert.Equal(t, "x+1", e.Value())
	assert.Equal(t, 3, e.Cursor())

	e.HandleKeyClick("√")
	e.Paste(Payload{Text: "2"})
	assert.Equal(t, `x+1\sqrt{2}`, e.Value())
}

func TestRenderPlaceholderStates(t *testing.T) {
	e := NewEditor()
	e.HandleKeyClick("──")
	assert.Equal(t, `\frac{\underline{\;\;}}{\boxed{\;}}`, e.RenderStructure(0))

	e.InsertText("1")
	assert.Equal(t, `\frac{\underline{1}}{\boxed{\;}}`, e.RenderStructure(0))

	e.NextPlaceholder()
	assert.Equal(t, `\frac{1}{\underline{\;\;}}`, e.RenderStructure(0))

	e.NextPlaceholder()
	assert.Equal(t, `\frac{1}{\boxed{\;}}`, e.RenderStructure(0))
	assert.Equal(t, "", e.RenderStructure(1))
}

func TestSnapshot(t *testing.T) {
	e := NewEditor(WithValue("a="))
	e.HandleKeyClick("√")
	e.InsertText("2")

	snap := e.Snapshot()
	assert.Equal(t, `a=\sqrt{2}`, snap.Value)
	assert.Equal(t, 3, snap.TotalLength)
	assert.True(t, snap.HasStructures)
	assert.False(t, snap.IsEmpty)
	require.NotNil(t, snap.Active)
	assert.Equal(t, 1, snap.Active.StructureIndex)
	require.Len(t, snap.Segments, 2)
	assert.Equal(t, Segment{Kind: KindStructure, Value: `\sqrt{\underline{2}}`, NodeIndex: 1, Active: true}, snap.Segments[1])

	snap.Document[0].(*TextNode).Value = "changed"
	assert.Equal(t, `a=\sqrt{2}`, e.Value(), "snapshot does not alias editor state")
}
