package websocket

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"numero-be/internal/dto"
	"numero-be/pkg/mathkeyboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeFrame(t *testing.T, raw []byte) (string, json.RawMessage) {
	t.Helper()
	var frame struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &frame))
	return frame.Type, frame.Data
}

func TestApplyBuildsFraction(t *testing.T) {
	e := mathkeyboard.NewEditor()
	cmds := []dto.EditorCommand{
		{Type: CmdKeyClick, Value: "──"},
		{Type: CmdKey, Key: "1"},
		{Type: CmdKey, Key: "Tab"},
		{Type: CmdKey, Key: "2"},
		{Type: CmdKey, Key: "Escape"},
		{Type: CmdStatic, Value: "+"},
	}
	for _, c := range cmds {
		require.NoError(t, Apply(e, c))
	}

	assert.Equal(t, `\frac{1}{2}+`, e.Value())
	assert.False(t, e.InPlaceholder())
}

func TestApplyCommands(t *testing.T) {
	tests := []struct {
		name string
		cmds []dto.EditorCommand
		want string
	}{
		{"move then type", []dto.EditorCommand{{Type: CmdSetValue, Value: "ac"}, {Type: CmdMove, Delta: -1}, {Type: CmdKey, Key: "b"}}, "abc"},
		{"clear", []dto.EditorCommand{{Type: CmdSetValue, Value: "abc"}, {Type: CmdClear}}, ""},
		{"paste text", []dto.EditorCommand{{Type: CmdPaste, Text: "x²"}}, "x²"},
		{"function key", []dto.EditorCommand{{Type: CmdKeyClick, Value: "sin("}, {Type: CmdKey, Key: "x"}}, `\sin\left(x\right)`},
		{"backspace action", []dto.EditorCommand{{Type: CmdSetValue, Value: "ab"}, {Type: CmdStatic, Value: mathkeyboard.ActionBackspace}}, "a"},
		{"re-enter structure", []dto.EditorCommand{
			{Type: CmdKeyClick, Value: "√"},
			{Type: CmdExitPlaceholder},
			{Type: CmdFocusStructure, Index: 0},
			{Type: CmdKey, Key: "2"},
		}, `\sqrt{2}`},
		{"placeholder cycling", []dto.EditorCommand{
			{Type: CmdKeyClick, Value: "──"},
			{Type: CmdNextPlaceholder},
			{Type: CmdKey, Key: "b"},
			{Type: CmdPrevPlaceholder},
			{Type: CmdKey, Key: "a"},
		}, `\frac{a}{b}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mathkeyboard.NewEditor()
			for _, c := range tt.cmds {
				require.NoError(t, Apply(e, c))
			}
			assert.Equal(t, tt.want, mathkeyboard.Serialize(e.Document()))
		})
	}
}

func TestApplyErrors(t *testing.T) {
	e := mathkeyboard.NewEditor()

	var unknown *ErrUnknownCommand
	assert.ErrorAs(t, Apply(e, dto.EditorCommand{Type: "explode"}), &unknown)

	err := Apply(e, dto.EditorCommand{Type: CmdDrop, Files: []dto.AttachmentDTO{{Name: "a.png", Data: "%%%"}}})
	assert.ErrorContains(t, err, "invalid base64")
}

func TestSessionHandle(t *testing.T) {
	s := NewSession("")

	frames := s.Handle([]byte(`{"type":"key","key":"x"}`))
	require.Len(t, frames, 2)

	typ, data := decodeFrame(t, frames[0])
	assert.Equal(t, MsgValueChanged, typ)
	assert.JSONEq(t, `{"value":"x"}`, string(data))

	typ, data = decodeFrame(t, frames[1])
	assert.Equal(t, MsgEditorState, typ)
	var state struct {
		Snapshot struct {
			Value  string `json:"value"`
			Cursor int    `json:"cursor"`
		} `json:"snapshot"`
		RequestFocus bool `json:"requestFocus"`
	}
	require.NoError(t, json.Unmarshal(data, &state))
	assert.Equal(t, "x", state.Snapshot.Value)
	assert.Equal(t, 1, state.Snapshot.Cursor)
	assert.True(t, state.RequestFocus)

	// Navigation that changes nothing reports state only.
	frames = s.Handle([]byte(`{"type":"move","delta":-1}`))
	require.Len(t, frames, 1)
}

func TestSessionHandleErrors(t *testing.T) {
	s := NewSession("")

	frames := s.Handle([]byte(`not json`))
	require.Len(t, frames, 1)
	typ, _ := decodeFrame(t, frames[0])
	assert.Equal(t, MsgError, typ)

	frames = s.Handle([]byte(`{"type":"remove_attachment","index":3}`))
	require.Len(t, frames, 1)
	typ, data := decodeFrame(t, frames[0])
	assert.Equal(t, MsgError, typ)
	assert.Contains(t, string(data), "remove_attachment")
}

func TestSessionAttachments(t *testing.T) {
	s := NewSession("keep")
	file := base64.StdEncoding.EncodeToString([]byte("PNGDATA"))

	require.NoError(t, s.Apply(dto.EditorCommand{Type: CmdDrop, Text: "ignored", Files: []dto.AttachmentDTO{
		{Name: "a.png", MimeType: "image/png", Data: file},
		{Name: "b.png", MimeType: "image/png", Data: file},
	}}))

	// Files win over text and leave the document alone.
	assert.Equal(t, "keep", s.Editor().Value())
	require.Len(t, s.Attachments(), 2)
	assert.Equal(t, 7, s.Attachments()[0].Size)
	assert.Empty(t, s.Attachments()[0].Data)

	require.NoError(t, s.Apply(dto.EditorCommand{Type: CmdRemoveAttachment, Index: 0}))
	require.Len(t, s.Attachments(), 1)
	assert.Equal(t, "b.png", s.Attachments()[0].Name)
}
