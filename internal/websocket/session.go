package websocket

import (
	"encoding/json"
	"fmt"

	"numero-be/internal/dto"
	"numero-be/pkg/mathkeyboard"
)

// Session is one editor plus the files the user attached to it.
// It is not safe for concurrent use; each connection owns one.
type Session struct {
	editor      *mathkeyboard.Editor
	attachments []mathkeyboard.Attachment
	changes     []string
}

// EditorState is the payload of editor_state.
type EditorState struct {
	Snapshot     mathkeyboard.Snapshot `json:"snapshot"`
	Attachments  []dto.AttachmentDTO   `json:"attachments"`
	RequestFocus bool                  `json:"requestFocus"`
}

func NewSession(initialValue string) *Session {
	s := &Session{}
	s.editor = mathkeyboard.NewEditor(
		mathkeyboard.WithValue(initialValue),
		mathkeyboard.WithOnChange(func(v string) { s.changes = append(s.changes, v) }),
		mathkeyboard.WithAttachmentHandler(func(files []mathkeyboard.Attachment) {
			s.attachments = append(s.attachments, files...)
		}),
	)
	return s
}

func (s *Session) Editor() *mathkeyboard.Editor { return s.editor }

// Apply runs a command, including the session-level ones.
func (s *Session) Apply(cmd dto.EditorCommand) error {
	if cmd.Type == CmdRemoveAttachment {
		if cmd.Index < 0 || cmd.Index >= len(s.attachments) {
			return fmt.Errorf("no attachment at index %d", cmd.Index)
		}
		s.attachments = append(s.attachments[:cmd.Index], s.attachments[cmd.Index+1:]...)
		return nil
	}
	return Apply(s.editor, cmd)
}

// TakeChanges returns the values reported since the last call.
func (s *Session) TakeChanges() []string {
	changes := s.changes
	s.changes = nil
	return changes
}

// Attachments summarizes pending files without their bytes.
func (s *Session) Attachments() []dto.AttachmentDTO {
	out := make([]dto.AttachmentDTO, len(s.attachments))
	for i, a := range s.attachments {
		out[i] = dto.AttachmentDTO{Name: a.Name, MimeType: a.MimeType, Size: len(a.Data)}
	}
	return out
}

// State encodes an editor_state frame and consumes the focus request.
func (s *Session) State() []byte {
	return encode(MsgEditorState, EditorState{
		Snapshot:     s.editor.Snapshot(),
		Attachments:  s.Attachments(),
		RequestFocus: s.editor.TakeFocusRequest(),
	})
}

// Handle decodes one client frame and returns the frames to send back.
func (s *Session) Handle(raw []byte) [][]byte {
	var cmd dto.EditorCommand
	if err := json.Unmarshal(raw, &cmd); err != nil {
		return [][]byte{encode(MsgError, map[string]string{"message": "malformed command"})}
	}
	if err := s.Apply(cmd); err != nil {
		return [][]byte{encode(MsgError, map[string]string{"message": err.Error(), "command": cmd.Type})}
	}

	var out [][]byte
	for _, v := range s.TakeChanges() {
		out = append(out, encode(MsgValueChanged, map[string]string{"value": v}))
	}
	return append(out, s.State())
}

func encode(msgType string, data interface{}) []byte {
	b, err := json.Marshal(OutboundMessage{Type: msgType, Data: data})
	if err != nil {
		b, _ = json.Marshal(OutboundMessage{Type: MsgError, Data: map[string]string{"message": err.Error()}})
	}
	return b
}
