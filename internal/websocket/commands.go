package websocket

import (
	"encoding/base64"
	"fmt"

	"numero-be/internal/dto"
	"numero-be/pkg/mathkeyboard"
)

// Command types accepted from clients.
const (
	CmdKey              = "key"
	CmdKeyClick         = "key_click"
	CmdStatic           = "static"
	CmdPaste            = "paste"
	CmdDrop             = "drop"
	CmdClear            = "clear"
	CmdMove             = "move"
	CmdEnterStructure   = "enter_structure"
	CmdNextPlaceholder  = "next_placeholder"
	CmdPrevPlaceholder  = "prev_placeholder"
	CmdExitPlaceholder  = "exit_placeholder"
	CmdFocusStructure   = "focus_structure"
	CmdSetValue         = "set_value"
	CmdRemoveAttachment = "remove_attachment"
)

// Message types written to clients.
const (
	MsgEditorState   = "editor_state"
	MsgValueChanged  = "value_changed"
	MsgQuestionEvent = "question_event"
	MsgConversation  = "conversation_event"
	MsgError         = "error"
)

// ErrUnknownCommand is returned for a command type Apply does not know.
type ErrUnknownCommand struct {
	Type string
}

func (e *ErrUnknownCommand) Error() string {
	return fmt.Sprintf("unknown command %q", e.Type)
}

// Apply runs one editor-level command. Session-level commands such as
// remove_attachment are handled by Session.
func Apply(e *mathkeyboard.Editor, cmd dto.EditorCommand) error {
	switch cmd.Type {
	case CmdKey:
		e.HandleKey(mathkeyboard.KeyEvent{
			Key:   cmd.Key,
			Shift: cmd.Shift,
			Ctrl:  cmd.Ctrl,
			Meta:  cmd.Meta,
			Alt:   cmd.Alt,
		})
	case CmdKeyClick:
		e.HandleKeyClick(cmd.Value)
	case CmdStatic:
		e.HandleStaticAction(cmd.Value)
	case CmdPaste, CmdDrop:
		payload, err := toPayload(cmd)
		if err != nil {
			return err
		}
		if cmd.Type == CmdPaste {
			e.Paste(payload)
		} else {
			e.Drop(payload)
		}
	case CmdClear:
		e.ClearAll()
	case CmdMove:
		e.MoveCursor(cmd.Delta)
	case CmdEnterStructure:
		e.EnterStructure()
	case CmdNextPlaceholder:
		e.NextPlaceholder()
	case CmdPrevPlaceholder:
		e.PreviousPlaceholder()
	case CmdExitPlaceholder:
		e.ExitPlaceholder()
	case CmdFocusStructure:
		e.FocusStructure(cmd.Index)
	case CmdSetValue:
		e.SetValue(cmd.Value)
	default:
		return &ErrUnknownCommand{Type: cmd.Type}
	}
	return nil
}

func toPayload(cmd dto.EditorCommand) (mathkeyboard.Payload, error) {
	payload := mathkeyboard.Payload{Text: cmd.Text}
	for i, f := range cmd.Files {
		data, err := base64.StdEncoding.DecodeString(f.Data)
		if err != nil {
			return mathkeyboard.Payload{}, fmt.Errorf("file %d: invalid base64: %w", i, err)
		}
		payload.Files = append(payload.Files, mathkeyboard.Attachment{
			Name:     f.Name,
			MimeType: f.MimeType,
			Data:     data,
		})
	}
	return payload, nil
}
