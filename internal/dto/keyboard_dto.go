package dto

import "numero-be/pkg/mathkeyboard"

// EditorCommand is one editor action, sent over the websocket or replayed over HTTP.
// Which fields matter depends on Type.
type EditorCommand struct {
	Type  string          `json:"type" validate:"required"`
	Value string          `json:"value,omitempty"`
	Key   string          `json:"key,omitempty"`
	Shift bool            `json:"shift,omitempty"`
	Ctrl  bool            `json:"ctrl,omitempty"`
	Meta  bool            `json:"meta,omitempty"`
	Alt   bool            `json:"alt,omitempty"`
	Delta int             `json:"delta,omitempty"`
	Index int             `json:"index,omitempty"`
	Text  string          `json:"text,omitempty"`
	Files []AttachmentDTO `json:"files,omitempty"`
}

type AttachmentDTO struct {
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Data     string `json:"data,omitempty"` // base64
	Size     int    `json:"size,omitempty"`
}

type ReplayRequest struct {
	Value    string          `json:"value"`
	Commands []EditorCommand `json:"commands" validate:"max=500,dive"`
}

type ReplayResponse struct {
	Snapshot    mathkeyboard.Snapshot `json:"snapshot"`
	Attachments []AttachmentDTO       `json:"attachments"`
	Changes     []string              `json:"changes"`
}
