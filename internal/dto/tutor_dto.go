package dto

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type ParseInputRequest struct {
	UserInput string `json:"userInput" validate:"required"`
}

type GenerateQuestionRequest struct {
	ConversationId uuid.UUID `json:"conversationId" validate:"required"`
	Subject        string    `json:"subject"`
	Difficulty     string    `json:"difficulty" validate:"required,oneof=easy medium hard"`
}

type CreateQuestionFromTextRequest struct {
	ConversationId uuid.UUID `json:"conversationId" validate:"required"`
	QuestionText   string    `json:"questionText" validate:"required"`
	Subject        string    `json:"subject" validate:"required"`
	Difficulty     string    `json:"difficulty" validate:"required,oneof=easy medium hard"`
}

type AnalyzeImageRequest struct {
	ConversationId uuid.UUID `json:"conversationId" validate:"required"`
	ImageData      string    `json:"imageData" validate:"required,base64"`
	MimeType       string    `json:"mimeType" validate:"required,startswith=image/"`
}

// ContentPart is one element of a multi-part chat message.
type ContentPart struct {
	Type string `json:"type" validate:"oneof=text image"`
	Text string `json:"text,omitempty"`
}

// MessageContent accepts either a plain string or a list of parts.
type MessageContent struct {
	Text  string
	Parts []ContentPart
}

func (c *MessageContent) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		c.Text = s
		c.Parts = nil
		return nil
	}
	var parts []ContentPart
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("message content must be a string or a list of parts")
	}
	c.Text = ""
	c.Parts = parts
	return nil
}

func (c MessageContent) MarshalJSON() ([]byte, error) {
	if c.Parts != nil {
		return json.Marshal(c.Parts)
	}
	return json.Marshal(c.Text)
}

type ChatTurn struct {
	Role    string         `json:"role" validate:"required,oneof=user assistant"`
	Content MessageContent `json:"content"`
}

type QuestionContext struct {
	Subject    string `json:"subject" validate:"required"`
	Question   string `json:"question" validate:"required"`
	Difficulty string `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Status     string `json:"status" validate:"required,oneof=active completed abandoned"`
}

type HandleMessageRequest struct {
	QuestionId      uuid.UUID       `json:"questionId" validate:"required"`
	Messages        []ChatTurn      `json:"messages" validate:"required,min=1,dive"`
	QuestionContext QuestionContext `json:"questionContext"`
}

// CreatedQuestionResponse answers generate-question, create-question-from-text and analyze-image.
// Id and Message are nil when an uploaded image fell outside the curriculum.
type CreatedQuestionResponse struct {
	Id           *uuid.UUID       `json:"id"`
	Subject      string           `json:"subject"`
	Question     string           `json:"question"`
	Difficulty   string           `json:"difficulty"`
	UserMessage  string           `json:"userMessage"`
	InCurriculum *bool            `json:"inCurriculum,omitempty"`
	Message      *MessageResponse `json:"message"`
}

// NameConversationJob is the watermill payload asking for a conversation title.
type NameConversationJob struct {
	ConversationId uuid.UUID `json:"conversation_id"`
	UserId         uuid.UUID `json:"user_id"`
	Question       string    `json:"question"`
	Subject        string    `json:"subject"`
}
