package dto

import (
	"time"

	"github.com/google/uuid"
)

type ConversationResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

type CreateConversationRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type RenameConversationRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// InitializeConversationResponse tells the client whether a conversation was created.
type InitializeConversationResponse struct {
	Created      bool                  `json:"created"`
	Conversation *ConversationResponse `json:"conversation"`
}

type MessageResponse struct {
	Id         uuid.UUID `json:"id"`
	QuestionId uuid.UUID `json:"questionId"`
	Role       string    `json:"role"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

type QuestionResponse struct {
	Id             uuid.UUID         `json:"id"`
	ConversationId uuid.UUID         `json:"conversationId"`
	Subject        string            `json:"subject"`
	Question       string            `json:"question"`
	Difficulty     string            `json:"difficulty"`
	Origin         string            `json:"origin"`
	Status         string            `json:"status"`
	ImageUrl       *string           `json:"imageUrl,omitempty"`
	StartTime      time.Time         `json:"startTime"`
	EndTime        *time.Time        `json:"endTime,omitempty"`
	Messages       []MessageResponse `json:"messages"`
}
