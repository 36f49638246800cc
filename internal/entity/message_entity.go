package entity

import (
	"time"

	"github.com/google/uuid"
)

type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

type Message struct {
	Id         uuid.UUID
	QuestionId uuid.UUID
	UserId     uuid.UUID
	Role       MessageRole
	Content    string
	Metadata   map[string]interface{}
	CreatedAt  time.Time
}
