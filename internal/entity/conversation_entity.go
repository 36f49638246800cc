package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultConversationName is what new and initialized conversations are called
	// until the naming job gives them a real title.
	DefaultConversationName = "שיחה חדשה"
	legacyConversationName  = "New Conversation"
	placeholderNamePrefix   = "שיחה "
)

type Conversation struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}

// HasPlaceholderName reports whether the conversation still carries a generated
// default name and may be renamed automatically.
func (c *Conversation) HasPlaceholderName() bool {
	return strings.HasPrefix(c.Name, placeholderNamePrefix) || c.Name == legacyConversationName
}
