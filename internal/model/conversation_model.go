package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Conversation struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name      string         `gorm:"type:text;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime;index"`
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Questions []Question `gorm:"foreignKey:ConversationId;constraint:OnDelete:CASCADE"`
}

func (Conversation) TableName() string {
	return "conversations"
}

type Question struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationId uuid.UUID      `gorm:"type:uuid;not null;index"`
	UserId         uuid.UUID      `gorm:"type:uuid;not null;index:idx_questions_user_status,priority:1"`
	Subject        string         `gorm:"type:text;not null"`
	Question       string         `gorm:"type:text;not null"`
	Difficulty     string         `gorm:"type:difficulty;not null"`
	Origin         string         `gorm:"type:question_origin;not null"`
	Status         string         `gorm:"type:question_status;not null;default:'active';index:idx_questions_user_status,priority:2"`
	ImageUrl       *string        `gorm:"type:text"`
	StartTime      time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"`
	EndTime        *time.Time
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`

	Messages []Message `gorm:"foreignKey:QuestionId;constraint:OnDelete:CASCADE"`
}

func (Question) TableName() string {
	return "questions"
}

type Message struct {
	Id         uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	QuestionId uuid.UUID         `gorm:"type:uuid;not null;index"`
	UserId     uuid.UUID         `gorm:"type:uuid;not null"`
	Role       string            `gorm:"type:message_role;not null"`
	Content    string            `gorm:"type:text;not null"`
	Metadata   datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt  time.Time         `gorm:"autoCreateTime;index"`
}

func (Message) TableName() string {
	return "messages"
}
