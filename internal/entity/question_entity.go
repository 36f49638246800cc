package entity

import (
	"time"

	"github.com/google/uuid"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type QuestionOrigin string

const (
	OriginLLMGenerated QuestionOrigin = "llm-generated"
	OriginUserText     QuestionOrigin = "user-text"
	OriginUserUpload   QuestionOrigin = "user-upload"
)

type QuestionStatus string

const (
	StatusActive    QuestionStatus = "active"
	StatusCompleted QuestionStatus = "completed"
	StatusAbandoned QuestionStatus = "abandoned"
)

type Question struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	UserId         uuid.UUID
	Subject        string
	Question       string
	Difficulty     Difficulty
	Origin         QuestionOrigin
	Status         QuestionStatus
	ImageUrl       *string
	StartTime      time.Time
	EndTime        *time.Time
	CreatedAt      time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}
