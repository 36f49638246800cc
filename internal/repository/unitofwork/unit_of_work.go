package unitofwork

import (
	"context"

	"numero-be/internal/repository/contract"
)

// UnitOfWork hands out repositories bound to one connection, or to one
// transaction once Begin has been called.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ConversationRepository() contract.ConversationRepository
	QuestionRepository() contract.QuestionRepository
	MessageRepository() contract.MessageRepository
	CurriculumRepository() contract.CurriculumRepository
}
