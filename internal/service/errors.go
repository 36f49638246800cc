package service

import "numero-be/internal/pkg/serverutils"

var (
	ErrConversationNotFound = serverutils.NotFound("Conversation not found")
	ErrQuestionNotFound     = serverutils.NotFound("Question not found")
	ErrNoMessages           = serverutils.BadRequest("No message provided")
)
