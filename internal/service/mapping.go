package service

import (
	"numero-be/internal/dto"
	"numero-be/internal/entity"
)

func toConversationResponse(c *entity.Conversation) *dto.ConversationResponse {
	return &dto.ConversationResponse{
		Id:        c.Id,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toMessageResponse(m *entity.Message) *dto.MessageResponse {
	return &dto.MessageResponse{
		Id:         m.Id,
		QuestionId: m.QuestionId,
		Role:       string(m.Role),
		Content:    m.Content,
		CreatedAt:  m.CreatedAt,
	}
}
