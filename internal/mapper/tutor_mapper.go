package mapper

import (
	"time"

	"numero-be/internal/entity"
	"numero-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TutorMapper struct{}

func NewTutorMapper() *TutorMapper {
	return &TutorMapper{}
}

func toDeletedAt(deletedAt *time.Time, isDeleted bool) gorm.DeletedAt {
	if deletedAt != nil {
		return gorm.DeletedAt{Time: *deletedAt, Valid: true}
	}
	if isDeleted {
		return gorm.DeletedAt{Time: time.Now(), Valid: true}
	}
	return gorm.DeletedAt{}
}

func fromDeletedAt(d gorm.DeletedAt) *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}

// Conversation

func (m *TutorMapper) ConversationToEntity(c *model.Conversation) *entity.Conversation {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Conversation{
		Id:        c.Id,
		UserId:    c.UserId,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: fromDeletedAt(c.DeletedAt),
		IsDeleted: c.DeletedAt.Valid,
	}
}

func (m *TutorMapper) ConversationToModel(c *entity.Conversation) *model.Conversation {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Conversation{
		Id:        c.Id,
		UserId:    c.UserId,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: toDeletedAt(c.DeletedAt, c.IsDeleted),
	}
}

// Question

func (m *TutorMapper) QuestionToEntity(q *model.Question) *entity.Question {
	if q == nil {
		return nil
	}
	return &entity.Question{
		Id:             q.Id,
		ConversationId: q.ConversationId,
		UserId:         q.UserId,
		Subject:        q.Subject,
		Question:       q.Question,
		Difficulty:     entity.Difficulty(q.Difficulty),
		Origin:         entity.QuestionOrigin(q.Origin),
		Status:         entity.QuestionStatus(q.Status),
		ImageUrl:       q.ImageUrl,
		StartTime:      q.StartTime,
		EndTime:        q.EndTime,
		CreatedAt:      q.CreatedAt,
		DeletedAt:      fromDeletedAt(q.DeletedAt),
		IsDeleted:      q.DeletedAt.Valid,
	}
}

func (m *TutorMapper) QuestionToModel(q *entity.Question) *model.Question {
	if q == nil {
		return nil
	}

	startTime := q.StartTime
	if startTime.IsZero() {
		startTime = time.Now()
	}
	status := q.Status
	if status == "" {
		status = entity.StatusActive
	}

	return &model.Question{
		Id:             q.Id,
		ConversationId: q.ConversationId,
		UserId:         q.UserId,
		Subject:        q.Subject,
		Question:       q.Question,
		Difficulty:     string(q.Difficulty),
		Origin:         string(q.Origin),
		Status:         string(status),
		ImageUrl:       q.ImageUrl,
		StartTime:      startTime,
		EndTime:        q.EndTime,
		CreatedAt:      q.CreatedAt,
		DeletedAt:      toDeletedAt(q.DeletedAt, q.IsDeleted),
	}
}

// Message

func (m *TutorMapper) MessageToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}
	var metadata map[string]interface{}
	if msg.Metadata != nil {
		metadata = map[string]interface{}(msg.Metadata)
	}
	return &entity.Message{
		Id:         msg.Id,
		QuestionId: msg.QuestionId,
		UserId:     msg.UserId,
		Role:       entity.MessageRole(msg.Role),
		Content:    msg.Content,
		Metadata:   metadata,
		CreatedAt:  msg.CreatedAt,
	}
}

func (m *TutorMapper) MessageToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}
	var metadata datatypes.JSONMap
	if msg.Metadata != nil {
		metadata = datatypes.JSONMap(msg.Metadata)
	}
	return &model.Message{
		Id:         msg.Id,
		QuestionId: msg.QuestionId,
		UserId:     msg.UserId,
		Role:       string(msg.Role),
		Content:    msg.Content,
		Metadata:   metadata,
		CreatedAt:  msg.CreatedAt,
	}
}

func (m *TutorMapper) MessagesToEntities(models []*model.Message) []*entity.Message {
	entities := make([]*entity.Message, len(models))
	for i, msg := range models {
		entities[i] = m.MessageToEntity(msg)
	}
	return entities
}
