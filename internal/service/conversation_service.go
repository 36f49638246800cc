package service

import (
	"context"
	"time"

	"numero-be/internal/dto"
	"numero-be/internal/entity"
	"numero-be/internal/repository/specification"
	"numero-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IConversationService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.ConversationResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateConversationRequest) (*dto.ConversationResponse, error)
	Rename(ctx context.Context, userId, id uuid.UUID, req *dto.RenameConversationRequest) (*dto.ConversationResponse, error)
	Delete(ctx context.Context, userId, id uuid.UUID) error
	// Initialize returns the newest conversation, creating the first one for a new user.
	Initialize(ctx context.Context, userId uuid.UUID) (*dto.InitializeConversationResponse, error)
	GetQuestions(ctx context.Context, userId, id uuid.UUID) ([]*dto.QuestionResponse, error)
}

type conversationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewConversationService(uowFactory unitofwork.RepositoryFactory) IConversationService {
	return &conversationService{
		uowFactory: uowFactory,
	}
}

func (s *conversationService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversations, err := uow.ConversationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ConversationResponse, 0, len(conversations))
	for _, c := range conversations {
		res = append(res, toConversationResponse(c))
	}
	return res, nil
}

func (s *conversationService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateConversationRequest) (*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation := &entity.Conversation{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      req.Name,
		CreatedAt: time.Now(),
	}
	if err := uow.ConversationRepository().Create(ctx, conversation); err != nil {
		return nil, err
	}
	return toConversationResponse(conversation), nil
}

func (s *conversationService) Rename(ctx context.Context, userId, id uuid.UUID, req *dto.RenameConversationRequest) (*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := findConversation(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	conversation.Name = req.Name
	conversation.UpdatedAt = &now
	if err := uow.ConversationRepository().Update(ctx, conversation); err != nil {
		return nil, err
	}
	return toConversationResponse(conversation), nil
}

func (s *conversationService) Delete(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := findConversation(ctx, uow, userId, id); err != nil {
		return err
	}
	return uow.ConversationRepository().Delete(ctx, id)
}

func (s *conversationService) Initialize(ctx context.Context, userId uuid.UUID) (*dto.InitializeConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	latest, err := uow.ConversationRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		return &dto.InitializeConversationResponse{Created: false, Conversation: toConversationResponse(latest)}, nil
	}

	conversation := &entity.Conversation{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      entity.DefaultConversationName,
		CreatedAt: time.Now(),
	}
	if err := uow.ConversationRepository().Create(ctx, conversation); err != nil {
		return nil, err
	}
	return &dto.InitializeConversationResponse{Created: true, Conversation: toConversationResponse(conversation)}, nil
}

func (s *conversationService) GetQuestions(ctx context.Context, userId, id uuid.UUID) ([]*dto.QuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := findConversation(ctx, uow, userId, id); err != nil {
		return nil, err
	}

	questions, err := uow.QuestionRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: id},
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "start_time"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.QuestionResponse, 0, len(questions))
	if len(questions) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, len(questions))
	byQuestion := make(map[uuid.UUID]*dto.QuestionResponse, len(questions))
	for i, q := range questions {
		ids[i] = q.Id
		res := &dto.QuestionResponse{
			Id:             q.Id,
			ConversationId: q.ConversationId,
			Subject:        q.Subject,
			Question:       q.Question,
			Difficulty:     string(q.Difficulty),
			Origin:         string(q.Origin),
			Status:         string(q.Status),
			ImageUrl:       q.ImageUrl,
			StartTime:      q.StartTime,
			EndTime:        q.EndTime,
			Messages:       make([]dto.MessageResponse, 0),
		}
		byQuestion[q.Id] = res
		result = append(result, res)
	}

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByQuestionIDs{QuestionIDs: ids},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}
	for _, m := range messages {
		if q, ok := byQuestion[m.QuestionId]; ok {
			q.Messages = append(q.Messages, *toMessageResponse(m))
		}
	}
	return result, nil
}

func findConversation(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uuid.UUID) (*entity.Conversation, error) {
	conversation, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, ErrConversationNotFound
	}
	return conversation, nil
}
