package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"numero-be/internal/constant"
	"numero-be/internal/dto"
	"numero-be/internal/entity"
	"numero-be/internal/pkg/logger"
	"numero-be/internal/repository/specification"
	"numero-be/internal/repository/unitofwork"
	"numero-be/pkg/events"
	"numero-be/pkg/llm"

	"github.com/google/uuid"
)

const tutorModule = "tutor"

type ITutorService interface {
	ParseInput(ctx context.Context, req *dto.ParseInputRequest) (*dto.ParseInputResult, error)
	GenerateQuestion(ctx context.Context, userId uuid.UUID, req *dto.GenerateQuestionRequest) (*dto.CreatedQuestionResponse, error)
	CreateQuestionFromText(ctx context.Context, userId uuid.UUID, req *dto.CreateQuestionFromTextRequest) (*dto.CreatedQuestionResponse, error)
	AnalyzeImage(ctx context.Context, userId uuid.UUID, req *dto.AnalyzeImageRequest) (*dto.CreatedQuestionResponse, error)
	HandleMessage(ctx context.Context, userId uuid.UUID, req *dto.HandleMessageRequest) (*dto.HandleMessageResult, error)
}

type tutorService struct {
	uowFactory        unitofwork.RepositoryFactory
	llmProvider       llm.StructuredProvider
	curriculumService ICurriculumService
	eventPublisher    events.Publisher
	namingPublisher   IPublisherService
	logger            logger.ILogger
	maxTokens         int
}

func NewTutorService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.StructuredProvider,
	curriculumService ICurriculumService,
	eventPublisher events.Publisher,
	namingPublisher IPublisherService,
	logger logger.ILogger,
	maxTokens int,
) ITutorService {
	if eventPublisher == nil {
		eventPublisher = events.NopPublisher{}
	}
	if maxTokens <= 0 {
		maxTokens = llm.DefaultMaxTokens
	}
	return &tutorService{
		uowFactory:        uowFactory,
		llmProvider:       llmProvider,
		curriculumService: curriculumService,
		eventPublisher:    eventPublisher,
		namingPublisher:   namingPublisher,
		logger:            logger,
		maxTokens:         maxTokens,
	}
}

func (s *tutorService) ParseInput(ctx context.Context, req *dto.ParseInputRequest) (*dto.ParseInputResult, error) {
	curriculum, err := s.curriculumService.Formatted(ctx)
	if err != nil {
		return nil, err
	}

	prompt := constant.ParseInputPrompt(req.UserInput, curriculum)
	res, err := llm.Generate[dto.ParseInputResult](ctx, s.llmProvider, llm.UserText(prompt), constant.ParseInputSchema, llm.WithMaxTokens(s.maxTokens))
	if err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}
	return res, nil
}

func (s *tutorService) GenerateQuestion(ctx context.Context, userId uuid.UUID, req *dto.GenerateQuestionRequest) (*dto.CreatedQuestionResponse, error) {
	conversation, err := findConversation(ctx, s.uowFactory.NewUnitOfWork(ctx), userId, req.ConversationId)
	if err != nil {
		return nil, err
	}

	curriculum, err := s.curriculumService.Formatted(ctx)
	if err != nil {
		return nil, err
	}

	prompt := constant.GenerateQuestionPrompt(req.Subject, req.Difficulty, curriculum)
	res, err := llm.Generate[dto.GeneratedQuestionResult](ctx, s.llmProvider, llm.UserText(prompt), constant.GeneratedQuestionSchema, llm.WithMaxTokens(s.maxTokens))
	if err != nil {
		return nil, fmt.Errorf("generate question: %w", err)
	}

	return s.createQuestion(ctx, conversation, &entity.Question{
		Subject:    res.Subject,
		Question:   res.Question,
		Difficulty: entity.Difficulty(res.Difficulty),
		Origin:     entity.OriginLLMGenerated,
	}, res.UserMessage)
}

func (s *tutorService) CreateQuestionFromText(ctx context.Context, userId uuid.UUID, req *dto.CreateQuestionFromTextRequest) (*dto.CreatedQuestionResponse, error) {
	conversation, err := findConversation(ctx, s.uowFactory.NewUnitOfWork(ctx), userId, req.ConversationId)
	if err != nil {
		return nil, err
	}

	prompt := constant.CreateQuestionFromTextPrompt(req.QuestionText, req.Subject, req.Difficulty)
	res, err := llm.Generate[dto.GeneratedQuestionResult](ctx, s.llmProvider, llm.UserText(prompt), constant.GeneratedQuestionSchema, llm.WithMaxTokens(s.maxTokens))
	if err != nil {
		return nil, fmt.Errorf("create question from text: %w", err)
	}

	return s.createQuestion(ctx, conversation, &entity.Question{
		Subject:    res.Subject,
		Question:   res.Question,
		Difficulty: entity.Difficulty(res.Difficulty),
		Origin:     entity.OriginUserText,
	}, res.UserMessage)
}

func (s *tutorService) AnalyzeImage(ctx context.Context, userId uuid.UUID, req *dto.AnalyzeImageRequest) (*dto.CreatedQuestionResponse, error) {
	conversation, err := findConversation(ctx, s.uowFactory.NewUnitOfWork(ctx), userId, req.ConversationId)
	if err != nil {
		return nil, err
	}

	curriculum, err := s.curriculumService.Formatted(ctx)
	if err != nil {
		return nil, err
	}

	contents := []llm.Content{{
		Role: constant.ChatMessageRoleUser,
		Parts: []llm.Part{
			{Text: constant.AnalyzeImagePrompt(curriculum)},
			{InlineData: &llm.InlineData{MimeType: req.MimeType, Data: req.ImageData}},
		},
	}}
	res, err := llm.Generate[dto.AnalyzeImageResult](ctx, s.llmProvider, contents, constant.AnalyzeImageSchema, llm.WithMaxTokens(s.maxTokens))
	if err != nil {
		return nil, fmt.Errorf("analyze image: %w", err)
	}

	inCurriculum := res.InCurriculum
	if !inCurriculum {
		return &dto.CreatedQuestionResponse{
			Subject:      res.Subject,
			Question:     res.Question,
			Difficulty:   res.Difficulty,
			UserMessage:  res.UserMessage,
			InCurriculum: &inCurriculum,
		}, nil
	}

	imageUrl := fmt.Sprintf("data:%s;base64,%s", req.MimeType, req.ImageData)
	created, err := s.createQuestion(ctx, conversation, &entity.Question{
		Subject:    res.Subject,
		Question:   res.Question,
		Difficulty: entity.Difficulty(res.Difficulty),
		Origin:     entity.OriginUserUpload,
		ImageUrl:   &imageUrl,
	}, res.UserMessage)
	if err != nil {
		return nil, err
	}
	created.InCurriculum = &inCurriculum
	return created, nil
}

func (s *tutorService) HandleMessage(ctx context.Context, userId uuid.UUID, req *dto.HandleMessageRequest) (*dto.HandleMessageResult, error) {
	if len(req.Messages) == 0 {
		return nil, ErrNoMessages
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	question, err := uow.QuestionRepository().FindOne(ctx,
		specification.ByID{ID: req.QuestionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	prompt := constant.HandleMessagePrompt(
		question.Subject,
		question.Question,
		string(question.Difficulty),
		string(question.Status),
		BuildTranscript(req.Messages),
	)
	res, err := llm.Generate[dto.HandleMessageResult](ctx, s.llmProvider, llm.UserText(prompt), constant.HandleMessageSchema, llm.WithMaxTokens(s.maxTokens))
	if err != nil {
		return nil, fmt.Errorf("handle message: %w", err)
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	last := req.Messages[len(req.Messages)-1]
	if text := TurnText(last.Content); last.Role == string(entity.RoleUser) && text != "" {
		if err := uow.MessageRepository().Create(ctx, &entity.Message{
			Id:         uuid.New(),
			QuestionId: question.Id,
			UserId:     userId,
			Role:       entity.RoleUser,
			Content:    text,
			CreatedAt:  time.Now(),
		}); err != nil {
			return nil, err
		}
	}

	if err := uow.MessageRepository().Create(ctx, &entity.Message{
		Id:         uuid.New(),
		QuestionId: question.Id,
		UserId:     userId,
		Role:       entity.RoleAssistant,
		Content:    res.Message,
		Metadata: map[string]interface{}{
			"statusUpdate":     res.StatusUpdate,
			"shouldEndSegment": res.ShouldEndSegment,
			"reasoning":        res.Reasoning,
		},
		CreatedAt: time.Now(),
	}); err != nil {
		return nil, err
	}

	previous := question.Status
	changed := entity.QuestionStatus(res.StatusUpdate) != previous
	if changed {
		question.Status = entity.QuestionStatus(res.StatusUpdate)
		if res.ShouldEndSegment {
			now := time.Now()
			question.EndTime = &now
		}
		if err := uow.QuestionRepository().Update(ctx, question); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if changed {
		s.publishEvent(ctx, events.New(events.QuestionStatusChanged, map[string]interface{}{
			"user_id":         userId.String(),
			"conversation_id": question.ConversationId.String(),
			"question_id":     question.Id.String(),
			"previous_status": string(previous),
			"status":          res.StatusUpdate,
		}))
	}
	return res, nil
}

// createQuestion stores the question with its opening assistant message, then
// announces it and queues the conversation naming job.
func (s *tutorService) createQuestion(ctx context.Context, conversation *entity.Conversation, question *entity.Question, intro string) (*dto.CreatedQuestionResponse, error) {
	now := time.Now()
	question.Id = uuid.New()
	question.ConversationId = conversation.Id
	question.UserId = conversation.UserId
	question.Status = entity.StatusActive
	question.StartTime = now
	question.CreatedAt = now

	message := &entity.Message{
		Id:         uuid.New(),
		QuestionId: question.Id,
		UserId:     conversation.UserId,
		Role:       entity.RoleAssistant,
		Content:    ComposeOpeningMessage(intro, question.Question),
		CreatedAt:  now,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.QuestionRepository().Create(ctx, question); err != nil {
		return nil, err
	}
	if err := uow.MessageRepository().Create(ctx, message); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.New(events.QuestionCreated, map[string]interface{}{
		"user_id":         conversation.UserId.String(),
		"conversation_id": conversation.Id.String(),
		"question_id":     question.Id.String(),
		"subject":         question.Subject,
		"origin":          string(question.Origin),
	}))

	if conversation.HasPlaceholderName() && s.namingPublisher != nil {
		payload, err := json.Marshal(dto.NameConversationJob{
			ConversationId: conversation.Id,
			UserId:         conversation.UserId,
			Question:       question.Question,
			Subject:        question.Subject,
		})
		if err == nil {
			err = s.namingPublisher.Publish(ctx, payload)
		}
		if err != nil {
			s.logger.Warn(tutorModule, "Failed to queue conversation naming", map[string]interface{}{
				"conversation_id": conversation.Id.String(),
				"error":           err.Error(),
			})
		}
	}

	id := question.Id
	return &dto.CreatedQuestionResponse{
		Id:          &id,
		Subject:     question.Subject,
		Question:    question.Question,
		Difficulty:  string(question.Difficulty),
		UserMessage: intro,
		Message:     toMessageResponse(message),
	}, nil
}

// publishEvent is best effort. The request already succeeded.
func (s *tutorService) publishEvent(ctx context.Context, event events.Event) {
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn(tutorModule, "Failed to publish event", map[string]interface{}{
			"event": event.EventType(),
			"error": err.Error(),
		})
	}
}

// ComposeOpeningMessage joins the model's intro with the question text,
// skipping the question when the intro already quotes it.
func ComposeOpeningMessage(intro, question string) string {
	intro = strings.TrimSpace(intro)
	question = strings.TrimSpace(question)
	switch {
	case intro == "":
		return question
	case question == "" || strings.Contains(intro, question):
		return intro
	default:
		return intro + "\n\n" + question
	}
}

// BuildTranscript renders the chat as "speaker: text" lines for the prompt.
func BuildTranscript(turns []dto.ChatTurn) string {
	lines := make([]string, 0, len(turns))
	for _, turn := range turns {
		speaker := constant.TranscriptTutor
		if turn.Role == string(entity.RoleUser) {
			speaker = constant.TranscriptStudent
		}

		var text string
		if turn.Content.Parts == nil {
			text = turn.Content.Text
		} else {
			pieces := make([]string, 0, len(turn.Content.Parts))
			for _, part := range turn.Content.Parts {
				if part.Type == "image" {
					pieces = append(pieces, constant.TranscriptImage)
					continue
				}
				pieces = append(pieces, part.Text)
			}
			text = strings.Join(pieces, " ")
		}
		lines = append(lines, fmt.Sprintf("%s: %s", speaker, strings.TrimSpace(text)))
	}
	return strings.Join(lines, "\n")
}

// TurnText is the text a turn stores. Images are dropped.
func TurnText(content dto.MessageContent) string {
	if content.Parts == nil {
		return strings.TrimSpace(content.Text)
	}
	pieces := make([]string, 0, len(content.Parts))
	for _, part := range content.Parts {
		if part.Type == "text" && strings.TrimSpace(part.Text) != "" {
			pieces = append(pieces, strings.TrimSpace(part.Text))
		}
	}
	return strings.Join(pieces, "\n")
}
