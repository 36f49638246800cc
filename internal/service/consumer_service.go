package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"numero-be/internal/constant"
	"numero-be/internal/dto"
	"numero-be/internal/entity"
	"numero-be/internal/pkg/logger"
	"numero-be/internal/repository/specification"
	"numero-be/internal/repository/unitofwork"
	"numero-be/pkg/events"
	"numero-be/pkg/llm"

	"github.com/ThreeDotsLabs/watermill/message"
)

const (
	consumerModule       = "naming-consumer"
	maxConversationName  = 40
	namingTokenAllowance = 200
)

// IConsumerService names conversations in the background.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber     message.Subscriber
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	llmProvider    llm.StructuredProvider
	eventPublisher events.Publisher
	logger         logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.StructuredProvider,
	eventPublisher events.Publisher,
	logger logger.ILogger,
) IConsumerService {
	if eventPublisher == nil {
		eventPublisher = events.NopPublisher{}
	}
	return &consumerService{
		subscriber:     subscriber,
		topicName:      topicName,
		uowFactory:     uowFactory,
		llmProvider:    llmProvider,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var job dto.NameConversationJob
	if err := json.Unmarshal(msg.Payload, &job); err != nil {
		cs.logger.Error(consumerModule, "Failed to unmarshal naming job", map[string]interface{}{"error": err.Error()})
		msg.Ack() // never retry garbage
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	conversation, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByID{ID: job.ConversationId},
		specification.UserOwnedBy{UserID: job.UserId},
	)
	if err != nil {
		cs.logger.Error(consumerModule, "Failed to load conversation", map[string]interface{}{
			"conversation_id": job.ConversationId.String(),
			"error":           err.Error(),
		})
		msg.Nack()
		return
	}
	// Deleted, or the user already picked a name.
	if conversation == nil || !conversation.HasPlaceholderName() {
		msg.Ack()
		return
	}

	name := cs.suggestName(ctx, job)
	now := time.Now()
	conversation.Name = name
	conversation.UpdatedAt = &now
	if err := uow.ConversationRepository().Update(ctx, conversation); err != nil {
		cs.logger.Error(consumerModule, "Failed to rename conversation", map[string]interface{}{
			"conversation_id": conversation.Id.String(),
			"error":           err.Error(),
		})
		msg.Nack()
		return
	}

	if err := cs.eventPublisher.Publish(ctx, events.New(events.ConversationRenamed, map[string]interface{}{
		"user_id":         conversation.UserId.String(),
		"conversation_id": conversation.Id.String(),
		"name":            name,
	})); err != nil {
		cs.logger.Warn(consumerModule, "Failed to publish rename event", map[string]interface{}{"error": err.Error()})
	}

	cs.logger.Info(consumerModule, "Conversation named", map[string]interface{}{
		"conversation_id": conversation.Id.String(),
		"name":            name,
	})
	msg.Ack()
}

// suggestName asks the model for a title and falls back to the subject.
func (cs *consumerService) suggestName(ctx context.Context, job dto.NameConversationJob) string {
	if cs.llmProvider != nil {
		prompt := constant.NameConversationPrompt(job.Question, job.Subject)
		res, err := llm.Generate[dto.ConversationNameResult](ctx, cs.llmProvider, llm.UserText(prompt), constant.NameConversationSchema, llm.WithMaxTokens(namingTokenAllowance))
		if err == nil {
			if name := truncateName(res.Name); name != "" {
				return name
			}
		} else {
			cs.logger.Warn(consumerModule, "Naming model call failed", map[string]interface{}{"error": err.Error()})
		}
	}
	if name := truncateName(job.Subject); name != "" {
		return name
	}
	return entity.DefaultConversationName
}

func truncateName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) <= maxConversationName {
		return name
	}
	return strings.TrimSpace(string([]rune(name)[:maxConversationName]))
}
