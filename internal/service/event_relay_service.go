package service

import (
	"context"
	"fmt"

	"numero-be/internal/pkg/logger"
	"numero-be/internal/websocket"
	"numero-be/pkg/events"
	pktNats "numero-be/pkg/nats"

	"github.com/google/uuid"
)

const relayModule = "EventRelayService"

// EventDelivery pushes a message to every socket a user has open.
// Implemented by the websocket Hub.
type EventDelivery interface {
	SendEvent(userID uuid.UUID, eventType string, data interface{}) error
}

// EventSubscriber is the part of the bus the relay listens on.
type EventSubscriber interface {
	Subscribe(ctx context.Context, subject string, durableName string, handler pktNats.EventHandler) error
}

type EventRelayService struct {
	subscriber EventSubscriber
	delivery   EventDelivery
	logger     logger.ILogger
}

func NewEventRelayService(sub EventSubscriber, delivery EventDelivery, log logger.ILogger) *EventRelayService {
	return &EventRelayService{
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *EventRelayService) Start(ctx context.Context) {
	if err := s.subscriber.Subscribe(ctx, "events.>", "ws-relay-worker", s.handleEvent); err != nil {
		s.logger.Error(relayModule, "Failed to start event relay", map[string]interface{}{"error": err.Error()})
		return
	}
	s.logger.Info(relayModule, "Event relay started, listening to events.>", nil)
}

func (s *EventRelayService) handleEvent(ctx context.Context, event events.Event) error {
	rawUserID := events.StringField(event, "user_id")
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		// Nothing to route to. Retrying will not help.
		s.logger.Warn(relayModule, fmt.Sprintf("Event %s has no valid user_id", event.EventType()), map[string]interface{}{"user_id": rawUserID})
		return nil
	}

	msgType := websocket.MsgQuestionEvent
	if event.EventType() == events.ConversationRenamed {
		msgType = websocket.MsgConversation
	}

	data := make(map[string]interface{}, len(event.Payload())+2)
	for k, v := range event.Payload() {
		data[k] = v
	}
	data["type"] = event.EventType()
	data["occurred_at"] = event.Timestamp()

	return s.delivery.SendEvent(userID, msgType, data)
}
