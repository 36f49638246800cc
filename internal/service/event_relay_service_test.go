package service

import (
	"context"
	"testing"

	"numero-be/internal/pkg/logger"
	"numero-be/internal/websocket"
	"numero-be/pkg/events"
	pktNats "numero-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentEvent struct {
	userID    uuid.UUID
	eventType string
	data      map[string]interface{}
}

type fakeDelivery struct {
	sent []sentEvent
}

func (d *fakeDelivery) SendEvent(userID uuid.UUID, eventType string, data interface{}) error {
	d.sent = append(d.sent, sentEvent{userID, eventType, data.(map[string]interface{})})
	return nil
}

type fakeSubscriber struct {
	subject string
	handler pktNats.EventHandler
}

func (s *fakeSubscriber) Subscribe(ctx context.Context, subject string, durableName string, handler pktNats.EventHandler) error {
	s.subject = subject
	s.handler = handler
	return nil
}

func TestEventRelayService_RoutesToUser(t *testing.T) {
	sub := &fakeSubscriber{}
	delivery := &fakeDelivery{}
	relay := NewEventRelayService(sub, delivery, logger.NewNopLogger())
	relay.Start(context.Background())
	require.NotNil(t, sub.handler)
	assert.Equal(t, "events.>", sub.subject)

	userID := uuid.New()
	err := sub.handler(context.Background(), events.New(events.QuestionStatusChanged, map[string]interface{}{
		"user_id": userID.String(),
		"status":  "completed",
	}))
	require.NoError(t, err)
	err = sub.handler(context.Background(), events.New(events.ConversationRenamed, map[string]interface{}{
		"user_id": userID.String(),
		"name":    "x",
	}))
	require.NoError(t, err)

	require.Len(t, delivery.sent, 2)
	assert.Equal(t, userID, delivery.sent[0].userID)
	assert.Equal(t, websocket.MsgQuestionEvent, delivery.sent[0].eventType)
	assert.Equal(t, events.QuestionStatusChanged, delivery.sent[0].data["type"])
	assert.Equal(t, "completed", delivery.sent[0].data["status"])
	assert.Equal(t, websocket.MsgConversation, delivery.sent[1].eventType)
}

func TestEventRelayService_DropsEventsWithoutUser(t *testing.T) {
	sub := &fakeSubscriber{}
	delivery := &fakeDelivery{}
	NewEventRelayService(sub, delivery, logger.NewNopLogger()).Start(context.Background())

	err := sub.handler(context.Background(), events.New(events.QuestionCreated, map[string]interface{}{"user_id": "nope"}))
	assert.NoError(t, err)
	assert.Empty(t, delivery.sent)
}
