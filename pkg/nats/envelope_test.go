package nats

import (
	"testing"
	"time"

	"numero-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	in := events.BaseEvent{Type: events.QuestionCreated, Data: map[string]interface{}{"question_id": "q1"}, OccurredAt: at}

	raw, err := encode(in)
	require.NoError(t, err)

	out, err := decode(Subject(events.QuestionCreated), raw)
	require.NoError(t, err)
	assert.Equal(t, events.QuestionCreated, out.Type)
	assert.Equal(t, "q1", out.Data["question_id"])
	assert.True(t, at.Equal(out.OccurredAt))
}

func TestDecodeFallsBackToSubject(t *testing.T) {
	out, err := decode("events.QUESTION_STATUS_CHANGED", []byte(`{"data":{"status":"completed"}}`))
	require.NoError(t, err)
	assert.Equal(t, events.QuestionStatusChanged, out.Type)
	assert.False(t, out.OccurredAt.IsZero())

	_, err = decode("events.X", []byte(`nope`))
	assert.Error(t, err)
}
