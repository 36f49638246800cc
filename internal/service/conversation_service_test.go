package service

import (
	"context"
	"testing"
	"time"

	"numero-be/internal/dto"
	"numero-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedConversation(store *memStore, userId uuid.UUID, name string, createdAt time.Time) *entity.Conversation {
	c := &entity.Conversation{Id: uuid.New(), UserId: userId, Name: name, CreatedAt: createdAt}
	store.conversations[c.Id] = c
	return c
}

func TestConversationService_InitializeCreatesFirstConversation(t *testing.T) {
	store := newMemStore()
	svc := NewConversationService(store)
	userId := uuid.New()

	res, err := svc.Initialize(context.Background(), userId)
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, entity.DefaultConversationName, res.Conversation.Name)
	assert.Len(t, store.conversations, 1)

	again, err := svc.Initialize(context.Background(), userId)
	require.NoError(t, err)
	assert.False(t, again.Created)
	assert.Equal(t, res.Conversation.Id, again.Conversation.Id)
	assert.Len(t, store.conversations, 1)
}

func TestConversationService_InitializeReturnsNewest(t *testing.T) {
	store := newMemStore()
	userId := uuid.New()
	base := time.Now().Add(-time.Hour)
	seedConversation(store, userId, "old", base)
	newest := seedConversation(store, userId, "new", base.Add(time.Minute))
	seedConversation(store, uuid.New(), "someone else", base.Add(time.Hour))

	res, err := NewConversationService(store).Initialize(context.Background(), userId)
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, newest.Id, res.Conversation.Id)
}

func TestConversationService_GetAllNewestFirst(t *testing.T) {
	store := newMemStore()
	userId := uuid.New()
	base := time.Now()
	seedConversation(store, userId, "a", base)
	seedConversation(store, userId, "b", base.Add(time.Second))
	seedConversation(store, uuid.New(), "x", base)

	res, err := NewConversationService(store).GetAll(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "b", res[0].Name)
	assert.Equal(t, "a", res[1].Name)
}

func TestConversationService_RenameAndDeleteCheckOwnership(t *testing.T) {
	store := newMemStore()
	owner := uuid.New()
	c := seedConversation(store, owner, "שיחה חדשה", time.Now())
	svc := NewConversationService(store)

	_, err := svc.Rename(context.Background(), uuid.New(), c.Id, &dto.RenameConversationRequest{Name: "x"})
	assert.ErrorIs(t, err, ErrConversationNotFound)

	res, err := svc.Rename(context.Background(), owner, c.Id, &dto.RenameConversationRequest{Name: "משוואות"})
	require.NoError(t, err)
	assert.Equal(t, "משוואות", res.Name)
	assert.NotNil(t, res.UpdatedAt)

	assert.ErrorIs(t, svc.Delete(context.Background(), uuid.New(), c.Id), ErrConversationNotFound)
	require.NoError(t, svc.Delete(context.Background(), owner, c.Id))
	assert.Empty(t, store.conversations)
}

func TestConversationService_GetQuestionsGroupsMessages(t *testing.T) {
	store := newMemStore()
	userId := uuid.New()
	c := seedConversation(store, userId, "c", time.Now())
	start := time.Now()

	q1 := &entity.Question{Id: uuid.New(), ConversationId: c.Id, UserId: userId, Question: "1+1", Status: entity.StatusCompleted, StartTime: start}
	q2 := &entity.Question{Id: uuid.New(), ConversationId: c.Id, UserId: userId, Question: "2+2", Status: entity.StatusActive, StartTime: start.Add(time.Minute)}
	store.questions[q1.Id] = q1
	store.questions[q2.Id] = q2
	store.messages = []*entity.Message{
		{Id: uuid.New(), QuestionId: q1.Id, Role: entity.RoleAssistant, Content: "פתרו"},
		{Id: uuid.New(), QuestionId: q1.Id, Role: entity.RoleUser, Content: "2"},
		{Id: uuid.New(), QuestionId: q2.Id, Role: entity.RoleAssistant, Content: "ועכשיו"},
	}

	res, err := NewConversationService(store).GetQuestions(context.Background(), userId, c.Id)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "1+1", res[0].Question)
	assert.Len(t, res[0].Messages, 2)
	assert.Equal(t, "user", res[0].Messages[1].Role)
	assert.Len(t, res[1].Messages, 1)

	_, err = NewConversationService(store).GetQuestions(context.Background(), uuid.New(), c.Id)
	assert.ErrorIs(t, err, ErrConversationNotFound)
}
