package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"numero-be/internal/entity"
	"numero-be/internal/repository/contract"
	"numero-be/internal/repository/specification"
	"numero-be/internal/repository/unitofwork"
	"numero-be/pkg/events"
	"numero-be/pkg/llm"

	"github.com/google/uuid"
)

// memStore backs every fake repository. Transactions are not isolated; a
// rollback after a failed create is observable through rolledBack.
type memStore struct {
	mu            sync.Mutex
	conversations map[uuid.UUID]*entity.Conversation
	questions     map[uuid.UUID]*entity.Question
	messages      []*entity.Message
	topics        []*entity.CurriculumTopic
	topicLoads    int
	committed     int
	rolledBack    int
	failMessage   error
	upserts       []string
}

func newMemStore() *memStore {
	return &memStore{
		conversations: map[uuid.UUID]*entity.Conversation{},
		questions:     map[uuid.UUID]*entity.Question{},
	}
}

func (s *memStore) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memUoW{store: s}
}

type memUoW struct {
	store *memStore
	open  bool
}

func (u *memUoW) Begin(ctx context.Context) error {
	u.open = true
	return nil
}

func (u *memUoW) Commit() error {
	if !u.open {
		return errors.New("no transaction to commit")
	}
	u.open = false
	u.store.committed++
	return nil
}

func (u *memUoW) Rollback() error {
	if !u.open {
		return errors.New("no transaction to rollback")
	}
	u.open = false
	u.store.rolledBack++
	return nil
}

func (u *memUoW) ConversationRepository() contract.ConversationRepository {
	return &memConversations{u.store}
}

func (u *memUoW) QuestionRepository() contract.QuestionRepository {
	return &memQuestions{u.store}
}

func (u *memUoW) MessageRepository() contract.MessageRepository {
	return &memMessages{u.store}
}

func (u *memUoW) CurriculumRepository() contract.CurriculumRepository {
	return &memCurriculum{u.store}
}

// filter understands the specifications the services use.
type filter struct {
	id             *uuid.UUID
	userID         *uuid.UUID
	conversationID *uuid.UUID
	questionIDs    map[uuid.UUID]bool
	desc           bool
}

func parseSpecs(specs []specification.Specification) filter {
	var f filter
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			f.id = &s.ID
		case specification.UserOwnedBy:
			f.userID = &s.UserID
		case specification.ByConversationID:
			f.conversationID = &s.ConversationID
		case specification.ByQuestionIDs:
			f.questionIDs = map[uuid.UUID]bool{}
			for _, id := range s.QuestionIDs {
				f.questionIDs[id] = true
			}
		case specification.OrderBy:
			f.desc = s.Desc
		}
	}
	return f
}

type memConversations struct{ s *memStore }

func (r *memConversations) Create(ctx context.Context, c *entity.Conversation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *c
	r.s.conversations[c.Id] = &cp
	return nil
}

func (r *memConversations) Update(ctx context.Context, c *entity.Conversation) error {
	return r.Create(ctx, c)
}

func (r *memConversations) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.conversations, id)
	return nil
}

func (r *memConversations) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error) {
	all, _ := r.FindAll(ctx, specs...)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r *memConversations) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f := parseSpecs(specs)
	var out []*entity.Conversation
	for _, c := range r.s.conversations {
		if f.id != nil && c.Id != *f.id {
			continue
		}
		if f.userID != nil && c.UserId != *f.userID {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if f.desc {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memConversations) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

type memQuestions struct{ s *memStore }

func (r *memQuestions) Create(ctx context.Context, q *entity.Question) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *q
	r.s.questions[q.Id] = &cp
	return nil
}

func (r *memQuestions) Update(ctx context.Context, q *entity.Question) error {
	return r.Create(ctx, q)
}

func (r *memQuestions) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Question, error) {
	all, _ := r.FindAll(ctx, specs...)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r *memQuestions) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Question, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f := parseSpecs(specs)
	var out []*entity.Question
	for _, q := range r.s.questions {
		if f.id != nil && q.Id != *f.id {
			continue
		}
		if f.userID != nil && q.UserId != *f.userID {
			continue
		}
		if f.conversationID != nil && q.ConversationId != *f.conversationID {
			continue
		}
		cp := *q
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

type memMessages struct{ s *memStore }

func (r *memMessages) Create(ctx context.Context, m *entity.Message) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failMessage != nil {
		return r.s.failMessage
	}
	cp := *m
	r.s.messages = append(r.s.messages, &cp)
	return nil
}

func (r *memMessages) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f := parseSpecs(specs)
	var out []*entity.Message
	for _, m := range r.s.messages {
		if f.questionIDs != nil && !f.questionIDs[m.QuestionId] {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memMessages) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

type memCurriculum struct{ s *memStore }

func (r *memCurriculum) ListTopics(ctx context.Context) ([]*entity.CurriculumTopic, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.topicLoads++
	return r.s.topics, nil
}

func (r *memCurriculum) record(format string, args ...interface{}) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.upserts = append(r.s.upserts, fmt.Sprintf(format, args...))
}

func (r *memCurriculum) UpsertStudyLevel(ctx context.Context, level string) (*entity.StudyLevel, error) {
	r.record("level %s", level)
	return &entity.StudyLevel{Id: 1, Level: level}, nil
}

func (r *memCurriculum) UpsertGrade(ctx context.Context, studyLevelId uint, grade string) (*entity.Grade, error) {
	r.record("grade %s", grade)
	return &entity.Grade{Id: 2, StudyLevelId: studyLevelId, Grade: grade}, nil
}

func (r *memCurriculum) UpsertMainTopic(ctx context.Context, gradeId uint, name string, displayOrder int) (*entity.MainTopic, error) {
	r.record("main %s #%d", name, displayOrder)
	return &entity.MainTopic{Id: 3, GradeId: gradeId, Name: name, DisplayOrder: displayOrder}, nil
}

func (r *memCurriculum) UpsertSubtopic(ctx context.Context, mainTopicId uint, name string, displayOrder int) (*entity.Subtopic, error) {
	r.record("sub %s #%d", name, displayOrder)
	return &entity.Subtopic{Id: 4, MainTopicId: mainTopicId, Name: name, DisplayOrder: displayOrder}, nil
}

// stubLLM answers with canned JSON and records the contents it was sent.
type stubLLM struct {
	mu       sync.Mutex
	response interface{}
	err      error
	calls    [][]llm.Content
}

func (p *stubLLM) GenerateStructured(ctx context.Context, contents []llm.Content, schema llm.Schema, opts ...llm.Option) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, contents)
	if p.err != nil {
		return "", p.err
	}
	raw, err := json.Marshal(p.response)
	return string(raw), err
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.EventType()
	}
	return out
}

type recordingJobs struct {
	payloads [][]byte
}

func (p *recordingJobs) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}
