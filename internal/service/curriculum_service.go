package service

import (
	"context"
	"fmt"
	"time"

	"numero-be/internal/dto"
	"numero-be/internal/entity"
	"numero-be/internal/repository/unitofwork"
	"numero-be/pkg/curriculum"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

const curriculumCacheKey = "curriculum_topics"

type ICurriculumService interface {
	Topics(ctx context.Context) ([]*entity.CurriculumTopic, error)
	// Formatted returns one line per subtopic, the form the tutor prompts use.
	Formatted(ctx context.Context) ([]string, error)
	List(ctx context.Context) ([]dto.CurriculumTopicResponse, error)
	Invalidate()
	// Import upserts a parsed outline in one transaction and returns the subtopic count.
	Import(ctx context.Context, units []curriculum.Unit) (int, error)
}

type curriculumService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *cache.Cache
	group      singleflight.Group
}

func NewCurriculumService(uowFactory unitofwork.RepositoryFactory, ttl time.Duration) ICurriculumService {
	return &curriculumService{
		uowFactory: uowFactory,
		cache:      cache.New(ttl, 10*time.Minute),
	}
}

func FormatTopic(t *entity.CurriculumTopic) string {
	return fmt.Sprintf("%s (%s, כיתה %s, יחידות לימוד %s)", t.Subtopic, t.MainTopic, t.Grade, t.StudyLevel)
}

func (s *curriculumService) Topics(ctx context.Context) ([]*entity.CurriculumTopic, error) {
	if cached, ok := s.cache.Get(curriculumCacheKey); ok {
		return cached.([]*entity.CurriculumTopic), nil
	}

	// Concurrent misses share one query.
	v, err, _ := s.group.Do(curriculumCacheKey, func() (interface{}, error) {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		topics, err := uow.CurriculumRepository().ListTopics(ctx)
		if err != nil {
			return nil, fmt.Errorf("load curriculum: %w", err)
		}
		s.cache.SetDefault(curriculumCacheKey, topics)
		return topics, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*entity.CurriculumTopic), nil
}

func (s *curriculumService) Formatted(ctx context.Context) ([]string, error) {
	topics, err := s.Topics(ctx)
	if err != nil {
		return nil, err
	}
	lines := make([]string, len(topics))
	for i, t := range topics {
		lines[i] = FormatTopic(t)
	}
	return lines, nil
}

func (s *curriculumService) List(ctx context.Context) ([]dto.CurriculumTopicResponse, error) {
	topics, err := s.Topics(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]dto.CurriculumTopicResponse, len(topics))
	for i, t := range topics {
		res[i] = dto.CurriculumTopicResponse{
			Subtopic:   t.Subtopic,
			MainTopic:  t.MainTopic,
			Grade:      t.Grade,
			StudyLevel: t.StudyLevel,
			Label:      FormatTopic(t),
		}
	}
	return res, nil
}

func (s *curriculumService) Invalidate() {
	s.cache.Delete(curriculumCacheKey)
}

func (s *curriculumService) Import(ctx context.Context, units []curriculum.Unit) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer uow.Rollback()

	repo := uow.CurriculumRepository()
	count := 0
	for _, unit := range units {
		level, err := repo.UpsertStudyLevel(ctx, unit.Level)
		if err != nil {
			return 0, fmt.Errorf("study level %s: %w", unit.Level, err)
		}
		grade, err := repo.UpsertGrade(ctx, level.Id, unit.Grade)
		if err != nil {
			return 0, fmt.Errorf("grade %s: %w", unit.Grade, err)
		}
		for i, main := range unit.MainTopics {
			mainTopic, err := repo.UpsertMainTopic(ctx, grade.Id, main.Name, i+1)
			if err != nil {
				return 0, fmt.Errorf("main topic %q: %w", main.Name, err)
			}
			for j, sub := range main.Subtopics {
				if _, err := repo.UpsertSubtopic(ctx, mainTopic.Id, sub, j+1); err != nil {
					return 0, fmt.Errorf("subtopic %q: %w", sub, err)
				}
				count++
			}
		}
	}

	if err := uow.Commit(); err != nil {
		return 0, err
	}
	s.Invalidate()
	return count, nil
}
