package contract

import (
	"context"

	"numero-be/internal/entity"
)

type CurriculumRepository interface {
	// ListTopics returns every subtopic ordered by level, grade, main topic and display order.
	ListTopics(ctx context.Context) ([]*entity.CurriculumTopic, error)

	UpsertStudyLevel(ctx context.Context, level string) (*entity.StudyLevel, error)
	UpsertGrade(ctx context.Context, studyLevelId uint, grade string) (*entity.Grade, error)
	UpsertMainTopic(ctx context.Context, gradeId uint, name string, displayOrder int) (*entity.MainTopic, error)
	UpsertSubtopic(ctx context.Context, mainTopicId uint, name string, displayOrder int) (*entity.Subtopic, error)
}
