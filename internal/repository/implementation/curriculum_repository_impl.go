package implementation

import (
	"context"

	"numero-be/internal/entity"
	"numero-be/internal/mapper"
	"numero-be/internal/model"
	"numero-be/internal/repository/contract"

	"gorm.io/gorm"
)

type CurriculumRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CurriculumMapper
}

func NewCurriculumRepository(db *gorm.DB) contract.CurriculumRepository {
	return &CurriculumRepositoryImpl{
		db:     db,
		mapper: mapper.NewCurriculumMapper(),
	}
}

func (r *CurriculumRepositoryImpl) ListTopics(ctx context.Context) ([]*entity.CurriculumTopic, error) {
	var rows []*model.CurriculumRow
	err := r.db.WithContext(ctx).
		Table("subtopics").
		Select(`subtopics.name AS subtopic,
			main_topics.name AS main_topic,
			grades.grade AS grade,
			study_levels.level AS study_level,
			subtopics.display_order AS display_order`).
		Joins("JOIN main_topics ON main_topics.id = subtopics.main_topic_id").
		Joins("JOIN grades ON grades.id = main_topics.grade_id").
		Joins("JOIN study_levels ON study_levels.id = grades.study_level_id").
		Order("study_levels.level, grades.grade, main_topics.display_order, subtopics.display_order").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	topics := make([]*entity.CurriculumTopic, len(rows))
	for i, row := range rows {
		topics[i] = r.mapper.RowToEntity(row)
	}
	return topics, nil
}

func (r *CurriculumRepositoryImpl) UpsertStudyLevel(ctx context.Context, level string) (*entity.StudyLevel, error) {
	m := model.StudyLevel{Level: level}
	if err := r.db.WithContext(ctx).Where(model.StudyLevel{Level: level}).FirstOrCreate(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.mapper.StudyLevelToEntity(&m), nil
}

func (r *CurriculumRepositoryImpl) UpsertGrade(ctx context.Context, studyLevelId uint, grade string) (*entity.Grade, error) {
	m := model.Grade{StudyLevelId: studyLevelId, Grade: grade}
	if err := r.db.WithContext(ctx).Where(model.Grade{StudyLevelId: studyLevelId, Grade: grade}).FirstOrCreate(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.mapper.GradeToEntity(&m), nil
}

func (r *CurriculumRepositoryImpl) UpsertMainTopic(ctx context.Context, gradeId uint, name string, displayOrder int) (*entity.MainTopic, error) {
	m := model.MainTopic{GradeId: gradeId, Name: name}
	err := r.db.WithContext(ctx).
		Where(model.MainTopic{GradeId: gradeId, Name: name}).
		Assign(map[string]interface{}{"display_order": displayOrder}).
		FirstOrCreate(&m).Error
	if err != nil {
		return nil, translateError(err)
	}
	return r.mapper.MainTopicToEntity(&m), nil
}

func (r *CurriculumRepositoryImpl) UpsertSubtopic(ctx context.Context, mainTopicId uint, name string, displayOrder int) (*entity.Subtopic, error) {
	m := model.Subtopic{MainTopicId: mainTopicId, Name: name}
	err := r.db.WithContext(ctx).
		Where(model.Subtopic{MainTopicId: mainTopicId, Name: name}).
		Assign(map[string]interface{}{"display_order": displayOrder}).
		FirstOrCreate(&m).Error
	if err != nil {
		return nil, translateError(err)
	}
	return r.mapper.SubtopicToEntity(&m), nil
}
