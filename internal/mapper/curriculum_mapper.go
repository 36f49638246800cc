package mapper

import (
	"numero-be/internal/entity"
	"numero-be/internal/model"
)

type CurriculumMapper struct{}

func NewCurriculumMapper() *CurriculumMapper {
	return &CurriculumMapper{}
}

func (m *CurriculumMapper) RowToEntity(r *model.CurriculumRow) *entity.CurriculumTopic {
	if r == nil {
		return nil
	}
	return &entity.CurriculumTopic{
		Subtopic:     r.Subtopic,
		MainTopic:    r.MainTopic,
		Grade:        r.Grade,
		StudyLevel:   r.StudyLevel,
		DisplayOrder: r.DisplayOrder,
	}
}

func (m *CurriculumMapper) StudyLevelToEntity(s *model.StudyLevel) *entity.StudyLevel {
	return &entity.StudyLevel{Id: s.Id, Level: s.Level}
}

func (m *CurriculumMapper) GradeToEntity(g *model.Grade) *entity.Grade {
	return &entity.Grade{Id: g.Id, StudyLevelId: g.StudyLevelId, Grade: g.Grade}
}

func (m *CurriculumMapper) MainTopicToEntity(t *model.MainTopic) *entity.MainTopic {
	return &entity.MainTopic{Id: t.Id, GradeId: t.GradeId, Name: t.Name, DisplayOrder: t.DisplayOrder}
}

func (m *CurriculumMapper) SubtopicToEntity(t *model.Subtopic) *entity.Subtopic {
	return &entity.Subtopic{Id: t.Id, MainTopicId: t.MainTopicId, Name: t.Name, DisplayOrder: t.DisplayOrder}
}
