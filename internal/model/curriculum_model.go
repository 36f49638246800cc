package model

import "time"

type StudyLevel struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	Level     string    `gorm:"type:varchar(10);not null;unique"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (StudyLevel) TableName() string {
	return "study_levels"
}

type Grade struct {
	Id           uint       `gorm:"primaryKey;autoIncrement"`
	StudyLevelId uint       `gorm:"not null;uniqueIndex:grades_study_level_id_grade_key,priority:1"`
	StudyLevel   StudyLevel `gorm:"constraint:OnDelete:CASCADE"`
	Grade        string     `gorm:"type:varchar(10);not null;uniqueIndex:grades_study_level_id_grade_key,priority:2"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
}

func (Grade) TableName() string {
	return "grades"
}

type MainTopic struct {
	Id           uint      `gorm:"primaryKey;autoIncrement"`
	GradeId      uint      `gorm:"not null;uniqueIndex:main_topics_grade_id_name_key,priority:1;index:idx_main_topics_order,priority:1"`
	Grade        Grade     `gorm:"constraint:OnDelete:CASCADE"`
	Name         string    `gorm:"type:varchar(255);not null;uniqueIndex:main_topics_grade_id_name_key,priority:2"`
	DisplayOrder int       `gorm:"not null;default:0;index:idx_main_topics_order,priority:2"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (MainTopic) TableName() string {
	return "main_topics"
}

type Subtopic struct {
	Id           uint      `gorm:"primaryKey;autoIncrement"`
	MainTopicId  uint      `gorm:"not null;index:idx_subtopics_order,priority:1"`
	MainTopic    MainTopic `gorm:"constraint:OnDelete:CASCADE"`
	Name         string    `gorm:"type:varchar(255);not null"`
	DisplayOrder int       `gorm:"not null;default:0;index:idx_subtopics_order,priority:2"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Subtopic) TableName() string {
	return "subtopics"
}

// CurriculumRow is the scan target of the joined topic query.
type CurriculumRow struct {
	Subtopic     string
	MainTopic    string
	Grade        string
	StudyLevel   string
	DisplayOrder int
}
