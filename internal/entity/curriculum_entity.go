package entity

// CurriculumTopic is one subtopic joined with everything above it.
type CurriculumTopic struct {
	Subtopic     string
	MainTopic    string
	Grade        string
	StudyLevel   string
	DisplayOrder int
}

type StudyLevel struct {
	Id    uint
	Level string
}

type Grade struct {
	Id           uint
	StudyLevelId uint
	Grade        string
}

type MainTopic struct {
	Id           uint
	GradeId      uint
	Name         string
	DisplayOrder int
}

type Subtopic struct {
	Id           uint
	MainTopicId  uint
	Name         string
	DisplayOrder int
}
