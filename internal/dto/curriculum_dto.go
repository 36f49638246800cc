package dto

type CurriculumTopicResponse struct {
	Subtopic   string `json:"subtopic"`
	MainTopic  string `json:"mainTopic"`
	Grade      string `json:"grade"`
	StudyLevel string `json:"studyLevel"`
	Label      string `json:"label"`
}
