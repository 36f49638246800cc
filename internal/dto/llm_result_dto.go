package dto

// Shapes the tutor expects back from the model. The validate tags reject
// anything outside the enums before it reaches the database.

type ParseInputResult struct {
	Intent            string  `json:"intent" validate:"required,oneof=request_question paste_question chat"`
	Subject           *string `json:"subject"`
	ExtractedQuestion *string `json:"extractedQuestion"`
	Difficulty        *string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Response          string  `json:"response"`
}

type GeneratedQuestionResult struct {
	Subject     string `json:"subject" validate:"required"`
	Question    string `json:"question" validate:"required"`
	Difficulty  string `json:"difficulty" validate:"required,oneof=easy medium hard"`
	UserMessage string `json:"userMessage"`
}

type HandleMessageResult struct {
	Message          string `json:"message" validate:"required"`
	StatusUpdate     string `json:"statusUpdate" validate:"required,oneof=active completed abandoned"`
	ShouldEndSegment bool   `json:"shouldEndSegment"`
	Reasoning        string `json:"reasoning,omitempty"`
}

type AnalyzeImageResult struct {
	InCurriculum bool   `json:"inCurriculum"`
	Subject      string `json:"subject"`
	Question     string `json:"question"`
	Difficulty   string `json:"difficulty" validate:"required,oneof=easy medium hard"`
	UserMessage  string `json:"userMessage"`
}

type ConversationNameResult struct {
	Name string `json:"name" validate:"required"`
}
