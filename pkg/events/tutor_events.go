package events

const (
	QuestionCreated       = "QUESTION_CREATED"
	QuestionStatusChanged = "QUESTION_STATUS_CHANGED"
	ConversationRenamed   = "CONVERSATION_RENAMED"
)
