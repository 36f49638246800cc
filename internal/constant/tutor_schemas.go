package constant

import "numero-be/pkg/llm"

var difficultyEnum = []string{"easy", "medium", "hard"}

func str() map[string]interface{} {
	return map[string]interface{}{"type": "string"}
}

func nullable(s map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{"anyOf": []interface{}{s, map[string]interface{}{"type": "null"}}}
}

func enum(values []string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "enum": values}
}

func object(required []string, properties map[string]interface{}) llm.Schema {
	return llm.Schema{
		"type":                 "object",
		"properties":           properties,
		"required":             required,
		"additionalProperties": false,
	}
}

var ParseInputSchema = object(
	[]string{"intent", "subject", "extractedQuestion", "difficulty", "response"},
	map[string]interface{}{
		"intent":            enum([]string{"request_question", "paste_question", "chat"}),
		"subject":           nullable(str()),
		"extractedQuestion": nullable(str()),
		"difficulty":        nullable(enum(difficultyEnum)),
		"response":          str(),
	},
)

// GeneratedQuestionSchema serves both generated questions and questions built from user text.
var GeneratedQuestionSchema = object(
	[]string{"subject", "question", "difficulty", "userMessage"},
	map[string]interface{}{
		"subject":     str(),
		"question":    str(),
		"difficulty":  enum(difficultyEnum),
		"userMessage": str(),
	},
)

var HandleMessageSchema = object(
	[]string{"message", "statusUpdate", "shouldEndSegment"},
	map[string]interface{}{
		"message":          str(),
		"statusUpdate":     enum([]string{"active", "completed", "abandoned"}),
		"shouldEndSegment": map[string]interface{}{"type": "boolean"},
		"reasoning":        str(),
	},
)

var AnalyzeImageSchema = object(
	[]string{"inCurriculum", "subject", "question", "difficulty", "userMessage"},
	map[string]interface{}{
		"inCurriculum": map[string]interface{}{"type": "boolean"},
		"subject":      str(),
		"question":     str(),
		"difficulty":   enum(difficultyEnum),
		"userMessage":  str(),
	},
)

var NameConversationSchema = object(
	[]string{"name"},
	map[string]interface{}{
		"name": map[string]interface{}{"type": "string", "maxLength": 40},
	},
)
