package factory

import (
	"fmt"

	"numero-be/pkg/llm"
	"numero-be/pkg/llm/gemini"
	"numero-be/pkg/llm/ollama"
)

type Config struct {
	Provider      string // "gemini" or "ollama"
	Model         string
	APIKey        string
	GeminiBaseURL string
	OllamaBaseURL string
}

func NewLLMProvider(cfg Config) (llm.StructuredProvider, error) {
	switch cfg.Provider {
	case "gemini", "":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("gemini provider requires an API key")
		}
		return gemini.NewGeminiProvider(cfg.GeminiBaseURL, cfg.APIKey, cfg.Model), nil
	case "ollama":
		baseURL := cfg.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
