package llm

import (
	"context"
	"errors"
)

const DefaultMaxTokens = 2000

// ErrEmptyResponse is returned when a provider answers with no text at all.
var ErrEmptyResponse = errors.New("llm returned empty result")

// InlineData is a base64 payload sent next to the prompt (images).
type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// Part is either text or inline data.
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

// Content is one turn of the conversation sent to a provider.
type Content struct {
	Role  string `json:"role"` // "user" or "model"
	Parts []Part `json:"parts"`
}

// UserText wraps a single prompt as the only turn.
func UserText(prompt string) []Content {
	return []Content{{Role: "user", Parts: []Part{{Text: prompt}}}}
}

// Schema is a JSON schema document describing the expected response object.
type Schema map[string]interface{}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

// ApplyOptions resolves options over the defaults shared by every provider.
func ApplyOptions(opts ...Option) *Options {
	options := &Options{MaxTokens: DefaultMaxTokens}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// StructuredProvider generates a single JSON object conforming to schema.
// Implementations return the raw JSON text.
type StructuredProvider interface {
	GenerateStructured(ctx context.Context, contents []Content, schema Schema, opts ...Option) (string, error)
}
