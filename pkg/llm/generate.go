package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Generate asks p for a structured answer and decodes it into T. The result is
// validated with T's `validate` tags, so callers can trust enum fields.
func Generate[T any](ctx context.Context, p StructuredProvider, contents []Content, schema Schema, opts ...Option) (*T, error) {
	raw, err := p.GenerateStructured(ctx, contents, schema, opts...)
	if err != nil {
		return nil, err
	}
	return Decode[T](raw)
}

// Decode parses a model answer into T.
func Decode[T any](raw string) (*T, error) {
	cleaned := StripCodeFence(raw)
	if len(cleaned) == 0 {
		return nil, ErrEmptyResponse
	}

	var out T
	if err := json.Unmarshal(cleaned, &out); err != nil {
		return nil, fmt.Errorf("decode llm response: %w", err)
	}
	if err := validate.Struct(&out); err != nil {
		return nil, fmt.Errorf("invalid llm response: %w", err)
	}
	return &out, nil
}

// StripCodeFence removes a ```json ... ``` wrapper some models add despite instructions.
func StripCodeFence(raw string) []byte {
	b := bytes.TrimSpace([]byte(raw))
	b = bytes.TrimPrefix(b, []byte("```json"))
	b = bytes.TrimPrefix(b, []byte("```"))
	b = bytes.TrimSuffix(b, []byte("```"))
	return bytes.TrimSpace(b)
}
