package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"numero-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStructured(t *testing.T) {
	var got generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"name\":"},{"text":"\"אלגברה\"}"}]}}]}`))
	}))
	defer srv.Close()

	p := NewGeminiProvider(srv.URL, "secret", "gemini-test")
	contents := []llm.Content{{Role: "user", Parts: []llm.Part{
		{Text: "prompt"},
		{InlineData: &llm.InlineData{MimeType: "image/png", Data: "aGVsbG8="}},
	}}}

	raw, err := p.GenerateStructured(context.Background(), contents, llm.Schema{"type": "object"})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"אלגברה"}`, raw)

	assert.Equal(t, "application/json", got.GenerationConfig.ResponseMimeType)
	assert.Equal(t, llm.DefaultMaxTokens, got.GenerationConfig.MaxOutputTokens)
	assert.Equal(t, "object", got.GenerationConfig.ResponseJSONSchema["type"])
	require.Len(t, got.Contents[0].Parts, 2)
	assert.Equal(t, "image/png", got.Contents[0].Parts[1].InlineData.MimeType)
	assert.Nil(t, got.GenerationConfig.Temperature)
}

func TestGenerateStructuredErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		errIs  error
		errMsg string
	}{
		{name: "no candidates", status: 200, body: `{"candidates":[]}`, errIs: llm.ErrEmptyResponse},
		{name: "blank text", status: 200, body: `{"candidates":[{"content":{"parts":[{"text":"  "}]}}]}`, errIs: llm.ErrEmptyResponse},
		{name: "http error", status: 429, body: `quota`, errMsg: "status 429"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewGeminiProvider(srv.URL, "k", "m").GenerateStructured(context.Background(), llm.UserText("x"), nil)
			require.Error(t, err)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
			}
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}
