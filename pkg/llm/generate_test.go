package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	raw      string
	err      error
	contents []Content
	options  *Options
}

func (s *stubProvider) GenerateStructured(ctx context.Context, contents []Content, schema Schema, opts ...Option) (string, error) {
	s.contents = contents
	s.options = ApplyOptions(opts...)
	return s.raw, s.err
}

type answer struct {
	Name  string `json:"name" validate:"required"`
	Level string `json:"level" validate:"oneof=easy medium hard"`
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}```", `{"a":1}`},
		{"  \n", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, string(StripCodeFence(tt.in)))
	}
}

func TestGenerate(t *testing.T) {
	t.Run("decodes and validates", func(t *testing.T) {
		p := &stubProvider{raw: "```json\n{\"name\":\"x\",\"level\":\"hard\"}\n```"}
		got, err := Generate[answer](context.Background(), p, UserText("hi"), Schema{}, WithMaxTokens(50))
		require.NoError(t, err)
		assert.Equal(t, "x", got.Name)
		assert.Equal(t, 50, p.options.MaxTokens)
		assert.Equal(t, "hi", p.contents[0].Parts[0].Text)
	})

	t.Run("rejects values outside the enum", func(t *testing.T) {
		p := &stubProvider{raw: `{"name":"x","level":"impossible"}`}
		_, err := Generate[answer](context.Background(), p, UserText("hi"), Schema{})
		assert.ErrorContains(t, err, "invalid llm response")
	})

	t.Run("empty output", func(t *testing.T) {
		p := &stubProvider{raw: "   "}
		_, err := Generate[answer](context.Background(), p, UserText("hi"), Schema{})
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("provider error passes through", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := Generate[answer](context.Background(), &stubProvider{err: boom}, UserText("hi"), Schema{})
		assert.ErrorIs(t, err, boom)
	})
}

func TestApplyOptionsDefaults(t *testing.T) {
	o := ApplyOptions()
	assert.Equal(t, DefaultMaxTokens, o.MaxTokens)
	assert.Empty(t, o.Model)

	o = ApplyOptions(WithModel("m"), WithTemperature(0.2))
	assert.Equal(t, "m", o.Model)
	assert.InDelta(t, 0.2, o.Temperature, 1e-9)
}
