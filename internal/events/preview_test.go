package events

import (
	"strings"
	"testing"

	"lm-events/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPreview(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		event    models.LogEvent
		expected string
	}{
		{
			name: "request shows model and last user message",
			event: models.LogEvent{Name: models.EventRequest, Content: `{"url":"u","content":{"model":"gpt-4o","messages":[
				{"role":"system","content":"be brief"},
				{"role":"user","content":"first"},
				{"role":"assistant","content":"ok"},
				{"role":"user","content":"what is\n a ulid?"}]}}`},
			expected: "gpt-4o what is a ulid?",
		},
		{
			name:     "request without messages falls back to url",
			event:    models.LogEvent{Name: models.EventRequest, Content: `{"url":"https://api.openai.com/v1/models"}`},
			expected: "https://api.openai.com/v1/models",
		},
		{
			name:     "response shows first choice",
			event:    models.LogEvent{Name: models.EventResponse, Content: `{"status_code":200,"content":{"choices":[{"message":{"role":"assistant","content":"hello"}}]}}`},
			expected: "200 hello",
		},
		{
			name:     "evaluation shows score",
			event:    models.LogEvent{Name: models.EventUserEvaluation, Content: `{"value":0.5}`},
			expected: "score 0.5",
		},
		{
			name:     "unknown event shows compact json",
			event:    models.LogEvent{Name: "custom", Content: `{"a": 1}`},
			expected: `{"a": 1}`,
		},
		{
			name:     "invalid content",
			event:    models.LogEvent{Name: models.EventRequest, Content: "oops"},
			expected: "invalid: oops",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Preview(&tt.event))
		})
	}
}

func TestPreview_Truncates(t *testing.T) {
	t.Parallel()

	e := &models.LogEvent{
		Name:    models.EventRequest,
		Content: `{"content":{"model":"m","messages":[{"role":"user","content":"` + strings.Repeat("x", 200) + `"}]}}`,
	}

	got := Preview(e)
	assert.Equal(t, previewMaxLen, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))
}
