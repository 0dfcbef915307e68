package events

import (
	"fmt"
	"strings"

	"lm-events/internal/models"

	"github.com/tidwall/gjson"
)

const previewMaxLen = 80

// Preview renders a one-line summary of an event for listings.
func Preview(e *models.LogEvent) string {
	content := e.Content
	if !gjson.Valid(content) {
		return truncate("invalid: "+oneLine(content), previewMaxLen)
	}

	var s string
	switch e.Name {
	case models.EventRequest, models.EventModifiedRequest:
		model := gjson.Get(content, "content.model").String()
		last := lastMessage(gjson.Get(content, "content.messages"), "user")
		s = strings.TrimSpace(fmt.Sprintf("%s %s", model, last))
		if s == "" {
			s = gjson.Get(content, "url").String()
		}
	case models.EventResponse, models.EventModifiedResponse:
		status := gjson.Get(content, "status_code").Int()
		msg := gjson.Get(content, "content.choices.0.message.content").String()
		s = strings.TrimSpace(fmt.Sprintf("%d %s", status, msg))
	case models.EventUserEvaluation, models.EventLMJudgeEvaluation:
		if v := gjson.Get(content, "value"); v.Exists() {
			s = fmt.Sprintf("score %g", v.Float())
		}
	}
	if s == "" {
		s = gjson.Parse(content).Raw
	}
	return truncate(oneLine(s), previewMaxLen)
}

// lastMessage returns the content of the last message sent by role.
func lastMessage(messages gjson.Result, role string) string {
	var out string
	messages.ForEach(func(_, m gjson.Result) bool {
		if m.Get("role").String() == role {
			out = m.Get("content").String()
		}
		return true
	})
	return out
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
