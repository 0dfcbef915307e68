// Package events decodes the JSON content carried by logged events.
package events

import (
	"encoding/json"
	"errors"
	"fmt"

	"lm-events/internal/models"
)

// Kind of a decoded payload.
type Kind string

const (
	KindRequest    Kind = "request"
	KindResponse   Kind = "response"
	KindEvaluation Kind = "evaluation"
	KindOpaque     Kind = "opaque"
)

// ErrInvalidContent is returned when event content is not JSON.
var ErrInvalidContent = errors.New("event content is not valid json")

// Payload is one of *Request, *Response, *Evaluation or *Opaque.
type Payload interface {
	Kind() Kind
}

// Request is an outgoing LLM call as logged by the gateway.
type Request struct {
	Method  string            `json:"method"`
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers,omitempty"`
	Content json.RawMessage   `json:"content,omitempty"`
}

// Response is the upstream answer to a Request.
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers,omitempty"`
	Content    json.RawMessage   `json:"content,omitempty"`
}

// Evaluation is a score given by a user or by an LM judge.
type Evaluation struct {
	Value float64 `json:"value"`
}

// Opaque holds content that does not match the shape expected for its
// event name.
type Opaque struct {
	Raw json.RawMessage
}

func (*Request) Kind() Kind    { return KindRequest }
func (*Response) Kind() Kind   { return KindResponse }
func (*Evaluation) Kind() Kind { return KindEvaluation }
func (*Opaque) Kind() Kind     { return KindOpaque }

// Decode picks the payload variant from the event name. It fails only when
// content is not JSON; a shape mismatch yields *Opaque.
func Decode(name, content string) (Payload, error) {
	raw := json.RawMessage(content)
	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: event %q", ErrInvalidContent, name)
	}

	switch name {
	case models.EventRequest, models.EventModifiedRequest:
		var req Request
		if err := json.Unmarshal(raw, &req); err == nil && req.URL != "" {
			return &req, nil
		}
	case models.EventResponse, models.EventModifiedResponse:
		var resp Response
		if err := json.Unmarshal(raw, &resp); err == nil && resp.StatusCode != 0 {
			return &resp, nil
		}
	case models.EventUserEvaluation, models.EventLMJudgeEvaluation:
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(raw, &probe); err == nil {
			if _, ok := probe["value"]; ok {
				var eval Evaluation
				if err := json.Unmarshal(raw, &eval); err == nil {
					return &eval, nil
				}
			}
		}
	}
	return &Opaque{Raw: raw}, nil
}

// DecodeEvent decodes the content of e.
func DecodeEvent(e *models.LogEvent) (Payload, error) {
	return Decode(e.Name, e.Content)
}
