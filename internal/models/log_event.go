package models

import (
	"fmt"
	"time"
)

// Event names written by the events API.
const (
	EventRequest           = "request"
	EventResponse          = "response"
	EventModifiedRequest   = "modified_request"
	EventModifiedResponse  = "modified_response"
	EventUserEvaluation    = "user_evaluation"
	EventLMJudgeEvaluation = "lm_judge_evaluation"
)

// LogEvent is a logged LLM request, response or evaluation as returned by
// GET /events/. Content holds a JSON document whose shape depends on Name.
type LogEvent struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	ParentID  *int64 `json:"parent_id"`
	OwnerID   int64  `json:"owner_id"`
}

// EventsOut is a page of events.
type EventsOut struct {
	Data  []LogEvent `json:"data"`
	Count int        `json:"count"`
}

type EventCreate struct {
	Name     string `json:"name"`
	Content  string `json:"content"`
	ParentID *int64 `json:"parent_id"`
}

type EventUpdate struct {
	Name     *string `json:"name"`
	Content  *string `json:"content"`
	ParentID *int64  `json:"parent_id"`
}

type EventIdentifier struct {
	Identifier string `json:"identifier"`
	EventID    int64  `json:"event_id"`
}

type EventAttribute struct {
	EventID int64   `json:"event_id"`
	Name    string  `json:"name"`
	Value   *string `json:"value"`
}

type EventAttributeCreate struct {
	EventID int64   `json:"event_id"`
	Name    string  `json:"name"`
	Value   *string `json:"value"`
}

// ExportFormat is a bulk download format of /events/download/{format}.
type ExportFormat string

const (
	ExportParquet ExportFormat = "parquet"
	ExportCSV     ExportFormat = "csv"
)

func NewExportFormatFromString(s string) (ExportFormat, error) {
	switch f := ExportFormat(s); f {
	case ExportParquet, ExportCSV:
		return f, nil
	default:
		return "", fmt.Errorf("invalid export format: %q", s)
	}
}

// eventTimeLayouts are tried in order. The events API serializes naive UTC
// datetimes, so layouts without a zone are read as UTC.
var eventTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// ParseEventTime parses an ISO-8601 event timestamp as UTC.
func ParseEventTime(s string) (time.Time, error) {
	for _, layout := range eventTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid event timestamp: %q", s)
}

// Extension is the file extension of an export.
func (f ExportFormat) Extension() string {
	return "." + string(f)
}
