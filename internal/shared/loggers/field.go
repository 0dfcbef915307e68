package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"
	FieldUserAgent  = "user_agent"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldEventID        = "event_id"
	FieldEventName      = "event_name"
	FieldUpstream       = "upstream_url"
	FieldUpstreamStatus = "upstream_status"
	FieldPageSkip       = "page_skip"
	FieldAttempt        = "attempt"
)
