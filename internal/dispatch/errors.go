package dispatch

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrCancelled settles a Pending whose Cancel was called before completion.
	ErrCancelled = errors.New("dispatch cancelled")

	ErrMissingPathParam     = errors.New("missing path parameter")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidOperation     = errors.New("invalid operation")
)

// ConstructionError is returned before any network activity when an
// operation cannot be turned into a request.
type ConstructionError struct {
	Method string
	URL    string
	Err    error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("build %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *ConstructionError) Unwrap() error { return e.Err }

// NetworkError means no response was received: transport failure, timeout
// or a cancelled parent context.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("no response from %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Timeout reports whether the request failed on a deadline.
func (e *NetworkError) Timeout() bool {
	var t interface{ Timeout() bool }
	if errors.As(e.Err, &t) {
		return t.Timeout()
	}
	return false
}

// FieldError is one entry of the "detail" list of a 422 response.
type FieldError struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

// APIError is returned when the server answered with a non-2xx status.
type APIError struct {
	Method     string
	URL        string
	Status     int
	StatusText string
	// Summary is the operation's label for Status, a built-in label for
	// common statuses, or a generic description.
	Summary string
	Body    []byte
	// Detail holds validation errors; Message holds a plain string detail.
	Detail  []FieldError
	Message string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s (%d) on %s %s", e.Summary, e.Status, e.Method, e.URL)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if len(e.Detail) > 0 {
		parts := make([]string, 0, len(e.Detail))
		for _, d := range e.Detail {
			parts = append(parts, d.String())
		}
		msg += ": " + strings.Join(parts, "; ")
	}
	return msg
}

func (d FieldError) String() string {
	loc := make([]string, 0, len(d.Loc))
	for _, l := range d.Loc {
		loc = append(loc, fmt.Sprint(l))
	}
	if len(loc) == 0 {
		return d.Msg
	}
	return strings.Join(loc, ".") + ": " + d.Msg
}

// DecodeError is returned when a 2xx body does not match the expected type.
type DecodeError struct {
	URL         string
	ContentType string
	Body        []byte
	Err         error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response of %s (%s): %v", e.URL, e.ContentType, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

var defaultErrorLabels = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusUnauthorized:        "Unauthorized",
	http.StatusForbidden:           "Forbidden",
	http.StatusNotFound:            "Not Found",
	http.StatusInternalServerError: "Internal Server Error",
	http.StatusBadGateway:          "Bad Gateway",
	http.StatusServiceUnavailable:  "Service Unavailable",
}

func errorSummary(op *Operation, status int, statusText string) string {
	if label, ok := op.Errors[status]; ok && label != "" {
		return label
	}
	if label, ok := defaultErrorLabels[status]; ok {
		return label
	}
	if statusText == "" {
		statusText = http.StatusText(status)
	}
	return fmt.Sprintf("Generic Error: status %d %s", status, statusText)
}

// AsAPIError extracts an APIError from the error chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNetworkError reports whether err means that no response was received.
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsConstructionError reports whether err was raised before any network call.
func IsConstructionError(err error) bool {
	var cErr *ConstructionError
	return errors.As(err, &cErr)
}
