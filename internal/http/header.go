package http

import (
	"net/http"
	"strings"

	"github.com/mileusna/useragent"
)

const (
	headerRequestID   = "x-request-id"
	headerContentType = "content-type"
	headerUserAgent   = "user-agent"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

// userAgentFamily returns the browser or client family of the caller, or
// the raw header when it cannot be parsed.
func userAgentFamily(r *http.Request) string {
	ua := strings.TrimSpace(r.Header.Get(headerUserAgent))
	if ua == "" {
		return ""
	}
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}
	return ua
}
