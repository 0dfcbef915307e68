package http

import (
	"net/http"

	"lm-events/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter records the status and the service error of a response
// so the middlewares that run after the handler can report them.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}

// UpstreamStatus is the events API status behind the error, 0 when the
// response did not fail because of the events API.
func (w *appResponseWriter) UpstreamStatus() int {
	if w.svcError != nil && w.svcError.IsUpstreamError() {
		return w.svcError.UpstreamStatus
	}
	return 0
}

// StatusOrDefault is the written status, 200 when the handler wrote a body
// without an explicit status or nothing at all.
func (w *appResponseWriter) StatusOrDefault() int {
	if status := w.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}

// responseDetails returns the recorded outcome of w, or defaults when the
// chain was not wrapped.
func responseDetails(w http.ResponseWriter) (status int, errorCode string, upstreamStatus int) {
	if appWriter, ok := w.(*appResponseWriter); ok {
		return appWriter.StatusOrDefault(), appWriter.ErrorCode(), appWriter.UpstreamStatus()
	}
	return http.StatusOK, "", 0
}
