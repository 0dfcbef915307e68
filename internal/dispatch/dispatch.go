// Package dispatch sends typed requests to a REST API described by
// Operation values and decodes the responses.
package dispatch

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"lm-events/internal/shared/loggers"
)

const headerRequestID = "x-request-id"

// Dispatch validates op and starts sending it. Construction failures are
// returned here, before any network activity; every other outcome is
// delivered through the returned Pending. With T = io.ReadCloser a 2xx
// body is handed over unread and the caller must close it.
func Dispatch[T any](ctx context.Context, cfg *Config, op *Operation) (*Pending[T], error) {
	if cfg == nil || op == nil {
		return nil, &ConstructionError{Err: ErrInvalidOperation}
	}
	method := strings.ToUpper(op.Method)
	if method == "" {
		method = http.MethodGet
	}

	target, err := buildURL(cfg, op)
	if err != nil {
		return nil, &ConstructionError{Method: method, URL: op.URL, Err: err}
	}
	body, err := buildBody(op)
	if err != nil {
		return nil, &ConstructionError{Method: method, URL: op.URL, Err: err}
	}

	reqCtx, abort := context.WithCancel(ctx)
	p := newPending[T](abort)
	go send(reqCtx, abort, cfg, op, method, target, body, p)
	return p, nil
}

// Do dispatches op and waits for the result.
func Do[T any](ctx context.Context, cfg *Config, op *Operation) (T, error) {
	p, err := Dispatch[T](ctx, cfg, op)
	if err != nil {
		var zero T
		return zero, err
	}
	return p.Await(ctx)
}

// send settles p. abort is released on return, except when a streamed body
// is handed to the caller, in which case closing the body releases it.
func send[T any](ctx context.Context, abort context.CancelFunc, cfg *Config, op *Operation, method, target string, body *encodedBody, p *Pending[T]) {
	logger := loggers.Ctx(ctx)
	handedOff := false
	defer func() {
		if !handedOff {
			abort()
		}
	}()

	var reader io.Reader
	if body != nil {
		reader = body.reader
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		p.reject(&ConstructionError{Method: method, URL: op.URL, Err: err})
		return
	}
	if err := applyHeaders(ctx, cfg, op, req, body); err != nil {
		p.reject(&ConstructionError{Method: method, URL: op.URL, Err: err})
		return
	}

	start := time.Now()
	resp, err := cfg.httpClient().Do(req)
	metricDispatchDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		if p.State() == StateCancelled {
			metricDispatchTotal.WithLabelValues(method, valueOutcomeCancelled).Inc()
			return
		}
		metricDispatchTotal.WithLabelValues(method, valueOutcomeNetwork).Inc()
		logger.Debug().Err(err).Str(loggers.FieldUpstream, target).Msgf("%s failed without response", method)
		p.reject(&NetworkError{Method: method, URL: target, Err: err})
		return
	}
	if isStream[T]() && resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		logger.Debug().Str(loggers.FieldUpstream, target).Msgf("%s returned %d, streaming body", method, resp.StatusCode)
		metricDispatchTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
		stream := io.ReadCloser(&streamBody{body: resp.Body, method: method, url: target, release: abort})
		if v, ok := any(stream).(T); ok && p.resolve(v) {
			handedOff = true
			return
		}
		_ = resp.Body.Close()
		return
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if p.State() == StateCancelled {
			metricDispatchTotal.WithLabelValues(method, valueOutcomeCancelled).Inc()
			return
		}
		metricDispatchTotal.WithLabelValues(method, valueOutcomeNetwork).Inc()
		p.reject(&NetworkError{Method: method, URL: target, Err: fmt.Errorf("read body: %w", err)})
		return
	}
	logger.Debug().Str(loggers.FieldUpstream, target).Msgf("%s returned %d", method, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metricDispatchTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
		p.reject(newAPIError(op, method, target, resp, raw))
		return
	}

	value, err := decodeResponse[T](resp.Header, raw, op.ResponseHeader)
	if err != nil {
		metricDispatchTotal.WithLabelValues(method, valueOutcomeDecode).Inc()
		p.reject(&DecodeError{URL: target, ContentType: resp.Header.Get("Content-Type"), Body: raw, Err: err})
		return
	}
	metricDispatchTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
	p.resolve(value)
}

// isStream reports whether T asks for the undecoded response body.
func isStream[T any]() bool {
	_, ok := any((*T)(nil)).(*io.ReadCloser)
	return ok
}

// streamBody is a 2xx response body handed to the caller unread. Read
// failures surface as NetworkError; Close releases the request context.
type streamBody struct {
	body    io.ReadCloser
	method  string
	url     string
	release context.CancelFunc
}

func (b *streamBody) Read(p []byte) (int, error) {
	n, err := b.body.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		err = &NetworkError{Method: b.method, URL: b.url, Err: fmt.Errorf("read body: %w", err)}
	}
	return n, err
}

func (b *streamBody) Close() error {
	err := b.body.Close()
	b.release()
	return err
}

func applyHeaders(ctx context.Context, cfg *Config, op *Operation, req *http.Request, body *encodedBody) error {
	req.Header.Set("Accept", MediaTypeJSON)

	if cfg.Headers != nil {
		defaults, err := cfg.Headers.Headers(ctx, op)
		if err != nil {
			return fmt.Errorf("resolve headers: %w", err)
		}
		for k, v := range defaults {
			if v != "" {
				req.Header.Set(k, v)
			}
		}
	}
	for k, v := range op.Headers {
		if v != "" {
			req.Header.Set(k, v)
		}
	}

	token := ""
	if cfg.Token != nil {
		t, err := cfg.Token.Token(ctx, op)
		if err != nil {
			return fmt.Errorf("resolve token: %w", err)
		}
		token = t
	}
	switch {
	case token != "":
		req.Header.Set("Authorization", "Bearer "+token)
	case cfg.Username != "" && cfg.Password != "":
		credentials := base64.StdEncoding.EncodeToString([]byte(cfg.Username + ":" + cfg.Password))
		req.Header.Set("Authorization", "Basic "+credentials)
	}

	if body != nil && body.contentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", body.contentType)
	}
	// multipart boundaries are generated per body
	if body != nil && strings.HasPrefix(body.contentType, MediaTypeMultipart) {
		req.Header.Set("Content-Type", body.contentType)
	}

	if cfg.RequestID != nil && req.Header.Get(headerRequestID) == "" {
		req.Header.Set(headerRequestID, cfg.RequestID())
	}
	return nil
}

func decodeResponse[T any](header http.Header, raw []byte, responseHeader string) (T, error) {
	var out T
	if responseHeader != "" {
		if v := header.Get(responseHeader); v != "" {
			if s, ok := any(&out).(*string); ok {
				*s = v
				return out, nil
			}
			if err := json.Unmarshal([]byte(strconv.Quote(v)), &out); err != nil {
				return out, fmt.Errorf("header %s: %w", responseHeader, err)
			}
			return out, nil
		}
	}

	jsonBody := isJSON(header.Get("Content-Type"))
	switch target := any(&out).(type) {
	case *[]byte:
		*target = raw
		return out, nil
	case *string:
		if jsonBody && json.Unmarshal(raw, target) == nil {
			return out, nil
		}
		*target = string(raw)
		return out, nil
	case *any:
		if len(raw) == 0 {
			return out, nil
		}
		if jsonBody || json.Valid(raw) {
			err := json.Unmarshal(raw, target)
			return out, err
		}
		*target = string(raw)
		return out, nil
	}

	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, err
	}
	return out, nil
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == MediaTypeJSON || strings.HasSuffix(mediaType, "+json")
}

func newAPIError(op *Operation, method, target string, resp *http.Response, raw []byte) *APIError {
	statusText := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if statusText == "" {
		statusText = http.StatusText(resp.StatusCode)
	}

	apiErr := &APIError{
		Method:     method,
		URL:        target,
		Status:     resp.StatusCode,
		StatusText: statusText,
		Summary:    errorSummary(op, resp.StatusCode, statusText),
		Body:       raw,
	}

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if json.Unmarshal(raw, &payload) != nil || len(payload.Detail) == 0 {
		return apiErr
	}
	var message string
	if err := json.Unmarshal(payload.Detail, &message); err == nil {
		apiErr.Message = message
		return apiErr
	}
	var detail []FieldError
	if err := json.Unmarshal(payload.Detail, &detail); err == nil {
		apiErr.Detail = detail
	}
	return apiErr
}

// IsCancelled reports whether err comes from a cancelled dispatch.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
