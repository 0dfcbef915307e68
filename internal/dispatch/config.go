package dispatch

import (
	"context"
	"net/http"
	"time"
)

// TokenProvider yields the bearer token for one dispatch. It is consulted
// once per dispatch, right before the request is sent.
type TokenProvider interface {
	Token(ctx context.Context, op *Operation) (string, error)
}

// StaticToken is a fixed bearer token.
type StaticToken string

func (t StaticToken) Token(context.Context, *Operation) (string, error) {
	return string(t), nil
}

// TokenFunc resolves a token without looking at the operation.
type TokenFunc func() (string, error)

func (f TokenFunc) Token(context.Context, *Operation) (string, error) {
	return f()
}

// OperationTokenFunc resolves a token from the context and the operation
// about to be sent. It may block, so it must honor ctx.
type OperationTokenFunc func(ctx context.Context, op *Operation) (string, error)

func (f OperationTokenFunc) Token(ctx context.Context, op *Operation) (string, error) {
	return f(ctx, op)
}

// HeaderProvider yields default headers for one dispatch.
type HeaderProvider interface {
	Headers(ctx context.Context, op *Operation) (map[string]string, error)
}

// StaticHeaders is a fixed set of default headers.
type StaticHeaders map[string]string

func (h StaticHeaders) Headers(context.Context, *Operation) (map[string]string, error) {
	return h, nil
}

// HeadersFunc resolves default headers per dispatch.
type HeadersFunc func(ctx context.Context, op *Operation) (map[string]string, error)

func (f HeadersFunc) Headers(ctx context.Context, op *Operation) (map[string]string, error) {
	return f(ctx, op)
}

// Config is shared by every dispatch against one API.
type Config struct {
	// BaseURL is prepended to every operation URL.
	BaseURL string
	// Version replaces the {api-version} placeholder in operation URLs.
	Version string

	Headers HeaderProvider
	Token   TokenProvider
	// Username and Password are sent as basic credentials when no token
	// is resolved.
	Username string
	Password string

	// HTTPClient defaults to a client with Timeout.
	HTTPClient *http.Client
	Timeout    time.Duration

	// RequestID, when set, generates an x-request-id header for requests
	// that do not carry one.
	RequestID func() string
}

const defaultTimeout = 30 * time.Second

func (c *Config) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
