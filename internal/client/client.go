// Package client exposes the events API as typed services.
package client

import (
	"context"
	"net/http"
	"time"

	"lm-events/internal/dispatch"
	"lm-events/internal/shared/configs"
	"lm-events/internal/shared/ulid"
)

const labelValidationError = "Validation Error"

// Client groups the services of one events API.
type Client struct {
	Events     EventsService
	Documents  DocumentsService
	Extractors ExtractorsService
	Login      LoginService
	Settings   SettingsService
	Users      UsersService
}

// New builds the services over cfg. cfg is shared, not copied.
func New(cfg *dispatch.Config) *Client {
	return &Client{
		Events:     &eventsService{cfg: cfg},
		Documents:  &documentsService{cfg: cfg},
		Extractors: &extractorsService{cfg: cfg},
		Login:      &loginService{cfg: cfg},
		Settings:   &settingsService{cfg: cfg},
		Users:      &usersService{cfg: cfg},
	}
}

// NewConfig builds a dispatch config from the upstream section. A nil token
// falls back to the configured static token. Every request carries a fresh
// x-request-id.
func NewConfig(cfg configs.UpstreamConfig, token dispatch.TokenProvider) *dispatch.Config {
	if token == nil {
		token = dispatch.StaticToken(cfg.Token)
	}
	var headers dispatch.HeaderProvider
	if len(cfg.Headers) > 0 {
		headers = dispatch.StaticHeaders(cfg.Headers)
	}
	return &dispatch.Config{
		BaseURL:   cfg.BaseURL,
		Version:   cfg.Version,
		Headers:   headers,
		Token:     token,
		Username:  cfg.Username,
		Password:  cfg.Password,
		Timeout:   time.Duration(cfg.Timeout) * time.Second,
		RequestID: ulid.NewULID,
	}
}

func errorLabels() map[int]string {
	return map[int]string{http.StatusUnprocessableEntity: labelValidationError}
}

// call dispatches op and waits for it. Every operation of the API declares
// its 422 label.
func call[T any](ctx context.Context, cfg *dispatch.Config, op *dispatch.Operation) (T, error) {
	if op.Errors == nil {
		op.Errors = errorLabels()
	}
	return dispatch.Do[T](ctx, cfg, op)
}

func callPtr[T any](ctx context.Context, cfg *dispatch.Config, op *dispatch.Operation) (*T, error) {
	out, err := call[T](ctx, cfg, op)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
