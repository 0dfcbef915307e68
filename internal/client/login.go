package client

import (
	"context"
	"net/http"

	"lm-events/internal/dispatch"
	"lm-events/internal/models"
)

//go:generate mockgen -source=login.go -destination=./mocks/login_mock.go -package=mocks
type LoginService interface {
	// AccessToken exchanges credentials for a bearer token.
	AccessToken(ctx context.Context, username, password string) (*models.Token, error)
	TestToken(ctx context.Context) (*models.UserOut, error)
	RecoverPassword(ctx context.Context, email string) (*models.Message, error)
	ResetPassword(ctx context.Context, in *models.NewPassword) (*models.Message, error)
}

type loginService struct {
	cfg *dispatch.Config
}

func (s *loginService) AccessToken(ctx context.Context, username, password string) (*models.Token, error) {
	return callPtr[models.Token](ctx, s.cfg, &dispatch.Operation{
		Method: http.MethodPost,
		URL:    "/api/{api-version}/login/access-token",
		FormData: map[string]any{
			"grant_type": "password",
			"username":   username,
			"password":   password,
		},
		MediaType: dispatch.MediaTypeFormURLEncoded,
	})
}

func (s *loginService) TestToken(ctx context.Context) (*models.UserOut, error) {
	return callPtr[models.UserOut](ctx, s.cfg, &dispatch.Operation{
		Method: http.MethodPost,
		URL:    "/api/{api-version}/login/test-token",
		Errors: map[int]string{},
	})
}

func (s *loginService) RecoverPassword(ctx context.Context, email string) (*models.Message, error) {
	return callPtr[models.Message](ctx, s.cfg, &dispatch.Operation{
		Method: http.MethodPost,
		URL:    "/api/{api-version}/password-recovery/{email}",
		Path:   map[string]any{"email": email},
	})
}

func (s *loginService) ResetPassword(ctx context.Context, in *models.NewPassword) (*models.Message, error) {
	return callPtr[models.Message](ctx, s.cfg, &dispatch.Operation{
		Method:    http.MethodPost,
		URL:       "/api/{api-version}/reset-password/",
		Body:      in,
		MediaType: dispatch.MediaTypeJSON,
	})
}
