package client

import (
	"context"
	"net/http"

	"lm-events/internal/dispatch"
	"lm-events/internal/models"
)

//go:generate mockgen -source=users.go -destination=./mocks/users_mock.go -package=mocks
type UsersService interface {
	ReadUserByID(ctx context.Context, userID int64) (*models.UserOut, error)
}

type usersService struct {
	cfg *dispatch.Config
}

func (s *usersService) ReadUserByID(ctx context.Context, userID int64) (*models.UserOut, error) {
	return callPtr[models.UserOut](ctx, s.cfg, &dispatch.Operation{
		Method: http.MethodGet,
		URL:    "/api/{api-version}/users/{user_id}",
		Path:   map[string]any{"user_id": userID},
	})
}
