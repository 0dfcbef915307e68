package client

import (
	"context"
	"net/http"

	"lm-events/internal/dispatch"
	"lm-events/internal/models"
)

//go:generate mockgen -source=settings.go -destination=./mocks/settings_mock.go -package=mocks
type SettingsService interface {
	ReadSettings(ctx context.Context, skip, limit int) (*models.SettingsOut, error)
	CreateSetting(ctx context.Context, in *models.SettingCreate) (*models.SettingOut, error)
	ReadSetting(ctx context.Context, name string) (*models.SettingOut, error)
	// CreateSettingGet creates a setting through the GET shortcut.
	CreateSettingGet(ctx context.Context, name, content string) (*models.SettingOut, error)
}

type settingsService struct {
	cfg *dispatch.Config
}

func (s *settingsService) ReadSettings(ctx context.Context, skip, limit int) (*models.SettingsOut, error) {
	return callPtr[models.SettingsOut](ctx, s.cfg, &dispatch.Operation{
		Method: http.MethodGet,
		URL:    "/api/{api-version}/settings/",
		Query:  map[string]any{"skip": skip, "limit": limit},
	})
}

func (s *settingsService) CreateSetting(ctx context.Context, in *models.SettingCreate) (*models.SettingOut, error) {
	return callPtr[models.SettingOut](ctx, s.cfg, &dispatch.Operation{
		Method:    http.MethodPost,
		URL:       "/api/{api-version}/settings/",
		Body:      in,
		MediaType: dispatch.MediaTypeJSON,
	})
}

func (s *settingsService) ReadSetting(ctx context.Context, name string) (*models.SettingOut, error) {
	return callPtr[models.SettingOut](ctx, s.cfg, &dispatch.Operation{
		Method: http.MethodGet,
		URL:    "/api/{api-version}/settings/{name}",
		Path:   map[string]any{"name": name},
	})
}

func (s *settingsService) CreateSettingGet(ctx context.Context, name, content string) (*models.SettingOut, error) {
	return callPtr[models.SettingOut](ctx, s.cfg, &dispatch.Operation{
		Method: http.MethodGet,
		URL:    "/api/{api-version}/settings/{name}/{content}",
		Path:   map[string]any{"name": name, "content": content},
	})
}
