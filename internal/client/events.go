package client

import (
	"context"
	"io"
	"net/http"

	"lm-events/internal/dispatch"
	"lm-events/internal/models"
)

// DefaultDownloadLimit matches the server default of /events/download.
const DefaultDownloadLimit = 1000000

//go:generate mockgen -source=events.go -destination=./mocks/events_mock.go -package=mocks
type EventsService interface {
	ReadEvents(ctx context.Context, skip, limit int) (*models.EventsOut, error)
	CreateEvent(ctx context.Context, in *models.EventCreate) (*models.LogEvent, error)
	ReadEvent(ctx context.Context, id int64) (*models.LogEvent, error)
	UpdateEvent(ctx context.Context, id int64, in *models.EventUpdate) (*models.LogEvent, error)
	DeleteEvent(ctx context.Context, id int64) (*models.Message, error)

	ReadEventByIdentifier(ctx context.Context, identifier string) (*models.LogEvent, error)
	CreateEventIdentifier(ctx context.Context, in *models.EventIdentifier) (*models.EventIdentifier, error)
	DeleteEventIdentifier(ctx context.Context, identifier string) (*models.EventIdentifier, error)

	CreateEventAttribute(ctx context.Context, in *models.EventAttributeCreate) (*models.EventAttribute, error)
	ReadEventAttribute(ctx context.Context, id int64, name string) (*models.EventAttribute, error)
	DeleteEventAttribute(ctx context.Context, id int64, name string) (*models.EventAttribute, error)

	// DownloadEvents streams the raw export file. limit <= 0 uses the
	// server default. The caller closes the body.
	DownloadEvents(ctx context.Context, format models.ExportFormat, skip, limit int) (io.ReadCloser, error)
}

type eventsService struct {
	cfg *dispatch.Config
}

func (s *eventsService) ReadEvents(ctx context.Context, skip, limit int) (*models.EventsOut, error) {
	return callPtr[models.EventsOut](ctx, s.cfg, &dispatch.Operation{
		Method: http.MethodGet,
		URL:    "/api/{api-version}/events/",
		Query:  map[string]any{"skip": skip, "limit": limit},
	})
}

func (s *eventsService) CreateEvent(ctx context.Context, in *models.EventCreate) (*models.LogEvent, error) {
	return callPtr[models.LogEvent](ctx, s.cfg, &dispatch.Operation{
		Method:    http.MethodPost,
		URL:       "/api/{api-version}/events/",
		Body:      in,
		MediaType: dispatch.MediaTypeJSON,
	})
}

func (s *eventsService) ReadEvent(ctx context.Context, id int64) (*models.LogEvent, error) {
	return callPtr[models.LogEvent](ctx, s.cfg, &dispatch.Operation{
		Method: http.MethodGet,
		URL:    "/api/{api-version}/events/{id}",
		Path:   map[string]any{"id": id},
	})
}

func (s *eventsService) UpdateEvent(ctx context.Context, id int64, in *models.EventUpdate) (*models.LogEvent, error) {
	return callPtr[models.LogEvent](ctx, s.cfg, &dispatch.Operation{
		Method:    http.MethodPut,
		URL:       "/api/{api-version}/events/{id}",
		Path:      map[string]any{"id": id},
		Body:      in,
		MediaType: dispatch.MediaTypeJSON,
	})
}

func (s *eventsService) DeleteEvent(ctx context.Context, id int64) (*models.Message, error) {
	return callPtr[models.Message](ctx, s.cfg, &dispatch.Operation{
		Method: http.MethodDelete,
		URL:    "/api/{api-version}/events/{id}",
		Path:   map[string]any{"id": id},
	})
}

func (s *eventsService) ReadEventByIdentifier(ctx context.Context, identifier string) (*models.LogEvent, error) {
	return callPtr[models.LogEvent](ctx, s.cfg, &dispatch.Operation{
		Method: http.MethodGet,
		URL:    "/api/{api-version}/events/identifier/{identifier}",
		Path:   map[string]any{"identifier": identifier},
	})
}

func (s *eventsService) CreateEventIdentifier(ctx context.Context, in *models.EventIdentifier) (*models.EventIdentifier, error) {
	return callPtr[models.EventIdentifier](ctx, s.cfg, &dispatch.Operation{
		Method:    http.MethodPost,
		URL:       "/api/{api-version}/events/identifier",
		Body:      in,
		MediaType: dispatch.MediaTypeJSON,
	})
}

func (s *eventsService) DeleteEventIdentifier(ctx context.Context, identifier string) (*models.EventIdentifier, error) {
	return callPtr[models.EventIdentifier](ctx, s.cfg, &dispatch.Operation{
		Method: http.MethodDelete,
		URL:    "/api/{api-version}/events/identifier/{identifier}",
		Path:   map[string]any{"identifier": identifier},
	})
}

func (s *eventsService) CreateEventAttribute(ctx context.Context, in *models.EventAttributeCreate) (*models.EventAttribute, error) {
	return callPtr[models.EventAttribute](ctx, s.cfg, &dispatch.Operation{
		Method:    http.MethodPost,
		URL:       "/api/{api-version}/events/attribute",
		Body:      in,
		MediaType: dispatch.MediaTypeJSON,
	})
}

func (s *eventsService) ReadEventAttribute(ctx context.Context, id int64, name string) (*models.EventAttribute, error) {
	return callPtr[models.EventAttribute](ctx, s.cfg, &dispatch.Operation{
		Method: http.MethodGet,
		URL:    "/api/{api-version}/events/{id}/attribute/{name}",
		Path:   map[string]any{"id": id, "name": name},
	})
}

func (s *eventsService) DeleteEventAttribute(ctx context.Context, id int64, name string) (*models.EventAttribute, error) {
	return callPtr[models.EventAttribute](ctx, s.cfg, &dispatch.Operation{
		Method: http.MethodDelete,
		URL:    "/api/{api-version}/events/{id}/attribute/{name}",
		Path:   map[string]any{"id": id, "name": name},
	})
}

func (s *eventsService) DownloadEvents(ctx context.Context, format models.ExportFormat, skip, limit int) (io.ReadCloser, error) {
	if limit <= 0 {
		limit = DefaultDownloadLimit
	}
	return call[io.ReadCloser](ctx, s.cfg, &dispatch.Operation{
		Method: http.MethodGet,
		URL:    "/api/{api-version}/events/download/{format}",
		Path:   map[string]any{"format": string(format)},
		Query:  map[string]any{"skip": skip, "limit": limit},
	})
}
