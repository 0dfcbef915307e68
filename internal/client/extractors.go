package client

import (
	"context"
	"io"
	"net/http"

	"lm-events/internal/dispatch"
	"lm-events/internal/models"
)

//go:generate mockgen -source=extractors.go -destination=./mocks/extractors_mock.go -package=mocks
type ExtractorsService interface {
	ReadExtractors(ctx context.Context, skip, limit int) (*models.DocumentDataExtractorsOut, error)
	CreateExtractor(ctx context.Context, in *models.DocumentDataExtractorCreate) (*models.DocumentDataExtractorOut, error)
	ReadExtractor(ctx context.Context, id int64) (*models.DocumentDataExtractorOut, error)
	UpdateExtractor(ctx context.Context, id int64, in *models.DocumentDataExtractorUpdate) (*models.DocumentDataExtractorOut, error)
	DeleteExtractor(ctx context.Context, id int64) (*models.Message, error)
	ReadExtractorByName(ctx context.Context, name string) (*models.DocumentDataExtractorOut, error)

	CreateExample(ctx context.Context, name string, in *models.DocumentDataExampleCreate) (*models.DocumentDataExample, error)
	UpdateExample(ctx context.Context, name string, id int64, in *models.DocumentDataExampleUpdate) (*models.DocumentDataExample, error)
	DeleteExample(ctx context.Context, name string, id int64) (*models.Message, error)

	// ExtractFromFile runs the named extractor on an uploaded document and
	// returns the extracted JSON object.
	ExtractFromFile(ctx context.Context, name, fileName string, content io.Reader) (map[string]any, error)
}

type extractorsService struct {
	cfg *dispatch.Config
}

func (s *extractorsService) ReadExtractors(ctx context.Context, skip, limit int) (*models.DocumentDataExtractorsOut, error) {
	return callPtr[models.DocumentDataExtractorsOut](ctx, s.cfg, &dispatch.Operation{
		Method: http.MethodGet,
		URL:    "/api/{api-version}/dde/",
		Query:  map[string]any{"skip": skip, "limit": limit},
	})
}

func (s *extractorsService) CreateExtractor(ctx context.Context, in *models.DocumentDataExtractorCreate) (*models.DocumentDataExtractorOut, error) {
	return callPtr[models.DocumentDataExtractorOut](ctx, s.cfg, &dispatch.Operation{
		Method:    http.MethodPost,
		URL:       "/api/{api-version}/dde/",
		Body:      in,
		MediaType: dispatch.MediaTypeJSON,
	})
}

func (s *extractorsService) ReadExtractor(ctx context.Context, id int64) (*models.DocumentDataExtractorOut, error) {
	return callPtr[models.DocumentDataExtractorOut](ctx, s.cfg, &dispatch.Operation{
		Method: http.MethodGet,
		URL:    "/api/{api-version}/dde/{id}",
		Path:   map[string]any{"id": id},
	})
}

func (s *extractorsService) UpdateExtractor(ctx context.Context, id int64, in *models.DocumentDataExtractorUpdate) (*models.DocumentDataExtractorOut, error) {
	return callPtr[models.DocumentDataExtractorOut](ctx, s.cfg, &dispatch.Operation{
		Method:    http.MethodPut,
		URL:       "/api/{api-version}/dde/{id}",
		Path:      map[string]any{"id": id},
		Body:      in,
		MediaType: dispatch.MediaTypeJSON,
	})
}

func (s *extractorsService) DeleteExtractor(ctx context.Context, id int64) (*models.Message, error) {
	return callPtr[models.Message](ctx, s.cfg, &dispatch.Operation{
		Method: http.MethodDelete,
		URL:    "/api/{api-version}/dde/{id}",
		Path:   map[string]any{"id": id},
	})
}

func (s *extractorsService) ReadExtractorByName(ctx context.Context, name string) (*models.DocumentDataExtractorOut, error) {
	return callPtr[models.DocumentDataExtractorOut](ctx, s.cfg, &dispatch.Operation{
		Method: http.MethodGet,
		URL:    "/api/{api-version}/dde/name/{name}",
		Path:   map[string]any{"name": name},
	})
}

func (s *extractorsService) CreateExample(ctx context.Context, name string, in *models.DocumentDataExampleCreate) (*models.DocumentDataExample, error) {
	return callPtr[models.DocumentDataExample](ctx, s.cfg, &dispatch.Operation{
		Method:    http.MethodPost,
		URL:       "/api/{api-version}/dde/{name}/example",
		Path:      map[string]any{"name": name},
		Body:      in,
		MediaType: dispatch.MediaTypeJSON,
	})
}

func (s *extractorsService) UpdateExample(ctx context.Context, name string, id int64, in *models.DocumentDataExampleUpdate) (*models.DocumentDataExample, error) {
	return callPtr[models.DocumentDataExample](ctx, s.cfg, &dispatch.Operation{
		Method:    http.MethodPut,
		URL:       "/api/{api-version}/dde/{name}/example/{id}",
		Path:      map[string]any{"name": name, "id": id},
		Body:      in,
		MediaType: dispatch.MediaTypeJSON,
	})
}

func (s *extractorsService) DeleteExample(ctx context.Context, name string, id int64) (*models.Message, error) {
	return callPtr[models.Message](ctx, s.cfg, &dispatch.Operation{
		Method: http.MethodDelete,
		URL:    "/api/{api-version}/dde/{name}/example/{id}",
		Path:   map[string]any{"name": name, "id": id},
	})
}

func (s *extractorsService) ExtractFromFile(ctx context.Context, name, fileName string, content io.Reader) (map[string]any, error) {
	return call[map[string]any](ctx, s.cfg, &dispatch.Operation{
		Method:    http.MethodPost,
		URL:       "/api/{api-version}/dde/extract/{name}",
		Path:      map[string]any{"name": name},
		FormData:  map[string]any{"upload": dispatch.File{Name: fileName, Content: content}},
		MediaType: dispatch.MediaTypeMultipart,
	})
}
