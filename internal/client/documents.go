package client

import (
	"context"
	"io"
	"net/http"

	"lm-events/internal/dispatch"
	"lm-events/internal/models"
)

//go:generate mockgen -source=documents.go -destination=./mocks/documents_mock.go -package=mocks
type DocumentsService interface {
	ReadFiles(ctx context.Context) ([]string, error)
	CreateFile(ctx context.Context, name, contentType string, content io.Reader) (*models.Document, error)
	ReadFile(ctx context.Context, name string) ([]byte, error)
	// ReadFileAsText extracts the text of pages [startPage, endPage). A nil
	// endPage reads to the end.
	ReadFileAsText(ctx context.Context, name string, startPage int, endPage *int) (string, error)
}

type documentsService struct {
	cfg *dispatch.Config
}

func (s *documentsService) ReadFiles(ctx context.Context) ([]string, error) {
	return call[[]string](ctx, s.cfg, &dispatch.Operation{
		Method: http.MethodGet,
		URL:    "/api/{api-version}/documents/",
	})
}

func (s *documentsService) CreateFile(ctx context.Context, name, contentType string, content io.Reader) (*models.Document, error) {
	return callPtr[models.Document](ctx, s.cfg, &dispatch.Operation{
		Method:    http.MethodPost,
		URL:       "/api/{api-version}/documents/",
		FormData:  map[string]any{"upload": dispatch.File{Name: name, ContentType: contentType, Content: content}},
		MediaType: dispatch.MediaTypeMultipart,
	})
}

func (s *documentsService) ReadFile(ctx context.Context, name string) ([]byte, error) {
	return call[[]byte](ctx, s.cfg, &dispatch.Operation{
		Method: http.MethodGet,
		URL:    "/api/{api-version}/documents/{name}",
		Path:   map[string]any{"name": name},
	})
}

func (s *documentsService) ReadFileAsText(ctx context.Context, name string, startPage int, endPage *int) (string, error) {
	return call[string](ctx, s.cfg, &dispatch.Operation{
		Method: http.MethodGet,
		URL:    "/api/{api-version}/documents/{name}/as_text",
		Path:   map[string]any{"name": name},
		Query:  map[string]any{"start_page": startPage, "end_page": endPage},
	})
}
