package stores

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"lm-events/internal/models"
	"lm-events/internal/shared/filestorages"
)

var (
	ErrExportAlreadyExists = errors.New("export already exists")
)

const exportTimeLayout = "20060102T150405Z"

// ExportInfo describes a stored bulk export.
type ExportInfo struct {
	Key       string
	Format    models.ExportFormat
	CreatedAt time.Time
	Size      int64
}

// ExportStore keeps downloaded event exports under
// exports/<format>/<created-at>.<format>. Exports are immutable: a
// second Put for the same format and second fails with
// ErrExportAlreadyExists. Put copies r to storage without buffering; a
// failed copy leaves nothing behind.
//
//go:generate mockgen -source=export_store.go -destination=./mocks/export_store_mock.go -package=mocks
type ExportStore interface {
	Put(ctx context.Context, format models.ExportFormat, createdAt time.Time, r io.Reader) (*ExportInfo, error)
	// List returns the exports of format, oldest first.
	List(ctx context.Context, format models.ExportFormat) ([]ExportInfo, error)
}

type exportStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewExportStore(fileStorage filestorages.FileStorage) ExportStore {
	return &exportStore{fileStorage: fileStorage, dir: "exports"}
}

func (s *exportStore) Put(ctx context.Context, format models.ExportFormat, createdAt time.Time, r io.Reader) (*ExportInfo, error) {
	key := s.getKey(format, createdAt)
	result, err := s.fileStorage.Put(ctx, key, r, filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return nil, ErrExportAlreadyExists
		}
		return nil, fmt.Errorf("failed to put export: %w", err)
	}
	return &ExportInfo{
		Key:       result.FileKey,
		Format:    format,
		CreatedAt: createdAt.UTC().Truncate(time.Second),
		Size:      result.Size,
	}, nil
}

func (s *exportStore) List(ctx context.Context, format models.ExportFormat) ([]ExportInfo, error) {
	files, err := s.fileStorage.List(ctx, path.Join(s.dir, string(format)))
	if err != nil {
		return nil, fmt.Errorf("failed to list exports: %w", err)
	}

	out := make([]ExportInfo, 0, len(files))
	for _, f := range files {
		name := strings.TrimSuffix(path.Base(f.FileKey), format.Extension())
		createdAt, err := time.Parse(exportTimeLayout, name)
		if err != nil {
			continue
		}
		out = append(out, ExportInfo{Key: f.FileKey, Format: format, CreatedAt: createdAt, Size: f.Size})
	}
	return out, nil
}

func (s *exportStore) getKey(format models.ExportFormat, createdAt time.Time) string {
	return fmt.Sprintf("%s/%s/%s%s", s.dir, format, createdAt.UTC().Format(exportTimeLayout), format.Extension())
}
