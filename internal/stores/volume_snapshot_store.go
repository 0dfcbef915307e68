package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"

	"lm-events/internal/models"
	"lm-events/internal/shared/filestorages"
)

var (
	ErrVolumeSnapshotNotFound = errors.New("volume snapshot not found")
)

//go:generate mockgen -source=volume_snapshot_store.go -destination=./mocks/volume_snapshot_store_mock.go -package=mocks
type VolumeSnapshotStore interface {
	// Upsert writes a snapshot keyed by window size and generation time.
	Upsert(ctx context.Context, snapshot *models.VolumeSnapshot) (string, error)
	// Latest returns the most recent snapshot of windowSize.
	Latest(ctx context.Context, windowSize models.WindowSize) (*models.VolumeSnapshot, error)
}

type volumeSnapshotStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewVolumeSnapshotStore(fileStorage filestorages.FileStorage) VolumeSnapshotStore {
	return &volumeSnapshotStore{fileStorage: fileStorage, dir: "volume-snapshots"}
}

func (s *volumeSnapshotStore) Upsert(ctx context.Context, snapshot *models.VolumeSnapshot) (string, error) {
	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to marshal volume snapshot: %w", err)
	}
	key := s.getKey(snapshot)
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return "", fmt.Errorf("failed to put volume snapshot: %w", err)
	}
	return key, nil
}

func (s *volumeSnapshotStore) Latest(ctx context.Context, windowSize models.WindowSize) (*models.VolumeSnapshot, error) {
	files, err := s.fileStorage.List(ctx, path.Join(s.dir, string(windowSize)))
	if err != nil {
		return nil, fmt.Errorf("failed to list volume snapshots: %w", err)
	}
	if len(files) == 0 {
		return nil, ErrVolumeSnapshotNotFound
	}

	// keys sort chronologically
	key := files[len(files)-1].FileKey
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrVolumeSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get volume snapshot: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read volume snapshot: %w", err)
	}
	var snapshot models.VolumeSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal volume snapshot: %w", err)
	}
	return &snapshot, nil
}

func (s *volumeSnapshotStore) getKey(snapshot *models.VolumeSnapshot) string {
	return fmt.Sprintf("%s/%s/%s.json", s.dir, snapshot.WindowSize, snapshot.GeneratedAt.UTC().Format(exportTimeLayout))
}
