package stores

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"lm-events/internal/models"
	"lm-events/internal/shared/filestorages"
	"lm-events/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVolumeSnapshotStore_UpsertAndLatest(t *testing.T) {
	t.Parallel()

	fileStorage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	store := NewVolumeSnapshotStore(fileStorage)
	ctx := context.Background()

	older := &models.VolumeSnapshot{
		WindowSize:  models.WindowHour,
		GeneratedAt: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
		Collected:   1,
		Volumes:     map[string]map[string]int64{"gpt-4": {"2024-05-01 07:00": 1}},
	}
	newer := &models.VolumeSnapshot{
		WindowSize:  models.WindowHour,
		GeneratedAt: time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC),
		Collected:   3,
		Volumes:     map[string]map[string]int64{"gpt-4": {"2024-05-02 07:00": 2}, "other": {"2024-05-02 07:00": 1}},
	}

	key, err := store.Upsert(ctx, newer)
	require.NoError(t, err)
	assert.Equal(t, "volume-snapshots/hour/20240502T080000Z.json", key)
	_, err = store.Upsert(ctx, older)
	require.NoError(t, err)

	latest, err := store.Latest(ctx, models.WindowHour)

	require.NoError(t, err)
	assert.Equal(t, newer, latest)
}

func TestVolumeSnapshotStore_Latest_NotFound(t *testing.T) {
	t.Parallel()

	fileStorage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	store := NewVolumeSnapshotStore(fileStorage)

	_, err = store.Latest(context.Background(), models.WindowMinute)

	assert.ErrorIs(t, err, ErrVolumeSnapshotNotFound)
}

func TestVolumeSnapshotStore_Latest_InvalidJSON(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewVolumeSnapshotStore(mockFileStorage)

	mockFileStorage.EXPECT().List(gomock.Any(), "volume-snapshots/hour").
		Return([]filestorages.FileInfo{{FileKey: "volume-snapshots/hour/20240501T080000Z.json"}}, nil)
	mockFileStorage.EXPECT().Get(gomock.Any(), "volume-snapshots/hour/20240501T080000Z.json").
		Return(io.NopCloser(strings.NewReader("{invalid")), nil)

	_, err := store.Latest(context.Background(), models.WindowHour)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal volume snapshot")
}

func TestVolumeSnapshotStore_Upsert_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewVolumeSnapshotStore(mockFileStorage)

	storageErr := errors.New("read-only file system")
	mockFileStorage.EXPECT().
		Put(gomock.Any(), "volume-snapshots/minute/20240501T080000Z.json", gomock.Any(), filestorages.PutOptions{AllowOverwrite: true}).
		Return(nil, storageErr)

	_, err := store.Upsert(context.Background(), &models.VolumeSnapshot{
		WindowSize:  models.WindowMinute,
		GeneratedAt: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, storageErr)
}
