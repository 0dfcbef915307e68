package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lm-events/internal/aggregators"
	aggmocks "lm-events/internal/aggregators/mocks"
	"lm-events/internal/ingestors"
	ingmocks "lm-events/internal/ingestors/mocks"
	"lm-events/internal/models"
	"lm-events/internal/shared/loggers"
	"lm-events/internal/shared/svcerrors"
	"lm-events/internal/stores"
	storemocks "lm-events/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerMocks struct {
	volumes    *aggmocks.MockVolumeService
	downloader *ingmocks.MockExportDownloader
	exports    *storemocks.MockExportStore
}

func newTestRouter(t *testing.T) (http.Handler, routerMocks) {
	ctrl := gomock.NewController(t)
	m := routerMocks{
		volumes:    aggmocks.NewMockVolumeService(ctrl),
		downloader: ingmocks.NewMockExportDownloader(ctrl),
		exports:    storemocks.NewMockExportStore(ctrl),
	}
	return NewRouter(m.volumes, m.downloader, m.exports, loggers.Nop()), m
}

func sampleReport() *aggregators.VolumeReport {
	matrix := aggregators.VolumeMatrix{
		"gpt-4": {"2024-05-01 10:00": 2},
		"other": {"2024-05-01 11:00": 1},
	}
	return &aggregators.VolumeReport{
		WindowSize: models.WindowHour,
		Collected:  4,
		Counted:    3,
		Matrix:     matrix,
		Models:     []string{"gpt-4", "other"},
		Hours:      []string{"2024-05-01 10:00", "2024-05-01 11:00"},
		Series: [][]aggregators.DensePoint{
			{{Model: "gpt-4", Hour: "2024-05-01 10:00", Value: 2}, {Model: "gpt-4", Hour: "2024-05-01 11:00", Value: 0}},
			{{Model: "other", Hour: "2024-05-01 10:00", Value: 0}, {Model: "other", Hour: "2024-05-01 11:00", Value: 1}},
		},
	}
}

func TestRouter_Volumes(t *testing.T) {
	t.Parallel()

	router, m := newTestRouter(t)
	m.volumes.EXPECT().Volumes(gomock.Any(), 50).Return(sampleReport(), nil)

	req := httptest.NewRequest(http.MethodGet, "/volumes?limit=50", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.NotEmpty(t, rr.Header().Get(headerRequestID))

	var resp VolumesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, []string{"gpt-4", "other"}, resp.Models)
	assert.Equal(t, []string{"2024-05-01 10:00", "2024-05-01 11:00"}, resp.Hours)
	require.Len(t, resp.Series, 2)
	assert.Equal(t, int64(0), resp.Series[0][1].Value)
	assert.Equal(t, "other", resp.Series[1][1].Model)
}

func TestRouter_VolumesEmpty(t *testing.T) {
	t.Parallel()

	router, m := newTestRouter(t)
	m.volumes.EXPECT().Volumes(gomock.Any(), 0).Return(&aggregators.VolumeReport{WindowSize: models.WindowHour}, nil)

	req := httptest.NewRequest(http.MethodGet, "/volumes", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"windowSize":"hour","collected":0,"models":[],"hours":[],"series":[]}`, rr.Body.String())
}

func TestRouter_VolumeMatrix(t *testing.T) {
	t.Parallel()

	router, m := newTestRouter(t)
	m.volumes.EXPECT().Volumes(gomock.Any(), 0).Return(sampleReport(), nil)

	req := httptest.NewRequest(http.MethodGet, "/volumes/matrix", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp VolumeMatrixResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.Volumes["gpt-4"]["2024-05-01 10:00"])
	assert.Equal(t, map[string]int64{"gpt-4": 2, "other": 1}, resp.Totals)
	assert.Equal(t, int64(3), resp.Total)
	assert.Equal(t, 4, resp.Collected)
}

func TestRouter_VolumesInvalidLimit(t *testing.T) {
	t.Parallel()

	for _, q := range []string{"limit=abc", "limit=-1"} {
		t.Run(q, func(t *testing.T) {
			t.Parallel()

			router, _ := newTestRouter(t)
			req := httptest.NewRequest(http.MethodGet, "/volumes?"+q, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			var errorResponse ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
			assert.Equal(t, "HTTP_1000", errorResponse.ErrorCode)
		})
	}
}

func TestRouter_VolumesUpstreamFailure(t *testing.T) {
	t.Parallel()

	router, m := newTestRouter(t)
	m.volumes.EXPECT().Volumes(gomock.Any(), 0).
		Return(nil, svcerrors.NewUpstreamError("ING_2000", "events API rejected the request: Unauthorized", http.StatusUnauthorized, nil))

	req := httptest.NewRequest(http.MethodGet, "/volumes", nil)
	req.Header.Set(headerRequestID, "req-1")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.Equal(t, "req-1", errorResponse.RequestID)
	assert.Equal(t, "upstream", errorResponse.ErrorCategory)
	assert.Equal(t, "ING_2000", errorResponse.ErrorCode)
}

func TestRouter_CreateExport(t *testing.T) {
	t.Parallel()

	router, m := newTestRouter(t)
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	m.downloader.EXPECT().
		Download(gomock.Any(), models.ExportCSV, ingestors.DownloadOptions{Skip: 5, Limit: 10}).
		Return(&stores.ExportInfo{Key: "exports/csv/20240501T100000Z.csv", Format: models.ExportCSV, CreatedAt: createdAt, Size: 42}, nil)

	req := httptest.NewRequest(http.MethodPost, "/exports/csv?skip=5&limit=10", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"key":"exports/csv/20240501T100000Z.csv","format":"csv","createdAt":"2024-05-01T10:00:00Z","size":42}`, rr.Body.String())
}

func TestRouter_ExportUnknownFormat(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	for _, method := range []string{http.MethodPost, http.MethodGet} {
		req := httptest.NewRequest(method, "/exports/xlsx", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.True(t, strings.Contains(rr.Body.String(), "HTTP_1001"))
	}
}

func TestRouter_ListExports(t *testing.T) {
	t.Parallel()

	router, m := newTestRouter(t)
	m.exports.EXPECT().List(gomock.Any(), models.ExportParquet).Return([]stores.ExportInfo{
		{Key: "exports/parquet/20240501T100000Z.parquet", Format: models.ExportParquet, CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), Size: 7},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/exports/parquet", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp []ExportResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, int64(7), resp[0].Size)
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestUserAgentFamily(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ua   string
		want string
	}{
		{name: "empty", ua: "", want: ""},
		{name: "chrome", ua: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36", want: "Chrome"},
		{name: "unparsed", ua: "eventctl", want: "eventctl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.ua != "" {
				req.Header.Set(headerUserAgent, tt.ua)
			}
			assert.Equal(t, tt.want, userAgentFamily(req))
		})
	}
}
