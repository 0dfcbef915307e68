package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lm-events/internal/shared/configs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, baseURL string) *configs.Config {
	return &configs.Config{
		Server: configs.ServerConfig{Port: 8080, ReadHeaderTimeout: 1, ReadTimeout: 1, WriteTimeout: 1, IdleTimeout: 1},
		Log:    configs.LogConfig{Level: "error"},
		Upstream: configs.UpstreamConfig{
			BaseURL: baseURL,
			Version: "v1",
			Token:   "secret",
			Timeout: 5,
		},
		Aggregation: configs.AggregationConfig{
			WindowSize:      "hour",
			CountedEvent:    "request",
			UnnamedModelKey: "model",
			NoContentKey:    "other",
		},
		Ingestion:   configs.IngestionConfig{PageSize: 100, MaxEvents: 1000, Concurrency: 2, Retries: 0},
		FileStorage: configs.FileStorageConfig{RootDir: t.TempDir()},
	}
}

func TestApp_VolumesEndToEnd(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/events/", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count":3,"data":[
			{"id":1,"name":"request","timestamp":"2024-05-01T10:05:00","content":"{\"content\":{\"model\":\"gpt-4\"}}"},
			{"id":2,"name":"request","timestamp":"2024-05-01T10:45:00","content":"{\"url\":\"http://x\"}"},
			{"id":3,"name":"response","timestamp":"2024-05-01T10:46:00","content":"{}"}
		]}`))
	}))
	t.Cleanup(upstream.Close)

	application, err := New(testConfig(t, upstream.URL))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	application.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/volumes/matrix", nil))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var resp struct {
		Volumes map[string]map[string]int64 `json:"volumes"`
		Total   int64                       `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.Total)
	assert.Equal(t, map[string]map[string]int64{
		"gpt-4": {"2024-05-01 10:00": 1},
		"other": {"2024-05-01 10:00": 1},
	}, resp.Volumes)
}

func TestNewServices_InvalidWindow(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, "http://localhost:1")
	cfg.Aggregation.WindowSize = "day"

	_, err := NewServices(cfg, nil)

	assert.Error(t, err)
}
