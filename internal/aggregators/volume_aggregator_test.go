package aggregators_test

import (
	"bytes"
	"context"
	"testing"

	"lm-events/internal/aggregators"
	"lm-events/internal/models"
	"lm-events/internal/shared/configs"
	"lm-events/internal/shared/loggers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestEvent(id int64, timestamp, content string) models.LogEvent {
	return models.LogEvent{ID: id, Name: models.EventRequest, Timestamp: timestamp, Content: content}
}

func newAggregator() aggregators.EventAggregator {
	return aggregators.NewEventAggregator(aggregators.DefaultVolumePolicy())
}

func TestComputeVolumes_CountsPerModelAndHour(t *testing.T) {
	t.Parallel()

	events := []models.LogEvent{
		requestEvent(1, "2024-05-01T10:05:00", `{"content":{"model":"gpt-4"}}`),
		requestEvent(2, "2024-05-01T10:30:00", `{"content":{"model":"gpt-4"}}`),
		requestEvent(3, "2024-05-01T10:55:59.999", `{"content":{"model":"gpt-4"}}`),
	}

	matrix := newAggregator().ComputeVolumes(context.Background(), events)

	assert.Equal(t, aggregators.VolumeMatrix{"gpt-4": {"2024-05-01 10:00": 3}}, matrix)
}

func TestComputeVolumes_ModelKeys(t *testing.T) {
	t.Parallel()

	events := []models.LogEvent{
		requestEvent(1, "2024-05-01T10:00:00", `{"content":{"model":"mistral-small"}}`),
		requestEvent(2, "2024-05-01T10:00:00", `{"content":{"messages":[]}}`),
		requestEvent(3, "2024-05-01T10:00:00", `{"method":"POST","url":"u"}`),
		requestEvent(4, "2024-05-01T10:00:00", `{"content":null}`),
		requestEvent(5, "2024-05-01T10:00:00", `"just a string"`),
	}

	matrix := newAggregator().ComputeVolumes(context.Background(), events)

	assert.Equal(t, aggregators.VolumeMatrix{
		"mistral-small": {"2024-05-01 10:00": 1},
		"model":         {"2024-05-01 10:00": 1},
		"other":         {"2024-05-01 10:00": 3},
	}, matrix)
}

func TestComputeVolumes_IgnoresOtherEventNames(t *testing.T) {
	t.Parallel()

	events := []models.LogEvent{
		{ID: 1, Name: models.EventResponse, Timestamp: "2024-05-01T10:00:00", Content: `{"content":{"model":"gpt-4"}}`},
		{ID: 2, Name: models.EventModifiedRequest, Timestamp: "2024-05-01T10:00:00", Content: `{"content":{"model":"gpt-4"}}`},
		{ID: 3, Name: models.EventUserEvaluation, Timestamp: "not a time", Content: "not json"},
	}

	matrix := newAggregator().ComputeVolumes(context.Background(), events)

	assert.Empty(t, matrix)
}

func TestComputeVolumes_SkipsMalformedAndContinues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := loggers.NewWithWriter("debug", &buf)
	require.NoError(t, err)
	ctx := logger.WithContext(context.Background())

	events := []models.LogEvent{
		requestEvent(1, "2024-05-01T10:00:00", `{"content":{"model":"gpt-4"}}`),
		requestEvent(7, "2024-05-01T10:00:00", `{"content":`),
		requestEvent(8, "2024-05-01T10:00:00", `null`),
		requestEvent(9, "yesterday", `{"content":{"model":"gpt-4"}}`),
		requestEvent(10, "2024-05-01T11:00:00", `{"content":{"model":"gpt-4"}}`),
	}

	matrix := newAggregator().ComputeVolumes(ctx, events)

	assert.Equal(t, aggregators.VolumeMatrix{"gpt-4": {"2024-05-01 10:00": 1, "2024-05-01 11:00": 1}}, matrix)
	logs := buf.String()
	assert.Contains(t, logs, `"level":"warn"`)
	assert.Contains(t, logs, `"event_id":7`)
	assert.Contains(t, logs, `"event_id":8`)
	assert.Contains(t, logs, `"event_id":9`)
}

func TestComputeVolumes_TotalMatchesValidRequests(t *testing.T) {
	t.Parallel()

	var events []models.LogEvent
	valid := 0
	for i := 0; i < 50; i++ {
		content := `{"content":{"model":"m` + string(rune('a'+i%3)) + `"}}`
		if i%7 == 0 {
			content = "{broken"
		} else {
			valid++
		}
		events = append(events, requestEvent(int64(i), "2024-05-01T0"+string(rune('0'+i%10))+":15:00Z", content))
		events = append(events, models.LogEvent{ID: int64(1000 + i), Name: models.EventResponse, Timestamp: "2024-05-01T00:00:00Z", Content: "{}"})
	}

	matrix := newAggregator().ComputeVolumes(context.Background(), events)

	assert.Equal(t, int64(valid), matrix.Total())
}

func TestComputeVolumes_BucketsInUTC(t *testing.T) {
	t.Parallel()

	events := []models.LogEvent{
		requestEvent(1, "2024-05-01T12:30:00+02:00", `{"content":{"model":"gpt-4"}}`),
		requestEvent(2, "2024-05-01T10:59:00Z", `{"content":{"model":"gpt-4"}}`),
		requestEvent(3, "2024-05-01 10:01:00", `{"content":{"model":"gpt-4"}}`),
	}

	matrix := newAggregator().ComputeVolumes(context.Background(), events)

	assert.Equal(t, int64(3), matrix.Get("gpt-4", "2024-05-01 10:00"))
}

func TestComputeVolumes_Empty(t *testing.T) {
	t.Parallel()

	aggregator := newAggregator()

	matrix := aggregator.ComputeVolumes(context.Background(), nil)

	assert.Empty(t, matrix)
	assert.Empty(t, aggregator.ToDenseSeries(matrix))
}

func TestComputeVolumes_CustomPolicy(t *testing.T) {
	t.Parallel()

	policy, err := aggregators.NewVolumePolicy(configs.AggregationConfig{
		WindowSize:      "minute",
		CountedEvent:    models.EventResponse,
		UnnamedModelKey: "unnamed",
		NoContentKey:    "none",
	})
	require.NoError(t, err)
	aggregator := aggregators.NewEventAggregator(policy)

	events := []models.LogEvent{
		{ID: 1, Name: models.EventResponse, Timestamp: "2024-05-01T10:05:10Z", Content: `{"content":{"model":"gpt-4"}}`},
		{ID: 2, Name: models.EventResponse, Timestamp: "2024-05-01T10:05:50Z", Content: `{"content":{}}`},
		{ID: 3, Name: models.EventResponse, Timestamp: "2024-05-01T10:06:00Z", Content: `{}`},
		requestEvent(4, "2024-05-01T10:05:00Z", `{"content":{"model":"gpt-4"}}`),
	}

	matrix := aggregator.ComputeVolumes(context.Background(), events)

	assert.Equal(t, aggregators.VolumeMatrix{
		"gpt-4":   {"2024-05-01 10:05": 1},
		"unnamed": {"2024-05-01 10:05": 1},
		"none":    {"2024-05-01 10:06": 1},
	}, matrix)
}

func TestNewVolumePolicy_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  configs.AggregationConfig
	}{
		{name: "window size", cfg: configs.AggregationConfig{WindowSize: "day", CountedEvent: "request", UnnamedModelKey: "model", NoContentKey: "other"}},
		{name: "empty key", cfg: configs.AggregationConfig{WindowSize: "hour", CountedEvent: "request", UnnamedModelKey: "", NoContentKey: "other"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := aggregators.NewVolumePolicy(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestToDenseSeries_FillsZerosInSortedOrder(t *testing.T) {
	t.Parallel()

	matrix := aggregators.VolumeMatrix{
		"model": {"2024-05-02 00:00": 2},
		"gpt-4": {"2024-05-01 23:00": 1, "2024-05-01 09:00": 4},
	}

	series := newAggregator().ToDenseSeries(matrix)

	assert.Equal(t, [][]aggregators.DensePoint{
		{
			{Model: "gpt-4", Hour: "2024-05-01 09:00", Value: 4},
			{Model: "gpt-4", Hour: "2024-05-01 23:00", Value: 1},
			{Model: "gpt-4", Hour: "2024-05-02 00:00", Value: 0},
		},
		{
			{Model: "model", Hour: "2024-05-01 09:00", Value: 0},
			{Model: "model", Hour: "2024-05-01 23:00", Value: 0},
			{Model: "model", Hour: "2024-05-02 00:00", Value: 2},
		},
	}, series)
}

func TestToDenseSeries_IsRectangular(t *testing.T) {
	t.Parallel()

	matrix := aggregators.VolumeMatrix{
		"a": {"h1": 1},
		"b": {"h2": 1, "h3": 1},
		"c": {"h4": 5},
	}

	series := newAggregator().ToDenseSeries(matrix)

	require.Len(t, series, 3)
	var total int64
	for _, row := range series {
		assert.Len(t, row, 4)
		for i, p := range row {
			assert.Equal(t, series[0][i].Hour, p.Hour)
			total += p.Value
		}
	}
	assert.Equal(t, matrix.Total(), total)
}

func TestVolumeMatrix_Helpers(t *testing.T) {
	t.Parallel()

	matrix := aggregators.VolumeMatrix{
		"b": {"2024-05-01 10:00": 2},
		"a": {"2024-05-01 11:00": 1, "2024-05-01 10:00": 3},
	}

	assert.Equal(t, []string{"a", "b"}, matrix.Models())
	assert.Equal(t, []string{"2024-05-01 10:00", "2024-05-01 11:00"}, matrix.Hours())
	assert.Equal(t, int64(6), matrix.Total())
	assert.Equal(t, map[string]int64{"a": 4, "b": 2}, matrix.ModelTotals())
	assert.Equal(t, int64(0), matrix.Get("b", "2024-05-01 11:00"))
	assert.Equal(t, int64(0), matrix.Get("missing", "2024-05-01 11:00"))
}
