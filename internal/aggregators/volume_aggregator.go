package aggregators

import (
	"context"
	"fmt"

	"lm-events/internal/events"
	"lm-events/internal/models"
	"lm-events/internal/shared/configs"
	"lm-events/internal/shared/loggers"
)

const (
	DefaultCountedEvent    = models.EventRequest
	DefaultUnnamedModelKey = "model"
	DefaultNoContentKey    = "other"
)

// VolumePolicy decides which events are counted and how they are keyed.
type VolumePolicy struct {
	WindowSize      models.WindowSize
	CountedEvent    string
	UnnamedModelKey string
	NoContentKey    string
}

// DefaultVolumePolicy counts request events per hour.
func DefaultVolumePolicy() VolumePolicy {
	return VolumePolicy{
		WindowSize:      models.WindowHour,
		CountedEvent:    DefaultCountedEvent,
		UnnamedModelKey: DefaultUnnamedModelKey,
		NoContentKey:    DefaultNoContentKey,
	}
}

// NewVolumePolicy builds a policy from the aggregation config.
func NewVolumePolicy(cfg configs.AggregationConfig) (VolumePolicy, error) {
	windowSize, err := models.NewWindowSizeFromString(cfg.WindowSize)
	if err != nil {
		return VolumePolicy{}, err
	}
	policy := VolumePolicy{
		WindowSize:      windowSize,
		CountedEvent:    cfg.CountedEvent,
		UnnamedModelKey: cfg.UnnamedModelKey,
		NoContentKey:    cfg.NoContentKey,
	}
	if policy.CountedEvent == "" || policy.UnnamedModelKey == "" || policy.NoContentKey == "" {
		return VolumePolicy{}, fmt.Errorf("incomplete volume policy: %+v", policy)
	}
	return policy, nil
}

//go:generate mockgen -source=volume_aggregator.go -destination=./mocks/volume_aggregator_mock.go -package=mocks
type EventAggregator interface {
	// ComputeVolumes counts the events named by the policy per model key and
	// time bucket. Events with unreadable content or timestamp are skipped.
	ComputeVolumes(ctx context.Context, logEvents []models.LogEvent) VolumeMatrix
	// ToDenseSeries expands a matrix into one series per model, sorted by
	// model, each holding one point per bucket, sorted by bucket, with
	// explicit zeros.
	ToDenseSeries(matrix VolumeMatrix) [][]DensePoint
}

type eventAggregator struct {
	policy VolumePolicy
}

func NewEventAggregator(policy VolumePolicy) EventAggregator {
	return &eventAggregator{policy: policy}
}

func (a *eventAggregator) ComputeVolumes(ctx context.Context, logEvents []models.LogEvent) VolumeMatrix {
	logger := loggers.Ctx(ctx)
	matrix := make(VolumeMatrix)

	var counted, dropped int
	for i := range logEvents {
		e := &logEvents[i]
		if e.Name != a.policy.CountedEvent {
			continue
		}

		ts, err := models.ParseEventTime(e.Timestamp)
		if err != nil {
			dropped++
			metricEventDroppedTotal.WithLabelValues(valueReasonTimestamp).Inc()
			logger.Warn().Err(err).Int64(loggers.FieldEventID, e.ID).Str(loggers.FieldEventName, e.Name).Msg("skipped event with malformed timestamp")
			continue
		}

		modelKey, err := a.modelKey(e.Content)
		if err != nil {
			dropped++
			metricEventDroppedTotal.WithLabelValues(valueReasonContent).Inc()
			logger.Warn().Err(err).Int64(loggers.FieldEventID, e.ID).Str(loggers.FieldEventName, e.Name).Msg("skipped event with malformed content")
			continue
		}

		matrix.add(modelKey, a.policy.WindowSize.FormatBucket(ts))
		counted++
	}

	metricEventAggregatedTotal.WithLabelValues(string(a.policy.WindowSize)).Add(float64(counted))
	logger.Debug().Msgf("computed volumes: %d counted, %d dropped, %d models", counted, dropped, len(matrix))
	return matrix
}

func (a *eventAggregator) modelKey(content string) (string, error) {
	model, ref, err := events.RequestModel(content)
	if err != nil {
		return "", err
	}
	switch ref {
	case events.ModelNamed:
		return model, nil
	case events.ModelUnnamed:
		return a.policy.UnnamedModelKey, nil
	default:
		return a.policy.NoContentKey, nil
	}
}

func (a *eventAggregator) ToDenseSeries(matrix VolumeMatrix) [][]DensePoint {
	modelKeys := matrix.Models()
	hours := matrix.Hours()

	series := make([][]DensePoint, 0, len(modelKeys))
	for _, model := range modelKeys {
		row := make([]DensePoint, 0, len(hours))
		for _, hour := range hours {
			row = append(row, DensePoint{Model: model, Hour: hour, Value: matrix.Get(model, hour)})
		}
		series = append(series, row)
	}
	return series
}
