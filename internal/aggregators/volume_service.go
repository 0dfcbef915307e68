package aggregators

import (
	"context"

	"lm-events/internal/ingestors"
	"lm-events/internal/models"
	"lm-events/internal/shared/loggers"
	"lm-events/internal/shared/metrics"
	"lm-events/internal/shared/svcerrors"
)

// VolumeReport is the volume matrix of a set of collected events together
// with its dense rendering.
type VolumeReport struct {
	WindowSize models.WindowSize
	Collected  int
	Counted    int64
	Matrix     VolumeMatrix
	Models     []string
	Hours      []string
	Series     [][]DensePoint
}

//go:generate mockgen -source=volume_service.go -destination=./mocks/volume_service_mock.go -package=mocks
type VolumeService interface {
	// Volumes collects up to limit events and aggregates them. A zero limit
	// uses the collector maximum.
	Volumes(ctx context.Context, limit int) (*VolumeReport, *svcerrors.ServiceError)
}

type volumeService struct {
	collector  ingestors.EventCollector
	aggregator EventAggregator
	windowSize models.WindowSize
}

func NewVolumeService(collector ingestors.EventCollector, aggregator EventAggregator, windowSize models.WindowSize) VolumeService {
	return &volumeService{collector: collector, aggregator: aggregator, windowSize: windowSize}
}

func (s *volumeService) Volumes(ctx context.Context, limit int) (*VolumeReport, *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started computing volumes with limit: %d", limit)

	logEvents, err := s.collector.Collect(ctx, limit)
	if err != nil {
		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = errInternalEventCollectFailed(err)
		}
		metricVolumeReportTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	matrix := s.aggregator.ComputeVolumes(ctx, logEvents)
	report := &VolumeReport{
		WindowSize: s.windowSize,
		Collected:  len(logEvents),
		Counted:    matrix.Total(),
		Matrix:     matrix,
		Models:     matrix.Models(),
		Hours:      matrix.Hours(),
		Series:     s.aggregator.ToDenseSeries(matrix),
	}

	metricVolumeReportTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return report, nil
}
