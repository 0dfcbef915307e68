package aggregators

import (
	"lm-events/internal/shared/metrics"
)

const (
	valueReasonTimestamp = "timestamp"
	valueReasonContent   = "content"
)

var (
	// metricEventAggregatedTotal counts events that landed in a volume cell,
	// by window size.
	metricEventAggregatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "events_aggregated_total",
		},
		[]string{"window_size"},
	)

	// metricEventDroppedTotal counts counted-name events skipped because
	// their timestamp or content could not be read.
	metricEventDroppedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "events_dropped_total",
		},
		[]string{"reason"},
	)

	metricVolumeReportTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "volume_report_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
