package dispatch

import (
	"lm-events/internal/shared/metrics"
)

const (
	valueOutcomeNetwork   = "network"
	valueOutcomeCancelled = "cancelled"
	valueOutcomeDecode    = "decode"
)

var (
	// metricDispatchTotal counts requests that reached the network, by method
	// and outcome. Outcome is the response status code, or network, cancelled
	// or decode when no usable response was received.
	metricDispatchTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDispatch,
			Name:      "requests_total",
		},
		[]string{"method", "outcome"},
	)

	metricDispatchDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDispatch,
			Name:      "request_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"method"},
	)
)
