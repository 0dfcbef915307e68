package ingestors

import (
	"lm-events/internal/shared/metrics"
)

var (
	// metricPageFetchedTotal counts event pages requested from the events
	// API, after retries.
	metricPageFetchedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "page_fetched_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricPageRetriedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "page_retried_total",
		},
		[]string{},
	)

	metricEventCollectedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "event_collected_total",
		},
		[]string{},
	)

	// metricExportDownloadedTotal counts export downloads by format and outcome.
	metricExportDownloadedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExport,
			Name:      "downloaded_total",
		},
		[]string{"format", metrics.FieldErrorCode},
	)

	metricExportBytesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExport,
			Name:      "downloaded_bytes_total",
		},
		[]string{"format"},
	)
)
