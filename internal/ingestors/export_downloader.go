package ingestors

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"lm-events/internal/client"
	"lm-events/internal/dispatch"
	"lm-events/internal/models"
	"lm-events/internal/shared/loggers"
	"lm-events/internal/shared/metrics"
	"lm-events/internal/shared/svcerrors"
	"lm-events/internal/stores"
)

// DownloadOptions selects the slice of events to export.
type DownloadOptions struct {
	Skip int
	// Limit <= 0 exports everything the server allows.
	Limit int
}

//go:generate mockgen -source=export_downloader.go -destination=./mocks/export_downloader_mock.go -package=mocks
type ExportDownloader interface {
	// Download fetches a bulk export of the events and stores it.
	Download(ctx context.Context, format models.ExportFormat, opts DownloadOptions) (*stores.ExportInfo, error)
}

type exportDownloader struct {
	events client.EventsService
	store  stores.ExportStore
	now    func() time.Time
}

func NewExportDownloader(events client.EventsService, store stores.ExportStore, now func() time.Time) ExportDownloader {
	if now == nil {
		now = time.Now
	}
	return &exportDownloader{events: events, store: store, now: now}
}

func (d *exportDownloader) Download(ctx context.Context, format models.ExportFormat, opts DownloadOptions) (*stores.ExportInfo, error) {
	logger := loggers.Ctx(ctx)

	if opts.Skip < 0 {
		return nil, errInvalidExportRange(fmt.Sprintf("skip must be >= 0, got %d", opts.Skip))
	}

	body, err := d.events.DownloadEvents(ctx, format, opts.Skip, opts.Limit)
	if err != nil {
		svcErr := mapDownloadError(err)
		metricExportDownloadedTotal.WithLabelValues(string(format), svcErr.Code).Inc()
		return nil, svcErr
	}
	defer body.Close()

	// the export is copied to storage as it arrives; an empty body is
	// caught before anything is stored
	src := bufio.NewReader(body)
	if _, err := src.Peek(1); err != nil {
		var svcErr *svcerrors.ServiceError
		if errors.Is(err, io.EOF) {
			svcErr = errExportInvalidResponse(errors.New("empty body"))
		} else {
			svcErr = mapDownloadError(err)
		}
		metricExportDownloadedTotal.WithLabelValues(string(format), svcErr.Code).Inc()
		return nil, svcErr
	}

	info, err := d.store.Put(ctx, format, d.now(), src)
	if err != nil {
		var svcErr *svcerrors.ServiceError
		switch {
		case errors.Is(err, stores.ErrExportAlreadyExists):
			svcErr = errExportExists(err)
		case isUnavailable(err):
			svcErr = errExportUnavailable(err)
		default:
			svcErr = errInternalExportStoreFailed(err)
		}
		metricExportDownloadedTotal.WithLabelValues(string(format), svcErr.Code).Inc()
		return nil, svcErr
	}

	metricExportDownloadedTotal.WithLabelValues(string(format), metrics.ValueNoError).Inc()
	metricExportBytesTotal.WithLabelValues(string(format)).Add(float64(info.Size))
	logger.Info().Msgf("stored %s export %s (%d bytes)", format, info.Key, info.Size)
	return info, nil
}

func mapDownloadError(err error) *svcerrors.ServiceError {
	if apiErr, ok := dispatch.AsAPIError(err); ok {
		return errExportRejected(apiErr)
	}
	if isUnavailable(err) {
		return errExportUnavailable(err)
	}
	return errExportInvalidResponse(err)
}

// isUnavailable reports whether err means the export could not be
// received, including a body cut off while it was being stored.
func isUnavailable(err error) bool {
	return dispatch.IsNetworkError(err) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || dispatch.IsCancelled(err)
}
