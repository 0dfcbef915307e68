package ingestors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"lm-events/internal/client"
	"lm-events/internal/dispatch"
	"lm-events/internal/models"
	"lm-events/internal/shared/configs"
	"lm-events/internal/shared/loggers"
	"lm-events/internal/shared/metrics"
	"lm-events/internal/shared/svcerrors"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"
)

const defaultRetryInterval = 200 * time.Millisecond

// CollectOptions bounds how events are paged out of the events API.
type CollectOptions struct {
	PageSize    int
	MaxEvents   int
	Concurrency int
	Retries     int
	// RetryInterval is the first backoff delay.
	RetryInterval time.Duration
}

func NewCollectOptions(cfg configs.IngestionConfig) CollectOptions {
	return CollectOptions{
		PageSize:      cfg.PageSize,
		MaxEvents:     cfg.MaxEvents,
		Concurrency:   cfg.Concurrency,
		Retries:       cfg.Retries,
		RetryInterval: defaultRetryInterval,
	}
}

//go:generate mockgen -source=event_collector.go -destination=./mocks/event_collector_mock.go -package=mocks
type EventCollector interface {
	// Collect reads the first limit events, in server order, without
	// duplicates. A zero limit reads up to the configured maximum.
	Collect(ctx context.Context, limit int) ([]models.LogEvent, error)
}

type eventCollector struct {
	events client.EventsService
	opts   CollectOptions
}

func NewEventCollector(events client.EventsService, opts CollectOptions) EventCollector {
	if opts.PageSize <= 0 {
		opts.PageSize = 1000
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	if opts.RetryInterval <= 0 {
		opts.RetryInterval = defaultRetryInterval
	}
	return &eventCollector{events: events, opts: opts}
}

func (c *eventCollector) Collect(ctx context.Context, limit int) ([]models.LogEvent, error) {
	logger := loggers.Ctx(ctx)

	switch {
	case limit < 0:
		return nil, errInvalidLimit(fmt.Sprintf("limit must be >= 0, got %d", limit))
	case c.opts.MaxEvents > 0 && limit > c.opts.MaxEvents:
		return nil, errInvalidLimit(fmt.Sprintf("limit must be <= %d, got %d", c.opts.MaxEvents, limit))
	case limit == 0:
		limit = c.opts.MaxEvents
		if limit <= 0 {
			return nil, errInvalidLimit("limit is required")
		}
	}

	pageSize := min(c.opts.PageSize, limit)
	first, err := c.fetchPage(ctx, 0, pageSize)
	if err != nil {
		return nil, err
	}

	total := min(limit, first.Count)
	if len(first.Data) < pageSize {
		total = len(first.Data)
	}

	var skips []int
	for skip := pageSize; skip < total; skip += pageSize {
		skips = append(skips, skip)
	}
	logger.Debug().Msgf("collecting %d events in %d pages of %d", total, len(skips)+1, pageSize)

	rest := make([][]models.LogEvent, len(skips))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Concurrency)
	for i, skip := range skips {
		g.Go(func() error {
			page, err := c.fetchPage(gctx, skip, min(pageSize, total-skip))
			if err != nil {
				return err
			}
			rest[i] = page.Data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pages := append([][]models.LogEvent{first.Data}, rest...)
	out := normalize(pages, limit)
	metricEventCollectedTotal.WithLabelValues().Add(float64(len(out)))
	return out, nil
}

func (c *eventCollector) fetchPage(ctx context.Context, skip, limit int) (*models.EventsOut, error) {
	logger := loggers.Ctx(ctx)

	var page *models.EventsOut
	attempt := 0
	do := func() error {
		attempt++
		out, err := c.events.ReadEvents(ctx, skip, limit)
		if err != nil {
			if ctx.Err() == nil && isTransient(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		page = out
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.opts.RetryInterval
	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(max(c.opts.Retries, 0))), ctx)

	notify := func(err error, d time.Duration) {
		metricPageRetriedTotal.WithLabelValues().Inc()
		logger.Warn().Err(err).
			Int(loggers.FieldPageSkip, skip).
			Int(loggers.FieldAttempt, attempt).
			Msgf("retrying event page in %s", d)
	}

	if err := backoff.RetryNotify(do, policy, notify); err != nil {
		svcErr := mapFetchError(err)
		metricPageFetchedTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}
	if page == nil {
		page = &models.EventsOut{}
	}
	metricPageFetchedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return page, nil
}

// isTransient reports whether a page fetch may succeed when repeated.
func isTransient(err error) bool {
	if dispatch.IsNetworkError(err) {
		return true
	}
	if apiErr, ok := dispatch.AsAPIError(err); ok {
		switch apiErr.Status {
		case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		}
	}
	return false
}

func mapFetchError(err error) *svcerrors.ServiceError {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr
	}
	if apiErr, ok := dispatch.AsAPIError(err); ok {
		return errUpstreamRejected(apiErr)
	}
	var decodeErr *dispatch.DecodeError
	if errors.As(err, &decodeErr) {
		return errUpstreamInvalidResponse(err)
	}
	if dispatch.IsNetworkError(err) || dispatch.IsCancelled(err) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return errUpstreamUnavailable(err)
	}
	return errInternalCollectFailed(err)
}

// normalize flattens pages, drops repeated ids from pages that shifted
// while being read, trims event names and stops at limit.
func normalize(pages [][]models.LogEvent, limit int) []models.LogEvent {
	seen := make(map[int64]struct{})
	out := make([]models.LogEvent, 0, limit)
	for _, page := range pages {
		for _, e := range page {
			if len(out) == limit {
				return out
			}
			if _, dup := seen[e.ID]; dup {
				continue
			}
			seen[e.ID] = struct{}{}
			e.Name = strings.TrimSpace(e.Name)
			out = append(out, e)
		}
	}
	return out
}
