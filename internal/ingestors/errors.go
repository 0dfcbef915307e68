package ingestors

import (
	"fmt"

	"lm-events/internal/dispatch"
	"lm-events/internal/shared/svcerrors"
)

// EventCollector errors
const (
	codeInvalidLimit = "ING_1000"

	codeUpstreamRejected        = "ING_2000"
	codeUpstreamUnavailable     = "ING_2001"
	codeUpstreamInvalidResponse = "ING_2002"

	codeInternalCollectFailed = "ING_9000"
)

func errInvalidLimit(msg string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidLimit, msg, nil)
}

// errUpstreamRejected returns an error when the events API answered with a non-2xx status.
func errUpstreamRejected(apiErr *dispatch.APIError) *svcerrors.ServiceError {
	return svcerrors.NewUpstreamError(codeUpstreamRejected, "events API rejected the request: "+apiErr.Summary, apiErr.Status, apiErr)
}

// errUpstreamUnavailable returns an error when the events API could not be reached.
func errUpstreamUnavailable(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeUpstreamUnavailable, "events API unavailable", cause)
}

// errUpstreamInvalidResponse returns an error when a page could not be decoded.
func errUpstreamInvalidResponse(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUpstreamError(codeUpstreamInvalidResponse, "events API returned an unreadable page", 0, cause)
}

// errInternalCollectFailed returns an error for any other collection failure.
func errInternalCollectFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCollectFailed, fmt.Errorf("collectFailed: %w", cause))
}

// ExportDownloader errors
const (
	codeInvalidExportRange = "EXP_1000"
	codeExportExists       = "EXP_1001"

	codeExportRejected        = "EXP_2000"
	codeExportUnavailable     = "EXP_2001"
	codeExportInvalidResponse = "EXP_2002"

	codeInternalExportStoreFailed = "EXP_9000"
)

func errInvalidExportRange(msg string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidExportRange, msg, nil)
}

// errExportExists returns an error when an export with the same format and second is already stored.
func errExportExists(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeExportExists, "an export was already stored for this second, retry later", cause)
}

func errExportRejected(apiErr *dispatch.APIError) *svcerrors.ServiceError {
	return svcerrors.NewUpstreamError(codeExportRejected, "events API rejected the download: "+apiErr.Summary, apiErr.Status, apiErr)
}

func errExportUnavailable(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeExportUnavailable, "events API unavailable", cause)
}

func errExportInvalidResponse(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUpstreamError(codeExportInvalidResponse, "events API returned an empty export", 0, cause)
}

func errInternalExportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalExportStoreFailed, fmt.Errorf("exportStoreFailed: %w", cause))
}
