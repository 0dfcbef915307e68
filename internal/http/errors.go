package http

import (
	"lm-events/internal/shared/svcerrors"
)

// Query errors
const (
	codeInvalidQuery        = "HTTP_1000"
	codeInvalidExportFormat = "HTTP_1001"
)

func errInvalidQuery(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQuery, msg, cause)
}

func errInvalidExportFormat(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidExportFormat, "format must be one of: parquet, csv", cause)
}
