package aggregators

import (
	"fmt"

	"lm-events/internal/shared/svcerrors"
)

const (
	codeInternalEventCollectFailed = "VOL_9000"
)

// errInternalEventCollectFailed returns an error when the collector failed
// without a service error of its own.
func errInternalEventCollectFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEventCollectFailed, fmt.Errorf("eventCollectFailed: %w", cause))
}
