package svcerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidArgumentError("VOL_1000", "invalid limit", nil),
			wantErr: NewInvalidArgumentError("VOL_1000", "invalid limit", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped upstream ServiceError",
			err:     fmt.Errorf("wrap: %w", NewUpstreamError("ING_2000", "events api rejected request", 422, nil)),
			wantErr: NewUpstreamError("ING_2000", "events api rejected request", 422, nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestServiceError_Categories(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")

	upstream := NewUpstreamError("ING_2000", "rejected", 404, cause)
	assert.True(t, upstream.IsUpstreamError())
	assert.False(t, upstream.IsInternalError())
	assert.Equal(t, http.StatusBadGateway, upstream.HttpStatusCode)
	assert.Equal(t, 404, upstream.UpstreamStatus)
	assert.ErrorIs(t, upstream, cause)

	unavailable := NewUnavailableError("ING_2001", "unreachable", cause)
	assert.True(t, unavailable.IsUpstreamError())
	assert.Equal(t, http.StatusServiceUnavailable, unavailable.HttpStatusCode)

	internal := NewInternalErrorPanic(cause)
	assert.True(t, internal.IsInternalError())
	assert.Equal(t, "SYS_9000: internal server error", internal.Error())
}
