package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lm-events/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
)

func TestNewAppResponseWriter(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	appWriter := newAppResponseWriter(rr, 1)

	assert.NotNil(t, appWriter)
	assert.Nil(t, appWriter.svcError)
	assert.Equal(t, "", appWriter.ErrorCode())
}

func TestAppResponseWriter_SetServiceError_And_ErrorCode(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	appWriter := newAppResponseWriter(rr, 1)

	// Initially no error
	assert.Equal(t, "", appWriter.ErrorCode())

	// Set InvalidArgument error
	svcErr1 := svcerrors.NewInvalidArgumentError("TEST_1000", "test error", nil)
	appWriter.SetServiceError(svcErr1)
	assert.Equal(t, svcErr1, appWriter.svcError)
	assert.Equal(t, "TEST_1000", appWriter.ErrorCode())

	// Set Internal error
	svcErr2 := svcerrors.NewInternalError("TEST_5000", nil)
	appWriter.SetServiceError(svcErr2)
	assert.Equal(t, svcErr2, appWriter.svcError)
	assert.Equal(t, "TEST_5000", appWriter.ErrorCode())

	// Clear error by setting nil
	appWriter.SetServiceError(nil)
	assert.Nil(t, appWriter.svcError)
	assert.Equal(t, "", appWriter.ErrorCode())
}

func TestAppResponseWriter_WrapsResponseWriter(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	appWriter := newAppResponseWriter(rr, 1)

	// Test WriteHeader and Status tracking
	appWriter.WriteHeader(http.StatusCreated)
	assert.Equal(t, http.StatusCreated, appWriter.Status())
	assert.Equal(t, http.StatusCreated, rr.Code)

	// Test Write and body content
	appWriter.Write([]byte("test body"))
	assert.Equal(t, "test body", rr.Body.String())
	assert.Equal(t, http.StatusCreated, appWriter.Status()) // Status should not change after Write

	// Test WriteHeader with different status
	rr2 := httptest.NewRecorder()
	appWriter2 := newAppResponseWriter(rr2, 1)
	appWriter2.WriteHeader(http.StatusNotFound)
	assert.Equal(t, http.StatusNotFound, appWriter2.Status())
	assert.Equal(t, http.StatusNotFound, rr2.Code)

	// Write should not change status
	appWriter2.Write([]byte("not found"))
	assert.Equal(t, http.StatusNotFound, appWriter2.Status())
	assert.Equal(t, http.StatusNotFound, rr2.Code)
}

func TestAppResponseWriter_UpstreamStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		svcErr *svcerrors.ServiceError
		want   int
	}{
		{name: "no error", svcErr: nil, want: 0},
		{name: "upstream rejection", svcErr: svcerrors.NewUpstreamError("ING_2000", "rejected", http.StatusUnauthorized, nil), want: http.StatusUnauthorized},
		{name: "unreachable", svcErr: svcerrors.NewUnavailableError("ING_2001", "unavailable", nil), want: 0},
		{name: "invalid argument", svcErr: svcerrors.NewInvalidArgumentError("HTTP_1000", "bad", nil), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
			appWriter.SetServiceError(tt.svcErr)
			assert.Equal(t, tt.want, appWriter.UpstreamStatus())
		})
	}
}

func TestResponseDetails(t *testing.T) {
	t.Parallel()

	status, code, upstream := responseDetails(httptest.NewRecorder())
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, code)
	assert.Zero(t, upstream)

	appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
	assert.Equal(t, http.StatusOK, appWriter.StatusOrDefault())
	appWriter.SetServiceError(svcerrors.NewUpstreamError("EXP_2000", "rejected", http.StatusForbidden, nil))
	appWriter.WriteHeader(http.StatusBadGateway)

	status, code, upstream = responseDetails(appWriter)
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "EXP_2000", code)
	assert.Equal(t, http.StatusForbidden, upstream)
}
