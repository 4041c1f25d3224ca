package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-gate-keeper/internal/biometric"
	"github.com/MKhiriev/go-gate-keeper/internal/service"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
	"github.com/MKhiriev/go-gate-keeper/models"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"inactive area", service.ErrAreaInactive, http.StatusConflict},
		{"wrong operator key", service.ErrInvalidOperatorKey, http.StatusUnauthorized},
		{"expired token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{"no face", biometric.ErrNoFaceDetected, http.StatusUnprocessableEntity},
		{"multiple faces", biometric.ErrMultipleFaces, http.StatusUnprocessableEntity},
		{"extractor down", biometric.ErrExtractorUnavailable, http.StatusBadGateway},
		{"duplicate employee", store.ErrEmployeeAlreadyExists, http.StatusConflict},
		{"missing employee", store.ErrEmployeeNotFound, http.StatusNotFound},
		{"missing area", store.ErrAreaNotFound, http.StatusNotFound},
		{"missing record", store.ErrRecordNotFound, http.StatusNotFound},
		{"query failure", store.ErrExecutingQuery, http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped sentinel", fmt.Errorf("area lookup failed: %w", store.ErrAreaNotFound), http.StatusNotFound},
		{"doubly wrapped sentinel", fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", service.ErrAreaInactive)), http.StatusConflict},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, statusFromError(test.err))
		})
	}
}

func TestWriteError_HidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()

	writeError(rec, fmt.Errorf("%w: connection refused to 10.0.0.5", store.ErrExecutingQuery))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var response models.ErrorResponse
	decodeBody(t, rec, &response)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), response.Error)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

func TestWriteError_ClientErrorKeepsMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	writeError(rec, service.ErrInvalidOperatorKey)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var response models.ErrorResponse
	decodeBody(t, rec, &response)
	assert.Equal(t, service.ErrInvalidOperatorKey.Error(), response.Error)
}
