package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-gate-keeper/internal/biometric"
	"github.com/MKhiriev/go-gate-keeper/internal/service"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
	"github.com/MKhiriev/go-gate-keeper/internal/utils"
	"github.com/MKhiriev/go-gate-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrAreaInactive:            http.StatusConflict,
	service.ErrInvalidOperatorKey:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	biometric.ErrNoFaceDetected:       http.StatusUnprocessableEntity,
	biometric.ErrMultipleFaces:        http.StatusUnprocessableEntity,
	biometric.ErrExtractorUnavailable: http.StatusBadGateway,

	store.ErrEmployeeAlreadyExists: http.StatusConflict,
	store.ErrEmployeeNotFound:      http.StatusNotFound,
	store.ErrAreaNotFound:          http.StatusNotFound,
	store.ErrRecordNotFound:        http.StatusNotFound,
	store.ErrRecordNotSaved:        http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to its HTTP status and writes the uniform JSON error
// envelope. Server-side failures never echo internal error detail.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
