package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-study-sync/internal/app"
	"github.com/MKhiriev/go-study-sync/internal/service"
	"github.com/MKhiriev/go-study-sync/internal/store"
	"github.com/MKhiriev/go-study-sync/internal/utils"
	"github.com/MKhiriev/go-study-sync/internal/validators"
	"github.com/MKhiriev/go-study-sync/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:                   http.StatusBadRequest,
	service.ErrUnsupportedMergeVersion:               http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid:               http.StatusUnauthorized,
	service.ErrUnauthorizedAccessToDifferentUserData: http.StatusForbidden,

	validators.ErrInvalidRequest:       http.StatusBadRequest,
	validators.ErrInvalidData:          http.StatusBadRequest,
	validators.ErrInvalidDevice:        http.StatusBadRequest,
	validators.ErrMissingClientVersion: http.StatusBadRequest,
	validators.ErrMissingMergeVersion:  http.StatusBadRequest,
	validators.ErrMissingData:          http.StatusBadRequest,
	validators.ErrMissingSinceVersion:  http.StatusBadRequest,
	validators.ErrMissingDevice:        http.StatusBadRequest,

	store.ErrDeviceNotSaved:    http.StatusConflict,
	store.ErrUnknownEntityKind: http.StatusInternalServerError,

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

// writeError replies with an ErrorResponse body. Server-side failures are
// reported with a generic message only.
func writeError(w http.ResponseWriter, err error, status int) {
	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = app.MsgInternalServerError
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
