package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrNotFound:              http.StatusNotFound,
	service.ErrInvalidParent:         http.StatusBadRequest,
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrProtectedAccessDenied: http.StatusForbidden,
	ErrInvalidJSON:                   http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError writes err with its mapped status. Messages of
// unclassified errors stay in the log.
func writeServiceError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		utils.WriteError(w, http.StatusText(status), status)
		return
	}
	utils.WriteError(w, err.Error(), status)
}
