package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// unlockSession binds the data key in the body to the caller's session.
func (h *Handler) unlockSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	sessionID, _ := utils.GetSessionIDFromContext(r.Context())

	var unlock models.SessionUnlock
	if err := decodeJSON(w, r, &unlock); err != nil {
		log.Err(err).Str("func", "*Handler.unlockSession").Msg("invalid JSON was passed")
		writeServiceError(w, err)
		return
	}

	if err := h.services.SessionService.UnlockSession(r.Context(), sessionID, unlock.DataKey); err != nil {
		log.Err(err).Str("func", "*Handler.unlockSession").Msg("error unlocking session")
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) lockSession(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := utils.GetSessionIDFromContext(r.Context())

	if err := h.services.SessionService.LockSession(r.Context(), sessionID); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.lockSession").Msg("error locking session")
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
