package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// emptyResponse is written by mutations that return nothing.
type emptyResponse struct{}

type createdImage struct {
	ImageID string `json:"image_id"`
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	noteID := chi.URLParam(r, idParam)
	sessionID, _ := utils.GetSessionIDFromContext(r.Context())

	detail, err := h.services.NoteService.GetNoteDetail(r.Context(), noteID, sessionID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getNote").Str("note_id", noteID).Msg("error loading note")
		writeServiceError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, detail, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getNote").Msg("error writing response")
	}
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	parentNoteID := chi.URLParam(r, idParam)

	var newNote models.NewNote
	if err := decodeJSON(w, r, &newNote); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("invalid JSON was passed")
		writeServiceError(w, err)
		return
	}

	created, err := h.services.NoteService.CreateNewNote(r.Context(), parentNoteID, newNote, requestContext(r))
	if err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Str("parent_note_id", parentNoteID).Msg("error creating note")
		writeServiceError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("error writing response")
	}
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	noteID := chi.URLParam(r, idParam)

	var update models.NoteUpdate
	if err := decodeJSON(w, r, &update); err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Msg("invalid JSON was passed")
		writeServiceError(w, err)
		return
	}

	if err := h.services.NoteService.UpdateNote(r.Context(), noteID, update, requestContext(r)); err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Str("note_id", noteID).Msg("error updating note")
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, emptyResponse{}, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	noteTreeID := chi.URLParam(r, idParam)

	if err := h.services.NoteService.DeleteNote(r.Context(), noteTreeID, requestContext(r)); err != nil {
		log.Err(err).Str("func", "*Handler.deleteNote").Str("note_tree_id", noteTreeID).Msg("error deleting note")
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, emptyResponse{}, http.StatusOK)
}

func (h *Handler) searchNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	noteIDs, err := h.services.NoteService.Search(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.searchNotes").Msg("error searching notes")
		writeServiceError(w, err)
		return
	}
	if noteIDs == nil {
		noteIDs = []string{}
	}

	if _, err = utils.WriteJSON(w, noteIDs, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.searchNotes").Msg("error writing response")
	}
}

func (h *Handler) attachImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	noteID := chi.URLParam(r, idParam)

	var image models.NewImage
	if err := decodeJSON(w, r, &image); err != nil {
		log.Err(err).Str("func", "*Handler.attachImage").Msg("invalid JSON was passed")
		writeServiceError(w, err)
		return
	}

	imageID, err := h.services.NoteService.AttachImage(r.Context(), noteID, image, requestContext(r))
	if err != nil {
		log.Err(err).Str("func", "*Handler.attachImage").Str("note_id", noteID).Msg("error attaching image")
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, createdImage{ImageID: imageID}, http.StatusCreated)
}
