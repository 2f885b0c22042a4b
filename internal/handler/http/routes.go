package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// idParam is the single path segment of /api/notes/{id}. GET and PUT read
// it as a note id, DELETE as a note tree id.
const idParam = "id"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/notes", h.searchNotes)
		r.Get("/api/notes/{id}", h.getNote)
		r.Put("/api/notes/{id}", h.updateNote)
		r.Delete("/api/notes/{id}", h.deleteNote)
		r.Post("/api/notes/{id}/children", h.createNote)
		r.Post("/api/notes/{id}/images", h.attachImage)

		r.Put("/api/session/data-key", h.unlockSession)
		r.Delete("/api/session/data-key", h.lockSession)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
