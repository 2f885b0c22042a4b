package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/session"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

// DataKeys is the session key store as seen by the services: readable by
// the note service, bindable by the session service.
type DataKeys interface {
	session.DataKeyStore
	session.DataKeyBinder
}

type Services struct {
	NoteService    NoteService
	SessionService SessionService
}

func NewServices(repositories *store.Repositories, dataKeys DataKeys, ids store.IDGenerator, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	noteService := NewNoteService(repositories.NoteRepository, dataKeys, crypto.NewFieldCodec(), ids, cfg.Notes, logger)

	return &Services{
		NoteService:    NewNoteValidationService().Wrap(noteService),
		SessionService: NewSessionService(dataKeys, logger),
	}
}
