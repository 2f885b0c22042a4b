package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NoteService creates, reads, updates and deletes notes while keeping the
// note tree and the attached images consistent. Protected notes are
// encrypted and decrypted with the data key bound to the calling session.
type NoteService interface {
	// GetNoteDetail returns the note with plaintext fields and its ordered
	// images. ErrNotFound, ErrProtectedAccessDenied.
	GetNoteDetail(ctx context.Context, noteID, sessionID string) (models.NoteDetail, error)

	// CreateNewNote places a new note under parentNoteID. ErrInvalidParent,
	// ErrProtectedAccessDenied.
	CreateNewNote(ctx context.Context, parentNoteID string, note models.NewNote, reqCtx models.RequestContext) (models.CreatedNote, error)

	// UpdateNote rewrites title, text and protection of a note. The tree is
	// not touched. ErrNotFound, ErrProtectedAccessDenied.
	UpdateNote(ctx context.Context, noteID string, update models.NoteUpdate, reqCtx models.RequestContext) error

	// DeleteNote soft-deletes one placement and cascades when it was the
	// last one. ErrNotFound.
	DeleteNote(ctx context.Context, noteTreeID string, reqCtx models.RequestContext) error

	// Search returns ids of notes whose stored title or text contains query.
	// Protected notes are matched on ciphertext only.
	Search(ctx context.Context, query string) ([]string, error)

	// AttachImage appends an image to a note and returns the image id.
	// ErrNotFound.
	AttachImage(ctx context.Context, noteID string, image models.NewImage, reqCtx models.RequestContext) (string, error)
}

// SessionService binds and evicts the data key of a session. It is the
// in-process hook used by whatever unlocks protected content.
type SessionService interface {
	UnlockSession(ctx context.Context, sessionID string, dataKey []byte) error
	LockSession(ctx context.Context, sessionID string) error
}
