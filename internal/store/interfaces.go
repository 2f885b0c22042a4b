package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/note_repository_mock.go -package=mock

// NoteRepository is the persistent home of notes, note tree entries and
// images. Reads outside a unit of work go straight to the database; every
// multi-row write goes through RunInTransaction.
type NoteRepository interface {
	// GetNote returns the note row, deleted or not. ErrNoteNotFound when
	// absent.
	GetNote(ctx context.Context, noteID string) (models.Note, error)

	// GetImages returns the non-deleted images of a note ordered by
	// note_offset.
	GetImages(ctx context.Context, noteID string) ([]models.Image, error)

	// Search returns ids of non-deleted notes with at least one active
	// placement whose stored title or text contains query, ordered by
	// date_created. query is a literal substring ("%" and "_" are not
	// wildcards) compared case-insensitively; sqlite folds ASCII letters only.
	// The match runs against stored content as is, so ciphertext of protected
	// notes never matches a plaintext term. An empty query matches every
	// note.
	Search(ctx context.Context, query string) ([]string, error)

	// RunInTransaction runs fn inside one transaction. The transaction is
	// committed when fn returns nil and rolled back when fn returns an error
	// or panics. tx must not be used after fn returns.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context, tx NoteTx) error) error
}

// NoteTx is the set of primitives available inside a unit of work.
type NoteTx interface {
	GetNote(ctx context.Context, noteID string) (models.Note, error)
	GetImages(ctx context.Context, noteID string) ([]models.Image, error)

	// LockNote takes a row lock on the note until the unit of work ends so
	// concurrent deletes of its placements run one after another.
	// ErrNoteNotFound when absent.
	LockNote(ctx context.Context, noteID string) error

	// GetTreeEntry returns the placement row, deleted or not.
	// ErrNoteTreeNotFound when absent.
	GetTreeEntry(ctx context.Context, noteTreeID string) (models.NoteTree, error)

	// CountActivePlacements counts the non-deleted tree entries of a note.
	CountActivePlacements(ctx context.Context, noteID string) (int, error)

	// MaxChildPosition returns the highest position among the active
	// children of parentNoteID, or -1 when it has none.
	MaxChildPosition(ctx context.Context, parentNoteID string) (int, error)

	// ShiftChildPositions moves every active child of parentNoteID with a
	// position greater than after one slot down.
	ShiftChildPositions(ctx context.Context, parentNoteID string, after int, at time.Time) error

	// ActiveChildEntries returns the active placements under parentNoteID
	// ordered by position.
	ActiveChildEntries(ctx context.Context, parentNoteID string) ([]models.NoteTree, error)

	// InsertNote stores note and returns its id. An empty NoteID is assigned.
	InsertNote(ctx context.Context, note *models.Note) (string, error)

	// InsertTreeEntry stores entry and returns its id. An empty NoteTreeID
	// is assigned.
	InsertTreeEntry(ctx context.Context, entry *models.NoteTree) (string, error)

	// UpdateNote rewrites title, text, protection flag and date_modified.
	// ErrNoteNotFound when no row matches.
	UpdateNote(ctx context.Context, noteID string, fields models.NoteFields) error

	// MarkTreeEntryDeleted soft-deletes one active placement.
	// ErrNoteTreeNotFound when no active placement matches.
	MarkTreeEntryDeleted(ctx context.Context, noteTreeID string, at time.Time) error

	// MarkTreeEntriesDeleted soft-deletes every active placement of a note
	// and returns how many were affected.
	MarkTreeEntriesDeleted(ctx context.Context, noteID string, at time.Time) (int64, error)

	// MarkNoteDeleted soft-deletes the note row.
	MarkNoteDeleted(ctx context.Context, noteID string, at time.Time) error

	// MarkImagesDeleted soft-deletes every image of a note and returns how
	// many were affected.
	MarkImagesDeleted(ctx context.Context, noteID string, at time.Time) (int64, error)

	// MaxImageOffset returns the highest note_offset among the non-deleted
	// images of a note, or -1 when it has none.
	MaxImageOffset(ctx context.Context, noteID string) (int, error)

	// InsertImage stores image and returns its id. An empty ImageID is
	// assigned.
	InsertImage(ctx context.Context, image *models.Image) (string, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// IDGenerator produces new row identifiers.
type IDGenerator interface {
	Generate() string
}
