// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the note store HTTP API.
//
// [NoteClient] hides routes, headers and JSON encoding. Failed calls are
// mapped from HTTP status codes to the sentinel errors in errors.go so that
// callers can use [errors.Is] (e.g. [ErrNotFound] for 404, [ErrForbidden]
// for a protected note without an unlocked session).
package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/note_client_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// NoteClient talks to a running note store on behalf of one session.
type NoteClient interface {
	// SetToken stores the session token sent as a bearer token with every
	// request.
	SetToken(token string)

	// SetSourceID sets the X-Source-ID header recorded with mutations.
	SetSourceID(sourceID string)

	// GetNote returns the note detail with plaintext fields.
	GetNote(ctx context.Context, noteID string) (models.NoteDetail, error)

	// CreateNote places a new note under parentNoteID.
	CreateNote(ctx context.Context, parentNoteID string, note models.NewNote) (models.CreatedNote, error)

	// UpdateNote changes the given fields of a note.
	UpdateNote(ctx context.Context, noteID string, update models.NoteUpdate) error

	// DeleteNote deletes one placement of a note.
	DeleteNote(ctx context.Context, noteTreeID string) error

	// Search returns the ids of notes matching query.
	Search(ctx context.Context, query string) ([]string, error)

	// AttachImage uploads an image to a note and returns its id.
	AttachImage(ctx context.Context, noteID string, image models.NewImage) (string, error)

	// UnlockSession binds dataKey to the current session.
	UnlockSession(ctx context.Context, dataKey []byte) error

	// LockSession drops the data key of the current session.
	LockSession(ctx context.Context) error
}
