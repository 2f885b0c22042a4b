package store

import "github.com/MKhiriev/go-note-keeper/internal/logger"

type Repositories struct {
	NoteRepository NoteRepository
}

func NewRepositories(db *DB, ids IDGenerator, logger *logger.Logger) *Repositories {
	return &Repositories{
		NoteRepository: NewNoteRepository(db, ids, logger),
	}
}
