package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteRepository is the database/sql implementation of [NoteRepository].
// The same queries serve the connection pool for plain reads and a
// *sql.Tx inside RunInTransaction.
type noteRepository struct {
	*DB
	ids    IDGenerator
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, ids IDGenerator, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:     db,
		ids:    ids,
		logger: logger,
	}
}

func (r *noteRepository) queries(q querier) *noteQueries {
	return &noteQueries{
		q:           q,
		placeholder: r.placeholder,
		ids:         r.ids,
		classify:    r.classify,
		lockRows:    r.Driver() == config.DriverPostgres,
	}
}

func (r *noteRepository) GetNote(ctx context.Context, noteID string) (models.Note, error) {
	return r.queries(r.DB.DB).GetNote(ctx, noteID)
}

func (r *noteRepository) GetImages(ctx context.Context, noteID string) ([]models.Image, error) {
	return r.queries(r.DB.DB).GetImages(ctx, noteID)
}

func (r *noteRepository) Search(ctx context.Context, query string) ([]string, error) {
	return r.queries(r.DB.DB).Search(ctx, query)
}

// RunInTransaction implements [NoteRepository]. The deferred rollback is a
// no-op after a successful commit and also covers a panicking fn.
func (r *noteRepository) RunInTransaction(ctx context.Context, fn func(ctx context.Context, tx NoteTx) error) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.RunInTransaction").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err := fn(ctx, r.queries(tx)); err != nil {
		log.Debug().Err(err).Str("func", "noteRepository.RunInTransaction").Msg("unit of work failed, rolling back")
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "noteRepository.RunInTransaction").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
