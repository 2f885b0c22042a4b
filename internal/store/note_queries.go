package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// querier is the subset of *sql.DB and *sql.Tx used by noteQueries.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

// noteQueries implements [NoteTx] on top of either a connection pool or an
// open transaction. A value bound to a *sql.Tx lives exactly as long as the
// unit of work that created it.
type noteQueries struct {
	q           querier
	placeholder sq.PlaceholderFormat
	ids         IDGenerator
	classify    func(error) ErrorClassification

	// lockRows enables SELECT ... FOR UPDATE. sqlite serializes writers on
	// its single connection and has no row locks.
	lockRows bool
}

func (n *noteQueries) GetNote(ctx context.Context, noteID string) (models.Note, error) {
	const fn = "noteQueries.GetNote"
	log := logger.FromContext(ctx).WithNote(noteID)

	query, args, err := buildGetNoteQuery(n.placeholder, noteID)
	if err != nil {
		return models.Note{}, n.buildErr(log, fn, err)
	}

	note, err := scanNote(n.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", fn).Msg("note not found")
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		return models.Note{}, n.queryErr(log, fn, ErrScanningRow, err)
	}

	return note, nil
}

func (n *noteQueries) GetImages(ctx context.Context, noteID string) ([]models.Image, error) {
	const fn = "noteQueries.GetImages"
	log := logger.FromContext(ctx).WithNote(noteID)

	query, args, err := buildGetImagesQuery(n.placeholder, noteID)
	if err != nil {
		return nil, n.buildErr(log, fn, err)
	}

	rows, err := n.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, n.queryErr(log, fn, ErrExecutingQuery, err)
	}
	defer rows.Close()

	images := make([]models.Image, 0, 4)
	for rows.Next() {
		var img models.Image
		if err := rows.Scan(
			&img.ImageID,
			&img.NoteID,
			&img.NoteOffset,
			&img.Name,
			&img.Mime,
			&img.Data,
			&img.IsDeleted,
			&img.DateCreated,
			&img.DateModified,
		); err != nil {
			return nil, n.queryErr(log, fn, ErrScanningRow, err)
		}
		images = append(images, img)
	}

	if err := rows.Err(); err != nil {
		return nil, n.queryErr(log, fn, ErrScanningRows, err)
	}

	return images, nil
}

func (n *noteQueries) Search(ctx context.Context, search string) ([]string, error) {
	const fn = "noteQueries.Search"
	log := logger.FromContext(ctx)

	query, args, err := buildSearchNotesQuery(n.placeholder, search)
	if err != nil {
		return nil, n.buildErr(log, fn, err)
	}

	rows, err := n.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, n.queryErr(log, fn, ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0, 16)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, n.queryErr(log, fn, ErrScanningRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, n.queryErr(log, fn, ErrScanningRows, err)
	}

	return ids, nil
}

func (n *noteQueries) LockNote(ctx context.Context, noteID string) error {
	const fn = "noteQueries.LockNote"
	log := logger.FromContext(ctx).WithNote(noteID)

	query, args, err := buildLockNoteQuery(n.placeholder, noteID, n.lockRows)
	if err != nil {
		return n.buildErr(log, fn, err)
	}

	var id string
	err = n.q.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrNoteNotFound, noteID)
	}
	if err != nil {
		return n.queryErr(log, fn, ErrExecutingQuery, err)
	}
	return nil
}

func (n *noteQueries) GetTreeEntry(ctx context.Context, noteTreeID string) (models.NoteTree, error) {
	const fn = "noteQueries.GetTreeEntry"
	log := logger.FromContext(ctx)

	query, args, err := buildGetTreeEntryQuery(n.placeholder, noteTreeID)
	if err != nil {
		return models.NoteTree{}, n.buildErr(log, fn, err)
	}

	entry, err := scanTreeEntry(n.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", fn).Str("note_tree_id", noteTreeID).Msg("note tree entry not found")
		return models.NoteTree{}, ErrNoteTreeNotFound
	}
	if err != nil {
		return models.NoteTree{}, n.queryErr(log, fn, ErrScanningRow, err)
	}

	return entry, nil
}

func (n *noteQueries) CountActivePlacements(ctx context.Context, noteID string) (int, error) {
	query, args, err := buildCountActivePlacementsQuery(n.placeholder, noteID)
	return n.scalar(ctx, "noteQueries.CountActivePlacements", query, args, err)
}

func (n *noteQueries) MaxChildPosition(ctx context.Context, parentNoteID string) (int, error) {
	query, args, err := buildMaxChildPositionQuery(n.placeholder, parentNoteID)
	return n.scalar(ctx, "noteQueries.MaxChildPosition", query, args, err)
}

func (n *noteQueries) MaxImageOffset(ctx context.Context, noteID string) (int, error) {
	query, args, err := buildMaxImageOffsetQuery(n.placeholder, noteID)
	return n.scalar(ctx, "noteQueries.MaxImageOffset", query, args, err)
}

func (n *noteQueries) ShiftChildPositions(ctx context.Context, parentNoteID string, after int, at time.Time) error {
	query, args, err := buildShiftChildPositionsQuery(n.placeholder, parentNoteID, after, at)
	_, err = n.exec(ctx, "noteQueries.ShiftChildPositions", query, args, err)
	return err
}

func (n *noteQueries) ActiveChildEntries(ctx context.Context, parentNoteID string) ([]models.NoteTree, error) {
	const fn = "noteQueries.ActiveChildEntries"
	log := logger.FromContext(ctx).WithNote(parentNoteID)

	query, args, err := buildActiveChildEntriesQuery(n.placeholder, parentNoteID)
	if err != nil {
		return nil, n.buildErr(log, fn, err)
	}

	rows, err := n.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, n.queryErr(log, fn, ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.NoteTree, 0, 8)
	for rows.Next() {
		entry, err := scanTreeEntry(rows)
		if err != nil {
			return nil, n.queryErr(log, fn, ErrScanningRow, err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, n.queryErr(log, fn, ErrScanningRows, err)
	}

	return entries, nil
}

func (n *noteQueries) InsertNote(ctx context.Context, note *models.Note) (string, error) {
	if note.NoteID == "" {
		note.NoteID = n.ids.Generate()
	}

	query, args, err := buildInsertNoteQuery(n.placeholder, note)
	if err := n.insert(ctx, "noteQueries.InsertNote", query, args, err); err != nil {
		return "", err
	}

	return note.NoteID, nil
}

func (n *noteQueries) InsertTreeEntry(ctx context.Context, entry *models.NoteTree) (string, error) {
	if entry.NoteTreeID == "" {
		entry.NoteTreeID = n.ids.Generate()
	}

	query, args, err := buildInsertTreeEntryQuery(n.placeholder, entry)
	if err := n.insert(ctx, "noteQueries.InsertTreeEntry", query, args, err); err != nil {
		return "", err
	}

	return entry.NoteTreeID, nil
}

func (n *noteQueries) InsertImage(ctx context.Context, image *models.Image) (string, error) {
	if image.ImageID == "" {
		image.ImageID = n.ids.Generate()
	}

	query, args, err := buildInsertImageQuery(n.placeholder, image)
	if err := n.insert(ctx, "noteQueries.InsertImage", query, args, err); err != nil {
		return "", err
	}

	return image.ImageID, nil
}

func (n *noteQueries) UpdateNote(ctx context.Context, noteID string, fields models.NoteFields) error {
	query, args, err := buildUpdateNoteQuery(n.placeholder, noteID, fields)
	affected, err := n.exec(ctx, "noteQueries.UpdateNote", query, args, err)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNoteNotFound
	}
	return nil
}

func (n *noteQueries) MarkTreeEntryDeleted(ctx context.Context, noteTreeID string, at time.Time) error {
	query, args, err := buildMarkTreeEntryDeletedQuery(n.placeholder, noteTreeID, at)
	affected, err := n.exec(ctx, "noteQueries.MarkTreeEntryDeleted", query, args, err)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNoteTreeNotFound
	}
	return nil
}

func (n *noteQueries) MarkTreeEntriesDeleted(ctx context.Context, noteID string, at time.Time) (int64, error) {
	query, args, err := buildMarkTreeEntriesDeletedQuery(n.placeholder, noteID, at)
	return n.exec(ctx, "noteQueries.MarkTreeEntriesDeleted", query, args, err)
}

func (n *noteQueries) MarkNoteDeleted(ctx context.Context, noteID string, at time.Time) error {
	query, args, err := buildMarkNoteDeletedQuery(n.placeholder, noteID, at)
	affected, err := n.exec(ctx, "noteQueries.MarkNoteDeleted", query, args, err)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNoteNotFound
	}
	return nil
}

func (n *noteQueries) MarkImagesDeleted(ctx context.Context, noteID string, at time.Time) (int64, error) {
	query, args, err := buildMarkImagesDeletedQuery(n.placeholder, noteID, at)
	return n.exec(ctx, "noteQueries.MarkImagesDeleted", query, args, err)
}

// scalar runs a single-value integer query.
func (n *noteQueries) scalar(ctx context.Context, fn, query string, args []any, buildErr error) (int, error) {
	log := logger.FromContext(ctx)
	if buildErr != nil {
		return 0, n.buildErr(log, fn, buildErr)
	}

	var v int
	if err := n.q.QueryRowContext(ctx, query, args...).Scan(&v); err != nil {
		return 0, n.queryErr(log, fn, ErrExecutingQuery, err)
	}
	return v, nil
}

// exec runs a DML statement and returns the number of affected rows.
func (n *noteQueries) exec(ctx context.Context, fn, query string, args []any, buildErr error) (int64, error) {
	log := logger.FromContext(ctx)
	if buildErr != nil {
		return 0, n.buildErr(log, fn, buildErr)
	}

	res, err := n.q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, n.queryErr(log, fn, ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, n.queryErr(log, fn, ErrExecutingQuery, err)
	}
	return affected, nil
}

func (n *noteQueries) insert(ctx context.Context, fn, query string, args []any, buildErr error) error {
	affected, err := n.exec(ctx, fn, query, args, buildErr)
	if err != nil {
		return err
	}
	if affected == 0 {
		logger.FromContext(ctx).Error().Str("func", fn).Msg("insert affected no rows")
		return ErrNothingInserted
	}
	return nil
}

func (n *noteQueries) buildErr(log *logger.Logger, fn string, err error) error {
	log.Err(err).Str("func", fn).Msg("failed to build query")
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}

func (n *noteQueries) queryErr(log *logger.Logger, fn string, sentinel, err error) error {
	class := n.classify(err)
	log.Err(err).
		Str("func", fn).
		Str("pg_code", postgresError(err)).
		Bool("retryable", class == Retryable).
		Msg("database operation failed")

	switch class {
	case MissingReference:
		return fmt.Errorf("%w: %w", ErrMissingReference, err)
	case DuplicateKey:
		return fmt.Errorf("%w: %w", ErrDuplicateID, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

func scanNote(row rowScanner) (models.Note, error) {
	var note models.Note
	err := row.Scan(
		&note.NoteID,
		&note.Title,
		&note.Text,
		&note.IsProtected,
		&note.IsDeleted,
		&note.DateCreated,
		&note.DateModified,
	)
	return note, err
}

func scanTreeEntry(row rowScanner) (models.NoteTree, error) {
	var entry models.NoteTree
	err := row.Scan(
		&entry.NoteTreeID,
		&entry.NoteID,
		&entry.ParentNoteID,
		&entry.Position,
		&entry.IsExpanded,
		&entry.IsDeleted,
		&entry.DateModified,
	)
	return entry, err
}
