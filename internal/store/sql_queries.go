package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	notesTable     = "notes"
	notesTreeTable = "notes_tree"
	imagesTable    = "images"
)

var (
	noteColumns = []string{
		"note_id", "title", "text", "is_protected", "is_deleted", "date_created", "date_modified",
	}
	noteTreeColumns = []string{
		"note_tree_id", "note_id", "parent_note_id", "note_position", "is_expanded", "is_deleted", "date_modified",
	}
	imageColumns = []string{
		"image_id", "note_id", "note_offset", "name", "mime", "data", "is_deleted", "date_created", "date_modified",
	}
)

func statement(ph sq.PlaceholderFormat) sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(ph)
}

func buildGetNoteQuery(ph sq.PlaceholderFormat, noteID string) (string, []any, error) {
	return statement(ph).
		Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"note_id": noteID}).
		ToSql()
}

// buildLockNoteQuery selects the note row, holding a row lock until the
// transaction ends when forUpdate is set.
func buildLockNoteQuery(ph sq.PlaceholderFormat, noteID string, forUpdate bool) (string, []any, error) {
	b := statement(ph).
		Select("note_id").
		From(notesTable).
		Where(sq.Eq{"note_id": noteID})
	if forUpdate {
		b = b.Suffix("FOR UPDATE")
	}
	return b.ToSql()
}

func buildGetTreeEntryQuery(ph sq.PlaceholderFormat, noteTreeID string) (string, []any, error) {
	return statement(ph).
		Select(noteTreeColumns...).
		From(notesTreeTable).
		Where(sq.Eq{"note_tree_id": noteTreeID}).
		ToSql()
}

func buildCountActivePlacementsQuery(ph sq.PlaceholderFormat, noteID string) (string, []any, error) {
	return statement(ph).
		Select("COUNT(*)").
		From(notesTreeTable).
		Where(sq.Eq{"note_id": noteID, "is_deleted": false}).
		ToSql()
}

func buildMaxChildPositionQuery(ph sq.PlaceholderFormat, parentNoteID string) (string, []any, error) {
	return statement(ph).
		Select("COALESCE(MAX(note_position), -1)").
		From(notesTreeTable).
		Where(sq.Eq{"parent_note_id": parentNoteID, "is_deleted": false}).
		ToSql()
}

func buildShiftChildPositionsQuery(ph sq.PlaceholderFormat, parentNoteID string, after int, at time.Time) (string, []any, error) {
	return statement(ph).
		Update(notesTreeTable).
		Set("note_position", sq.Expr("note_position + 1")).
		Set("date_modified", at).
		Where(sq.Eq{"parent_note_id": parentNoteID, "is_deleted": false}).
		Where(sq.Gt{"note_position": after}).
		ToSql()
}

func buildActiveChildEntriesQuery(ph sq.PlaceholderFormat, parentNoteID string) (string, []any, error) {
	return statement(ph).
		Select(noteTreeColumns...).
		From(notesTreeTable).
		Where(sq.Eq{"parent_note_id": parentNoteID, "is_deleted": false}).
		OrderBy("note_position", "note_tree_id").
		ToSql()
}

func buildInsertNoteQuery(ph sq.PlaceholderFormat, note *models.Note) (string, []any, error) {
	return statement(ph).
		Insert(notesTable).
		Columns(noteColumns...).
		Values(
			note.NoteID,
			note.Title,
			note.Text,
			note.IsProtected,
			note.IsDeleted,
			note.DateCreated,
			note.DateModified,
		).
		ToSql()
}

func buildInsertTreeEntryQuery(ph sq.PlaceholderFormat, entry *models.NoteTree) (string, []any, error) {
	return statement(ph).
		Insert(notesTreeTable).
		Columns(noteTreeColumns...).
		Values(
			entry.NoteTreeID,
			entry.NoteID,
			entry.ParentNoteID,
			entry.Position,
			entry.IsExpanded,
			entry.IsDeleted,
			entry.DateModified,
		).
		ToSql()
}

func buildUpdateNoteQuery(ph sq.PlaceholderFormat, noteID string, fields models.NoteFields) (string, []any, error) {
	return statement(ph).
		Update(notesTable).
		Set("title", fields.Title).
		Set("text", fields.Text).
		Set("is_protected", fields.IsProtected).
		Set("date_modified", fields.DateModified).
		Where(sq.Eq{"note_id": noteID}).
		ToSql()
}

func buildMarkTreeEntryDeletedQuery(ph sq.PlaceholderFormat, noteTreeID string, at time.Time) (string, []any, error) {
	return statement(ph).
		Update(notesTreeTable).
		Set("is_deleted", true).
		Set("date_modified", at).
		Where(sq.Eq{"note_tree_id": noteTreeID, "is_deleted": false}).
		ToSql()
}

func buildMarkTreeEntriesDeletedQuery(ph sq.PlaceholderFormat, noteID string, at time.Time) (string, []any, error) {
	return statement(ph).
		Update(notesTreeTable).
		Set("is_deleted", true).
		Set("date_modified", at).
		Where(sq.Eq{"note_id": noteID, "is_deleted": false}).
		ToSql()
}

func buildMarkNoteDeletedQuery(ph sq.PlaceholderFormat, noteID string, at time.Time) (string, []any, error) {
	return statement(ph).
		Update(notesTable).
		Set("is_deleted", true).
		Set("date_modified", at).
		Where(sq.Eq{"note_id": noteID}).
		ToSql()
}

func buildMarkImagesDeletedQuery(ph sq.PlaceholderFormat, noteID string, at time.Time) (string, []any, error) {
	return statement(ph).
		Update(imagesTable).
		Set("is_deleted", true).
		Set("date_modified", at).
		Where(sq.Eq{"note_id": noteID, "is_deleted": false}).
		ToSql()
}

func buildGetImagesQuery(ph sq.PlaceholderFormat, noteID string) (string, []any, error) {
	return statement(ph).
		Select(imageColumns...).
		From(imagesTable).
		Where(sq.Eq{"note_id": noteID, "is_deleted": false}).
		OrderBy("note_offset", "image_id").
		ToSql()
}

func buildMaxImageOffsetQuery(ph sq.PlaceholderFormat, noteID string) (string, []any, error) {
	return statement(ph).
		Select("COALESCE(MAX(note_offset), -1)").
		From(imagesTable).
		Where(sq.Eq{"note_id": noteID, "is_deleted": false}).
		ToSql()
}

func buildInsertImageQuery(ph sq.PlaceholderFormat, image *models.Image) (string, []any, error) {
	return statement(ph).
		Insert(imagesTable).
		Columns(imageColumns...).
		Values(
			image.ImageID,
			image.NoteID,
			image.NoteOffset,
			image.Name,
			image.Mime,
			image.Data,
			image.IsDeleted,
			image.DateCreated,
			image.DateModified,
		).
		ToSql()
}

// likeEscaper makes a search term match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildSearchNotesQuery matches query as a literal, case-insensitive
// substring of the stored title or text of notes that still have an active
// placement. The comparison runs on stored content, so protected notes only
// ever match on ciphertext.
func buildSearchNotesQuery(ph sq.PlaceholderFormat, query string) (string, []any, error) {
	b := statement(ph).
		Select("note_id").
		From(notesTable).
		Where(sq.Eq{"is_deleted": false}).
		Where(sq.Expr("EXISTS (SELECT 1 FROM notes_tree t WHERE t.note_id = notes.note_id AND t.is_deleted = ?)", false))

	if query != "" {
		pattern := "%" + likeEscaper.Replace(query) + "%"
		b = b.Where(sq.Or{
			sq.Expr(`LOWER(title) LIKE LOWER(?) ESCAPE '\'`, pattern),
			sq.Expr(`LOWER(text) LIKE LOWER(?) ESCAPE '\'`, pattern),
		})
	}

	return b.OrderBy("date_created", "note_id").ToSql()
}
