// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

func newSQLiteRepo(t *testing.T) (NoteRepository, *DB) {
	t.Helper()

	db, err := NewConnect(context.Background(), config.DB{
		DSN:    filepath.Join(t.TempDir(), "notes.db"),
		Driver: config.DriverSQLite,
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())

	return NewNoteRepository(db, utils.NewUUIDGenerator(), logger.Nop()), db
}

func TestSQLite_InsertAndRead(t *testing.T) {
	repo, _ := newSQLiteRepo(t)
	ctx := testContext()
	at := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)

	var noteID string
	err := repo.RunInTransaction(ctx, func(ctx context.Context, tx NoteTx) error {
		var err error
		noteID, err = tx.InsertNote(ctx, &models.Note{Title: "A", Text: "B", DateCreated: at, DateModified: at})
		if err != nil {
			return err
		}
		if _, err := tx.InsertTreeEntry(ctx, &models.NoteTree{NoteID: noteID, ParentNoteID: models.RootNoteID, DateModified: at}); err != nil {
			return err
		}
		for i, name := range []string{"second.png", "first.png"} {
			if _, err := tx.InsertImage(ctx, &models.Image{
				NoteID: noteID, NoteOffset: 1 - i, Name: name, Mime: "image/png",
				Data: []byte{byte(i)}, DateCreated: at, DateModified: at,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	note, err := repo.GetNote(ctx, noteID)
	require.NoError(t, err)
	assert.Equal(t, "A", note.Title)
	assert.Equal(t, "B", note.Text)
	assert.False(t, note.IsProtected)
	assert.True(t, at.Equal(note.DateCreated))

	images, err := repo.GetImages(ctx, noteID)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "first.png", images[0].Name)
	assert.Equal(t, "second.png", images[1].Name)

	_, err = repo.GetNote(ctx, "missing")
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestSQLite_FailedUnitLeavesNoRows(t *testing.T) {
	repo, _ := newSQLiteRepo(t)
	ctx := testContext()
	injected := errors.New("tree insert failed")

	var noteID string
	err := repo.RunInTransaction(ctx, func(ctx context.Context, tx NoteTx) error {
		var err error
		noteID, err = tx.InsertNote(ctx, &models.Note{Title: "ghost", DateCreated: time.Now(), DateModified: time.Now()})
		if err != nil {
			return err
		}
		return injected
	})
	require.ErrorIs(t, err, injected)
	require.NotEmpty(t, noteID)

	_, err = repo.GetNote(ctx, noteID)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestSQLite_TreeEntryMustReferenceNote(t *testing.T) {
	repo, _ := newSQLiteRepo(t)

	err := repo.RunInTransaction(testContext(), func(ctx context.Context, tx NoteTx) error {
		_, err := tx.InsertTreeEntry(ctx, &models.NoteTree{NoteID: "no-such-note", ParentNoteID: models.RootNoteID})
		return err
	})

	require.ErrorIs(t, err, ErrMissingReference)
}

func TestSQLite_ImageMustReferenceNote(t *testing.T) {
	repo, _ := newSQLiteRepo(t)

	err := repo.RunInTransaction(testContext(), func(ctx context.Context, tx NoteTx) error {
		_, err := tx.InsertImage(ctx, &models.Image{NoteID: "no-such-note", Data: []byte{1}})
		return err
	})

	require.ErrorIs(t, err, ErrMissingReference)
}

func TestSQLite_DuplicateIDIsClassified(t *testing.T) {
	repo, _ := newSQLiteRepo(t)
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	err := repo.RunInTransaction(testContext(), func(ctx context.Context, tx NoteTx) error {
		if _, err := tx.InsertNote(ctx, &models.Note{NoteID: "n-1", DateCreated: at, DateModified: at}); err != nil {
			return err
		}
		_, err := tx.InsertNote(ctx, &models.Note{NoteID: "n-1", DateCreated: at, DateModified: at})
		return err
	})

	require.ErrorIs(t, err, ErrDuplicateID)
	require.ErrorIs(t, err, ErrStorage)
}

func TestSQLite_LockNoteWithoutRowLocks(t *testing.T) {
	repo, db := newSQLiteRepo(t)
	assert.Equal(t, config.DriverSQLite, db.Driver())
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	err := repo.RunInTransaction(testContext(), func(ctx context.Context, tx NoteTx) error {
		id, err := tx.InsertNote(ctx, &models.Note{DateCreated: at, DateModified: at})
		if err != nil {
			return err
		}
		require.NoError(t, tx.LockNote(ctx, id))
		assert.ErrorIs(t, tx.LockNote(ctx, "missing"), ErrNoteNotFound)
		return nil
	})
	require.NoError(t, err)
}

func TestSQLite_PositionsAndSoftDelete(t *testing.T) {
	repo, _ := newSQLiteRepo(t)
	ctx := testContext()
	at := time.Now().UTC()

	err := repo.RunInTransaction(ctx, func(ctx context.Context, tx NoteTx) error {
		pos, err := tx.MaxChildPosition(ctx, models.RootNoteID)
		require.NoError(t, err)
		assert.Equal(t, -1, pos)

		var treeIDs []string
		for i := 0; i < 3; i++ {
			noteID, err := tx.InsertNote(ctx, &models.Note{DateCreated: at, DateModified: at})
			require.NoError(t, err)
			treeID, err := tx.InsertTreeEntry(ctx, &models.NoteTree{NoteID: noteID, ParentNoteID: models.RootNoteID, Position: i, DateModified: at})
			require.NoError(t, err)
			treeIDs = append(treeIDs, treeID)
		}

		require.NoError(t, tx.ShiftChildPositions(ctx, models.RootNoteID, 0, at))

		entries, err := tx.ActiveChildEntries(ctx, models.RootNoteID)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, []int{0, 2, 3}, []int{entries[0].Position, entries[1].Position, entries[2].Position})

		require.NoError(t, tx.MarkTreeEntryDeleted(ctx, treeIDs[1], at))
		assert.ErrorIs(t, tx.MarkTreeEntryDeleted(ctx, treeIDs[1], at), ErrNoteTreeNotFound)

		deleted, err := tx.GetTreeEntry(ctx, treeIDs[1])
		require.NoError(t, err)
		assert.True(t, deleted.IsDeleted)

		count, err := tx.CountActivePlacements(ctx, deleted.NoteID)
		require.NoError(t, err)
		assert.Zero(t, count)

		pos, err = tx.MaxChildPosition(ctx, models.RootNoteID)
		require.NoError(t, err)
		assert.Equal(t, 3, pos)
		return nil
	})
	require.NoError(t, err)
}

func TestSQLite_SearchSkipsDeleted(t *testing.T) {
	repo, _ := newSQLiteRepo(t)
	ctx := testContext()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var ids []string
	err := repo.RunInTransaction(ctx, func(ctx context.Context, tx NoteTx) error {
		for i, title := range []string{"hello world", "say hello", "bye", "hello orphan"} {
			at := base.Add(time.Duration(i) * time.Minute)
			id, err := tx.InsertNote(ctx, &models.Note{Title: title, DateCreated: at, DateModified: at})
			if err != nil {
				return err
			}
			if _, err = tx.InsertTreeEntry(ctx, &models.NoteTree{
				NoteID: id, ParentNoteID: models.RootNoteID, Position: i, DateModified: at,
			}); err != nil {
				return err
			}
			ids = append(ids, id)
		}
		if err := tx.MarkNoteDeleted(ctx, ids[1], base); err != nil {
			return err
		}
		_, err := tx.MarkTreeEntriesDeleted(ctx, ids[3], base)
		return err
	})
	require.NoError(t, err)

	found, err := repo.Search(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, []string{ids[0]}, found)

	all, err := repo.Search(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{ids[0], ids[2]}, all)
}

func TestSQLite_SearchIsLiteralAndCaseInsensitive(t *testing.T) {
	repo, _ := newSQLiteRepo(t)
	ctx := testContext()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var ids []string
	err := repo.RunInTransaction(ctx, func(ctx context.Context, tx NoteTx) error {
		for i, title := range []string{"abc", "50% off", `C:\notes`} {
			at := base.Add(time.Duration(i) * time.Minute)
			id, err := tx.InsertNote(ctx, &models.Note{Title: title, DateCreated: at, DateModified: at})
			if err != nil {
				return err
			}
			if _, err = tx.InsertTreeEntry(ctx, &models.NoteTree{
				NoteID: id, ParentNoteID: models.RootNoteID, Position: i, DateModified: at,
			}); err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	require.NoError(t, err)

	tests := []struct {
		query string
		want  []string
	}{
		{query: "_", want: []string{}},
		{query: "%", want: []string{ids[1]}},
		{query: "ABC", want: []string{ids[0]}},
		{query: `:\`, want: []string{ids[2]}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			found, err := repo.Search(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, found)
		})
	}
}
