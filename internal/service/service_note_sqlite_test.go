// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/session"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

type sqliteFixture struct {
	notes NoteService
	repo  store.NoteRepository
	keys  *session.MemoryDataKeyStore
}

func newSQLiteFixture(t *testing.T, policy string) sqliteFixture {
	t.Helper()

	db, err := store.NewConnect(context.Background(), config.DB{
		DSN:    filepath.Join(t.TempDir(), "notes.db"),
		Driver: config.DriverSQLite,
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	ids := utils.NewUUIDGenerator()
	repos := store.NewRepositories(db, ids, logger.Nop())
	keys := session.NewMemoryDataKeyStore(0)

	cfg := config.StructuredConfig{Notes: config.Notes{DeletePolicy: policy}}
	services := NewServices(repos, keys, ids, cfg, logger.Nop())

	return sqliteFixture{notes: services.NoteService, repo: repos.NoteRepository, keys: keys}
}

func (f sqliteFixture) create(t *testing.T, parent string, note models.NewNote, sessionID string) models.CreatedNote {
	t.Helper()

	created, err := f.notes.CreateNewNote(testCtx(), parent, note, reqCtx(sessionID))
	require.NoError(t, err)
	return created
}

func (f sqliteFixture) children(t *testing.T, parent string) []models.NoteTree {
	t.Helper()

	var entries []models.NoteTree
	err := f.repo.RunInTransaction(testCtx(), func(ctx context.Context, tx store.NoteTx) error {
		var err error
		entries, err = tx.ActiveChildEntries(ctx, parent)
		return err
	})
	require.NoError(t, err)
	return entries
}

func TestSQLiteNotes_CreateThenRead(t *testing.T) {
	f := newSQLiteFixture(t, config.DeletePolicySoft)

	created := f.create(t, models.RootNoteID, models.NewNote{Title: "A", Text: "B"}, "s-1")

	detail, err := f.notes.GetNoteDetail(testCtx(), created.NoteID, "s-1")
	require.NoError(t, err)
	assert.Equal(t, "A", detail.Note.Title)
	assert.Equal(t, "B", detail.Note.Text)
	assert.False(t, detail.Note.IsProtected)
	assert.Empty(t, detail.Images)

	entries := f.children(t, models.RootNoteID)
	require.Len(t, entries, 1)
	assert.Equal(t, created.NoteTreeID, entries[0].NoteTreeID)
	assert.Equal(t, 0, entries[0].Position)
}

func TestSQLiteNotes_Placement(t *testing.T) {
	f := newSQLiteFixture(t, config.DeletePolicySoft)

	parent := f.create(t, models.RootNoteID, models.NewNote{Title: "parent"}, "s-1")
	first := f.create(t, parent.NoteID, models.NewNote{Title: "first"}, "s-1")
	last := f.create(t, parent.NoteID, models.NewNote{Title: "last"}, "s-1")
	middle := f.create(t, parent.NoteID, models.NewNote{
		Title: "middle", Target: models.TargetAfter, TargetNoteTreeID: first.NoteTreeID,
	}, "s-1")

	entries := f.children(t, parent.NoteID)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{first.NoteID, middle.NoteID, last.NoteID},
		[]string{entries[0].NoteID, entries[1].NoteID, entries[2].NoteID})
	assert.Equal(t, []int{0, 1, 2}, []int{entries[0].Position, entries[1].Position, entries[2].Position})
}

func TestSQLiteNotes_InvalidParentWritesNothing(t *testing.T) {
	f := newSQLiteFixture(t, config.DeletePolicySoft)

	other := f.create(t, models.RootNoteID, models.NewNote{Title: "other"}, "s-1")
	parent := f.create(t, models.RootNoteID, models.NewNote{Title: "parent"}, "s-1")

	_, err := f.notes.CreateNewNote(testCtx(), "does-not-exist", models.NewNote{Title: "x"}, reqCtx("s-1"))
	assert.ErrorIs(t, err, ErrInvalidParent)

	// sibling lives under root, not under parent
	_, err = f.notes.CreateNewNote(testCtx(), parent.NoteID, models.NewNote{
		Title: "x", Target: models.TargetAfter, TargetNoteTreeID: other.NoteTreeID,
	}, reqCtx("s-1"))
	assert.ErrorIs(t, err, ErrInvalidParent)

	ids, err := f.notes.Search(testCtx(), "")
	require.NoError(t, err)
	assert.Len(t, ids, 2)
	assert.Empty(t, f.children(t, parent.NoteID))
}

func TestSQLiteNotes_ProtectedRoundTrip(t *testing.T) {
	f := newSQLiteFixture(t, config.DeletePolicySoft)
	f.keys.Bind("s-1", testKey)

	created := f.create(t, models.RootNoteID, models.NewNote{Title: "bank", Text: "pin 1234", IsProtected: true}, "s-1")

	stored, err := f.repo.GetNote(testCtx(), created.NoteID)
	require.NoError(t, err)
	assert.True(t, stored.IsProtected)
	assert.NotEqual(t, "bank", stored.Title)
	assert.NotContains(t, stored.Text, "1234")

	detail, err := f.notes.GetNoteDetail(testCtx(), created.NoteID, "s-1")
	require.NoError(t, err)
	assert.Equal(t, "bank", detail.Note.Title)
	assert.Equal(t, "pin 1234", detail.Note.Text)

	_, err = f.notes.GetNoteDetail(testCtx(), created.NoteID, "s-other")
	assert.ErrorIs(t, err, ErrProtectedAccessDenied)

	unprotect := false
	require.NoError(t, f.notes.UpdateNote(testCtx(), created.NoteID, models.NoteUpdate{IsProtected: &unprotect}, reqCtx("s-1")))

	stored, err = f.repo.GetNote(testCtx(), created.NoteID)
	require.NoError(t, err)
	assert.False(t, stored.IsProtected)
	assert.Equal(t, "pin 1234", stored.Text)
	assert.Equal(t, testReqTime, stored.DateModified.UTC())
}

func TestSQLiteNotes_SearchDoesNotSeeProtectedPlaintext(t *testing.T) {
	f := newSQLiteFixture(t, config.DeletePolicySoft)
	f.keys.Bind("s-1", testKey)

	plain := f.create(t, models.RootNoteID, models.NewNote{Title: "shopping", Text: "buy milk"}, "s-1")
	f.create(t, models.RootNoteID, models.NewNote{Title: "diary", Text: "drank milk", IsProtected: true}, "s-1")

	ids, err := f.notes.Search(testCtx(), "milk")
	require.NoError(t, err)
	assert.Equal(t, []string{plain.NoteID}, ids)
}

func TestSQLiteNotes_SearchMissesNoteOnceProtected(t *testing.T) {
	f := newSQLiteFixture(t, config.DeletePolicySoft)
	f.keys.Bind("s-1", testKey)

	created := f.create(t, models.RootNoteID, models.NewNote{Title: "greeting", Text: "hello"}, "s-1")

	ids, err := f.notes.Search(testCtx(), "hello")
	require.NoError(t, err)
	assert.Equal(t, []string{created.NoteID}, ids)

	protect := true
	require.NoError(t, f.notes.UpdateNote(testCtx(), created.NoteID, models.NoteUpdate{IsProtected: &protect}, reqCtx("s-1")))

	ids, err = f.notes.Search(testCtx(), "hello")
	require.NoError(t, err)
	assert.Empty(t, ids)

	detail, err := f.notes.GetNoteDetail(testCtx(), created.NoteID, "s-1")
	require.NoError(t, err)
	assert.True(t, detail.Note.IsProtected)
	assert.Equal(t, "greeting", detail.Note.Title)
	assert.Equal(t, "hello", detail.Note.Text)
}

func TestSQLiteNotes_DeleteCascades(t *testing.T) {
	f := newSQLiteFixture(t, config.DeletePolicySoft)

	parent := f.create(t, models.RootNoteID, models.NewNote{Title: "parent"}, "s-1")
	child := f.create(t, parent.NoteID, models.NewNote{Title: "child"}, "s-1")
	_, err := f.notes.AttachImage(testCtx(), parent.NoteID, models.NewImage{
		Name: "a.png", Mime: "image/png", Data: []byte{1, 2},
	}, reqCtx("s-1"))
	require.NoError(t, err)

	require.NoError(t, f.notes.DeleteNote(testCtx(), parent.NoteTreeID, reqCtx("s-1")))

	_, err = f.notes.GetNoteDetail(testCtx(), parent.NoteID, "s-1")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.notes.GetNoteDetail(testCtx(), child.NoteID, "s-1")
	assert.ErrorIs(t, err, ErrNotFound)

	images, err := f.repo.GetImages(testCtx(), parent.NoteID)
	require.NoError(t, err)
	assert.Empty(t, images)

	assert.ErrorIs(t, f.notes.DeleteNote(testCtx(), parent.NoteTreeID, reqCtx("s-1")), ErrNotFound)
}

func TestSQLiteNotes_DeleteRetainKeepsRowsButHidesNote(t *testing.T) {
	f := newSQLiteFixture(t, config.DeletePolicyRetain)

	created := f.create(t, models.RootNoteID, models.NewNote{Title: "keep"}, "s-1")
	require.NoError(t, f.notes.DeleteNote(testCtx(), created.NoteTreeID, reqCtx("s-1")))

	stored, err := f.repo.GetNote(testCtx(), created.NoteID)
	require.NoError(t, err)
	assert.False(t, stored.IsDeleted)

	_, err = f.notes.GetNoteDetail(testCtx(), created.NoteID, "s-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteNotes_DeleteRetainHidesNoteFromSearch(t *testing.T) {
	f := newSQLiteFixture(t, config.DeletePolicyRetain)

	orphan := f.create(t, models.RootNoteID, models.NewNote{Title: "orphan"}, "s-1")
	kept := f.create(t, models.RootNoteID, models.NewNote{Title: "orphan too"}, "s-1")
	require.NoError(t, f.notes.DeleteNote(testCtx(), orphan.NoteTreeID, reqCtx("s-1")))

	ids, err := f.notes.Search(testCtx(), "orphan")
	require.NoError(t, err)
	assert.Equal(t, []string{kept.NoteID}, ids)

	_, err = f.notes.GetNoteDetail(testCtx(), orphan.NoteID, "s-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteNotes_SoftDeleteClosesEveryPlacement(t *testing.T) {
	f := newSQLiteFixture(t, config.DeletePolicySoft)

	parent := f.create(t, models.RootNoteID, models.NewNote{Title: "parent"}, "s-1")
	f.create(t, parent.NoteID, models.NewNote{Title: "child"}, "s-1")
	require.NoError(t, f.notes.DeleteNote(testCtx(), parent.NoteTreeID, reqCtx("s-1")))

	assert.Empty(t, f.children(t, models.RootNoteID))
	assert.Empty(t, f.children(t, parent.NoteID))

	ids, err := f.notes.Search(testCtx(), "")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestSQLiteNotes_AttachImagesInOrder(t *testing.T) {
	f := newSQLiteFixture(t, config.DeletePolicySoft)

	created := f.create(t, models.RootNoteID, models.NewNote{Title: "album"}, "s-1")
	for _, name := range []string{"one.png", "two.png"} {
		_, err := f.notes.AttachImage(testCtx(), created.NoteID, models.NewImage{
			Name: name, Mime: "image/png", Data: []byte(name),
		}, reqCtx("s-1"))
		require.NoError(t, err)
	}

	detail, err := f.notes.GetNoteDetail(testCtx(), created.NoteID, "s-1")
	require.NoError(t, err)
	require.Len(t, detail.Images, 2)
	assert.Equal(t, "one.png", detail.Images[0].Name)
	assert.Equal(t, 0, detail.Images[0].NoteOffset)
	assert.Equal(t, "two.png", detail.Images[1].Name)
	assert.Equal(t, 1, detail.Images[1].NoteOffset)
}
