package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/session"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

type noteService struct {
	noteRepository store.NoteRepository
	dataKeys       session.DataKeyStore
	codec          crypto.FieldCodec
	ids            store.IDGenerator

	deletePolicy string
	now          func() time.Time

	logger *logger.Logger
}

// NoteServiceOption configures the note service.
type NoteServiceOption func(*noteService)

// WithNow replaces time.Now as the fallback time source for mutations that
// carry no request time.
func WithNow(now func() time.Time) NoteServiceOption {
	return func(s *noteService) {
		s.now = now
	}
}

func NewNoteService(noteRepository store.NoteRepository, dataKeys session.DataKeyStore, codec crypto.FieldCodec,
	ids store.IDGenerator, cfg config.Notes, logger *logger.Logger, opts ...NoteServiceOption) NoteService {
	s := &noteService{
		noteRepository: noteRepository,
		dataKeys:       dataKeys,
		codec:          codec,
		ids:            ids,
		deletePolicy:   cfg.DeletePolicy,
		now:            time.Now,
		logger:         logger,
	}
	if s.deletePolicy == "" {
		s.deletePolicy = config.DeletePolicySoft
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *noteService) GetNoteDetail(ctx context.Context, noteID, sessionID string) (models.NoteDetail, error) {
	log := logger.FromContext(ctx).WithNote(noteID)

	var detail models.NoteDetail
	err := s.noteRepository.RunInTransaction(ctx, func(ctx context.Context, tx store.NoteTx) error {
		note, err := s.reachableNote(ctx, tx, noteID)
		if err != nil {
			return err
		}

		if note.IsProtected {
			key, ok := s.dataKeys.GetDataKey(sessionID)
			if !ok {
				return fmt.Errorf("%w: note %s", ErrProtectedAccessDenied, noteID)
			}
			note.Title, note.Text, err = s.decryptFields(key, noteID, note.Title, note.Text)
			if err != nil {
				return err
			}
		}

		images, err := tx.GetImages(ctx, noteID)
		if err != nil {
			return err
		}

		detail = models.NoteDetail{
			Note:     note,
			Images:   images,
			LoadTime: s.now(),
		}
		return nil
	})
	if err != nil {
		s.logFailure(log, err, "noteService.GetNoteDetail", "error loading note")
		return models.NoteDetail{}, err
	}

	return detail, nil
}

func (s *noteService) CreateNewNote(ctx context.Context, parentNoteID string, newNote models.NewNote, reqCtx models.RequestContext) (models.CreatedNote, error) {
	noteID := s.ids.Generate()
	log := logger.FromContext(ctx).WithNote(noteID)
	at := reqCtx.At(s.now())

	var created models.CreatedNote
	err := s.noteRepository.RunInTransaction(ctx, func(ctx context.Context, tx store.NoteTx) error {
		if err := s.checkParent(ctx, tx, parentNoteID); err != nil {
			return err
		}

		title, text := newNote.Title, newNote.Text
		if newNote.IsProtected {
			key, ok := s.dataKeys.GetDataKey(reqCtx.SessionID)
			if !ok {
				return fmt.Errorf("%w: cannot create protected note without a data key", ErrProtectedAccessDenied)
			}
			var err error
			title, text, err = s.encryptFields(key, noteID, title, text)
			if err != nil {
				return err
			}
		}

		position, err := s.placement(ctx, tx, parentNoteID, newNote, at)
		if err != nil {
			return err
		}

		if _, err = tx.InsertNote(ctx, &models.Note{
			NoteID:       noteID,
			Title:        title,
			Text:         text,
			IsProtected:  newNote.IsProtected,
			DateCreated:  at,
			DateModified: at,
		}); err != nil {
			return err
		}

		noteTreeID, err := tx.InsertTreeEntry(ctx, &models.NoteTree{
			NoteID:       noteID,
			ParentNoteID: parentNoteID,
			Position:     position,
			DateModified: at,
		})
		if err != nil {
			return err
		}

		created = models.CreatedNote{NoteID: noteID, NoteTreeID: noteTreeID}
		return nil
	})
	if err != nil {
		s.logFailure(log, err, "noteService.CreateNewNote", "error creating note")
		return models.CreatedNote{}, err
	}

	log.Info().Str("note_tree_id", created.NoteTreeID).Str("parent_note_id", parentNoteID).Msg("note created")
	return created, nil
}

func (s *noteService) UpdateNote(ctx context.Context, noteID string, update models.NoteUpdate, reqCtx models.RequestContext) error {
	log := logger.FromContext(ctx).WithNote(noteID)
	at := reqCtx.At(s.now())

	err := s.noteRepository.RunInTransaction(ctx, func(ctx context.Context, tx store.NoteTx) error {
		current, err := s.reachableNote(ctx, tx, noteID)
		if err != nil {
			return err
		}

		protect := current.IsProtected
		if update.IsProtected != nil {
			protect = *update.IsProtected
		}

		var key []byte
		if current.IsProtected || protect {
			var ok bool
			key, ok = s.dataKeys.GetDataKey(reqCtx.SessionID)
			if !ok {
				return fmt.Errorf("%w: note %s", ErrProtectedAccessDenied, noteID)
			}
		}

		title, text := current.Title, current.Text
		if current.IsProtected {
			if title, text, err = s.decryptFields(key, noteID, title, text); err != nil {
				return err
			}
		}
		if update.Title != nil {
			title = *update.Title
		}
		if update.Text != nil {
			text = *update.Text
		}
		if protect {
			if title, text, err = s.encryptFields(key, noteID, title, text); err != nil {
				return err
			}
		}

		return tx.UpdateNote(ctx, noteID, models.NoteFields{
			Title:        title,
			Text:         text,
			IsProtected:  protect,
			DateModified: at,
		})
	})
	if errors.Is(err, store.ErrNoteNotFound) {
		err = fmt.Errorf("%w: note %s", ErrNotFound, noteID)
	}
	if err != nil {
		s.logFailure(log, err, "noteService.UpdateNote", "error updating note")
		return err
	}

	log.Info().Msg("note updated")
	return nil
}

func (s *noteService) DeleteNote(ctx context.Context, noteTreeID string, reqCtx models.RequestContext) error {
	log := &logger.Logger{Logger: logger.FromContext(ctx).With().Str("note_tree_id", noteTreeID).Logger()}
	at := reqCtx.At(s.now())

	err := s.noteRepository.RunInTransaction(ctx, func(ctx context.Context, tx store.NoteTx) error {
		entry, err := tx.GetTreeEntry(ctx, noteTreeID)
		if errors.Is(err, store.ErrNoteTreeNotFound) || (err == nil && entry.IsDeleted) {
			return fmt.Errorf("%w: note tree entry %s", ErrNotFound, noteTreeID)
		}
		if err != nil {
			return err
		}

		return s.deletePlacement(ctx, tx, entry, at)
	})
	if err != nil {
		s.logFailure(log, err, "noteService.DeleteNote", "error deleting note placement")
		return err
	}

	log.Info().Msg("note placement deleted")
	return nil
}

func (s *noteService) Search(ctx context.Context, query string) ([]string, error) {
	ids, err := s.noteRepository.Search(ctx, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "noteService.Search").Msg("error searching notes")
		return nil, err
	}
	return ids, nil
}

func (s *noteService) AttachImage(ctx context.Context, noteID string, image models.NewImage, reqCtx models.RequestContext) (string, error) {
	log := logger.FromContext(ctx).WithNote(noteID)
	at := reqCtx.At(s.now())

	var imageID string
	err := s.noteRepository.RunInTransaction(ctx, func(ctx context.Context, tx store.NoteTx) error {
		if _, err := s.reachableNote(ctx, tx, noteID); err != nil {
			return err
		}

		offset, err := tx.MaxImageOffset(ctx, noteID)
		if err != nil {
			return err
		}

		imageID, err = tx.InsertImage(ctx, &models.Image{
			NoteID:       noteID,
			NoteOffset:   offset + 1,
			Name:         image.Name,
			Mime:         image.Mime,
			Data:         image.Data,
			DateCreated:  at,
			DateModified: at,
		})
		if errors.Is(err, store.ErrMissingReference) {
			return fmt.Errorf("%w: note %s", ErrNotFound, noteID)
		}
		return err
	})
	if err != nil {
		s.logFailure(log, err, "noteService.AttachImage", "error attaching image")
		return "", err
	}

	log.Info().Str("image_id", imageID).Msg("image attached")
	return imageID, nil
}

// reachableNote loads a note that is neither soft-deleted nor orphaned.
func (s *noteService) reachableNote(ctx context.Context, tx store.NoteTx, noteID string) (models.Note, error) {
	note, err := tx.GetNote(ctx, noteID)
	if errors.Is(err, store.ErrNoteNotFound) || (err == nil && note.IsDeleted) {
		return models.Note{}, fmt.Errorf("%w: note %s", ErrNotFound, noteID)
	}
	if err != nil {
		return models.Note{}, err
	}

	placements, err := tx.CountActivePlacements(ctx, noteID)
	if err != nil {
		return models.Note{}, err
	}
	if placements == 0 {
		return models.Note{}, fmt.Errorf("%w: note %s has no active placement", ErrNotFound, noteID)
	}

	return note, nil
}

func (s *noteService) checkParent(ctx context.Context, tx store.NoteTx, parentNoteID string) error {
	if parentNoteID == models.RootNoteID {
		return nil
	}

	if _, err := s.reachableNote(ctx, tx, parentNoteID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrInvalidParent, parentNoteID)
		}
		return err
	}
	return nil
}

// placement resolves the position of a new child under parentNoteID and
// makes room for it when the note goes after an existing sibling.
func (s *noteService) placement(ctx context.Context, tx store.NoteTx, parentNoteID string, newNote models.NewNote, at time.Time) (int, error) {
	if newNote.Target != models.TargetAfter {
		maxPosition, err := tx.MaxChildPosition(ctx, parentNoteID)
		if err != nil {
			return 0, err
		}
		return maxPosition + 1, nil
	}

	sibling, err := tx.GetTreeEntry(ctx, newNote.TargetNoteTreeID)
	if errors.Is(err, store.ErrNoteTreeNotFound) {
		return 0, fmt.Errorf("%w: sibling %s does not exist", ErrInvalidParent, newNote.TargetNoteTreeID)
	}
	if err != nil {
		return 0, err
	}
	if sibling.IsDeleted || sibling.ParentNoteID != parentNoteID {
		return 0, fmt.Errorf("%w: %s is not an active child of %s", ErrInvalidParent, newNote.TargetNoteTreeID, parentNoteID)
	}

	if err = tx.ShiftChildPositions(ctx, parentNoteID, sibling.Position, at); err != nil {
		return 0, err
	}
	return sibling.Position + 1, nil
}

// deletePlacement soft-deletes entry. When it was the last active placement
// of its note the note, its images and all placements beneath it follow,
// unless the retain policy is configured. The note row stays locked until
// the transaction ends, so two deletes of its last two placements cannot
// both see the other one as active.
func (s *noteService) deletePlacement(ctx context.Context, tx store.NoteTx, entry models.NoteTree, at time.Time) error {
	if err := tx.LockNote(ctx, entry.NoteID); err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return fmt.Errorf("%w: note %s", ErrNotFound, entry.NoteID)
		}
		return err
	}

	if err := tx.MarkTreeEntryDeleted(ctx, entry.NoteTreeID, at); err != nil {
		if errors.Is(err, store.ErrNoteTreeNotFound) {
			return fmt.Errorf("%w: note tree entry %s", ErrNotFound, entry.NoteTreeID)
		}
		return err
	}

	remaining, err := tx.CountActivePlacements(ctx, entry.NoteID)
	if err != nil {
		return err
	}
	if remaining > 0 {
		return nil
	}

	log := logger.FromContext(ctx).WithNote(entry.NoteID)
	if s.deletePolicy == config.DeletePolicyRetain {
		log.Debug().Msg("last placement deleted, note retained")
		return nil
	}

	if err = tx.MarkNoteDeleted(ctx, entry.NoteID, at); err != nil {
		return err
	}
	// a deleted note keeps no active placement
	if _, err = tx.MarkTreeEntriesDeleted(ctx, entry.NoteID, at); err != nil {
		return err
	}
	images, err := tx.MarkImagesDeleted(ctx, entry.NoteID, at)
	if err != nil {
		return err
	}

	children, err := tx.ActiveChildEntries(ctx, entry.NoteID)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err = s.deletePlacement(ctx, tx, child, at); err != nil {
			return err
		}
	}

	log.Debug().Int64("images", images).Int("children", len(children)).Msg("note soft-deleted")
	return nil
}

func (s *noteService) encryptFields(key []byte, noteID, title, text string) (string, string, error) {
	encTitle, err := s.codec.EncryptString(key, s.codec.DeriveIV(noteID, crypto.TitleField), title)
	if err != nil {
		return "", "", err
	}
	encText, err := s.codec.EncryptString(key, s.codec.DeriveIV(noteID, crypto.TextField), text)
	if err != nil {
		return "", "", err
	}
	return encTitle, encText, nil
}

func (s *noteService) decryptFields(key []byte, noteID, title, text string) (string, string, error) {
	plainTitle, err := s.codec.DecryptString(key, s.codec.DeriveIV(noteID, crypto.TitleField), title)
	if err != nil {
		return "", "", err
	}
	plainText, err := s.codec.DecryptString(key, s.codec.DeriveIV(noteID, crypto.TextField), text)
	if err != nil {
		return "", "", err
	}
	return plainTitle, plainText, nil
}

// logFailure logs precondition failures at debug and everything else at
// error level.
func (s *noteService) logFailure(log *logger.Logger, err error, fn, msg string) {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidParent), errors.Is(err, ErrProtectedAccessDenied):
		log.Debug().Err(err).Str("func", fn).Msg(msg)
	default:
		log.Err(err).Str("func", fn).Msg(msg)
	}
}
