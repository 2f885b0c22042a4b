package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) GetNoteDetail(ctx context.Context, noteID, sessionID string) (models.NoteDetail, error) {
	if err := v.validator.Validate(ctx, noteID, validators.FieldID); err != nil {
		return models.NoteDetail{}, fmt.Errorf("%w: note id: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.GetNoteDetail(ctx, noteID, sessionID)
}

func (v *NoteValidationService) CreateNewNote(ctx context.Context, parentNoteID string, note models.NewNote, reqCtx models.RequestContext) (models.CreatedNote, error) {
	if err := v.validator.Validate(ctx, parentNoteID, validators.FieldID); err != nil {
		return models.CreatedNote{}, fmt.Errorf("%w: parent note id: %w", ErrInvalidDataProvided, err)
	}
	if err := v.validator.Validate(ctx, note); err != nil {
		return models.CreatedNote{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	// "into" is the default placement
	if note.Target == "" {
		note.Target = models.TargetInto
	}

	return v.inner.CreateNewNote(ctx, parentNoteID, note, reqCtx)
}

func (v *NoteValidationService) UpdateNote(ctx context.Context, noteID string, update models.NoteUpdate, reqCtx models.RequestContext) error {
	if err := v.validator.Validate(ctx, noteID, validators.FieldID); err != nil {
		return fmt.Errorf("%w: note id: %w", ErrInvalidDataProvided, err)
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateNote(ctx, noteID, update, reqCtx)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, noteTreeID string, reqCtx models.RequestContext) error {
	if err := v.validator.Validate(ctx, noteTreeID, validators.FieldID); err != nil {
		return fmt.Errorf("%w: note tree id: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DeleteNote(ctx, noteTreeID, reqCtx)
}

func (v *NoteValidationService) Search(ctx context.Context, query string) ([]string, error) {
	return v.inner.Search(ctx, query)
}

func (v *NoteValidationService) AttachImage(ctx context.Context, noteID string, image models.NewImage, reqCtx models.RequestContext) (string, error) {
	if err := v.validator.Validate(ctx, noteID, validators.FieldID); err != nil {
		return "", fmt.Errorf("%w: note id: %w", ErrInvalidDataProvided, err)
	}
	if err := v.validator.Validate(ctx, image); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.AttachImage(ctx, noteID, image, reqCtx)
}

func (v *NoteValidationService) Wrap(wrapper NoteService) NoteService {
	v.inner = wrapper
	return v
}
