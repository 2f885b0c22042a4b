package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets a bare identifier (note id, parent note id, note tree id).
	FieldID = "id"

	FieldTitle = "title"
	FieldText  = "text"

	// FieldTarget targets the placement target and its sibling reference.
	FieldTarget = "target"

	// FieldUpdate requires at least one non-nil field in a NoteUpdate.
	FieldUpdate = "update"

	FieldImageData = "image_data"
	FieldImageMime = "image_mime"
)

// Limits enforced on note payloads.
const (
	MaxTitleLength = 1 << 10
	MaxTextLength  = 10 << 20
	MaxImageSize   = 10 << 20
)

// NoteValidator validates note payloads before they reach the mutation
// engine. It checks shape only; existence of referenced rows is checked
// inside the unit of work.
type NoteValidator struct {
}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		return v.validateID(value)

	case models.NewNote:
		return v.validateNewNote(ctx, value, fields...)
	case *models.NewNote:
		return v.validateNewNote(ctx, *value, fields...)

	case models.NoteUpdate:
		return v.validateNoteUpdate(ctx, value, fields...)
	case *models.NoteUpdate:
		return v.validateNoteUpdate(ctx, *value, fields...)

	case models.NewImage:
		return v.validateNewImage(ctx, value, fields...)
	case *models.NewImage:
		return v.validateNewImage(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyID
	}
	return nil
}

func (v *NoteValidator) validateNewNote(ctx context.Context, note models.NewNote, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldText, FieldTarget}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if err := validateTitle(note.Title); err != nil {
				return err
			}
		case FieldText:
			if err := validateText(note.Text); err != nil {
				return err
			}
		case FieldTarget:
			if err := validateTarget(note.Target, note.TargetNoteTreeID); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *NoteValidator) validateNoteUpdate(ctx context.Context, update models.NoteUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUpdate, FieldTitle, FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldUpdate:
			if update.Title == nil && update.Text == nil && update.IsProtected == nil {
				return ErrNoFieldsToUpdate
			}
		case FieldTitle:
			if update.Title != nil {
				if err := validateTitle(*update.Title); err != nil {
					return err
				}
			}
		case FieldText:
			if update.Text != nil {
				if err := validateText(*update.Text); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *NoteValidator) validateNewImage(ctx context.Context, image models.NewImage, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldImageData, FieldImageMime}
	}

	for _, f := range fields {
		switch f {
		case FieldImageData:
			if len(image.Data) == 0 {
				return ErrEmptyImageData
			}
			if len(image.Data) > MaxImageSize {
				return ErrImageTooLarge
			}
		case FieldImageMime:
			if !strings.HasPrefix(image.Mime, "image/") {
				return ErrInvalidMime
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func validateTitle(title string) error {
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func validateText(text string) error {
	if len(text) > MaxTextLength {
		return ErrTextTooLong
	}
	return nil
}

func validateTarget(target, targetNoteTreeID string) error {
	switch target {
	case "", models.TargetInto:
		if targetNoteTreeID != "" {
			return ErrUnexpectedTargetTree
		}
	case models.TargetAfter:
		if strings.TrimSpace(targetNoteTreeID) == "" {
			return ErrMissingTargetTreeID
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTarget, target)
	}
	return nil
}
