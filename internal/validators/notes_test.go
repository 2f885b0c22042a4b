// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/models"
)

func ptr[T any](v T) *T { return &v }

func TestNewNoteValidator(t *testing.T) {
	require.NotNil(t, NewNoteValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, "n-1"))
	assert.NoError(t, v.Validate(ctx, models.NewNote{Title: "A"}))
	assert.NoError(t, v.Validate(ctx, &models.NewNote{Title: "A"}))
	assert.NoError(t, v.Validate(ctx, models.NoteUpdate{Title: ptr("A")}))
	assert.NoError(t, v.Validate(ctx, &models.NoteUpdate{Text: ptr("B")}))
	assert.NoError(t, v.Validate(ctx, models.NewImage{Mime: "image/png", Data: []byte{1}}))
	assert.NoError(t, v.Validate(ctx, &models.NewImage{Mime: "image/jpeg", Data: []byte{1}}))

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.Note{}), ErrUnsupportedType)
}

func TestValidate_ID(t *testing.T) {
	v := NewNoteValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), ""), ErrEmptyID)
	assert.ErrorIs(t, v.Validate(context.Background(), "   "), ErrEmptyID)
}

func TestValidate_NewNote(t *testing.T) {
	tests := []struct {
		name    string
		note    models.NewNote
		fields  []string
		wantErr error
	}{
		{name: "empty note is fine", note: models.NewNote{}},
		{name: "into", note: models.NewNote{Target: models.TargetInto}},
		{name: "after with sibling", note: models.NewNote{Target: models.TargetAfter, TargetNoteTreeID: "t-1"}},
		{name: "after without sibling", note: models.NewNote{Target: models.TargetAfter}, wantErr: ErrMissingTargetTreeID},
		{name: "sibling without after", note: models.NewNote{TargetNoteTreeID: "t-1"}, wantErr: ErrUnexpectedTargetTree},
		{name: "unknown target", note: models.NewNote{Target: "before"}, wantErr: ErrInvalidTarget},
		{name: "title too long", note: models.NewNote{Title: strings.Repeat("a", MaxTitleLength+1)}, wantErr: ErrTitleTooLong},
		{name: "title only scoped", note: models.NewNote{Target: "before"}, fields: []string{FieldTitle}},
		{name: "unknown field", note: models.NewNote{}, fields: []string{"color"}, wantErr: ErrUnknownField},
	}

	v := NewNoteValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.note, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_NoteUpdate(t *testing.T) {
	tests := []struct {
		name    string
		update  models.NoteUpdate
		wantErr error
	}{
		{name: "empty update", update: models.NoteUpdate{}, wantErr: ErrNoFieldsToUpdate},
		{name: "protection only", update: models.NoteUpdate{IsProtected: ptr(true)}},
		{name: "empty title is a valid change", update: models.NoteUpdate{Title: ptr("")}},
		{name: "title too long", update: models.NoteUpdate{Title: ptr(strings.Repeat("a", MaxTitleLength+1))}, wantErr: ErrTitleTooLong},
	}

	v := NewNoteValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.update)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_NewImage(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.NewImage{Mime: "image/png"}), ErrEmptyImageData)
	assert.ErrorIs(t, v.Validate(ctx, models.NewImage{Mime: "text/plain", Data: []byte{1}}), ErrInvalidMime)
	assert.ErrorIs(t, v.Validate(ctx, models.NewImage{Mime: "image/png", Data: make([]byte, MaxImageSize+1)}), ErrImageTooLarge)
}
