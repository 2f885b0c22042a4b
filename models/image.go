package models

import "time"

// Image is a binary attachment owned by a note. Images of one note are
// ordered by NoteOffset.
type Image struct {
	ImageID    string `json:"image_id"`
	NoteID     string `json:"note_id"`
	NoteOffset int    `json:"note_offset"`

	// Name is the original file name, Mime its media type.
	Name string `json:"name"`
	Mime string `json:"mime"`

	// Data is the raw payload. Encoded as base64 in JSON.
	Data []byte `json:"data"`

	IsDeleted    bool      `json:"-"`
	DateCreated  time.Time `json:"date_created"`
	DateModified time.Time `json:"date_modified"`
}

// NewImage is the payload of an attach request.
type NewImage struct {
	Name string `json:"name"`
	Mime string `json:"mime"`
	Data []byte `json:"data"`
}
