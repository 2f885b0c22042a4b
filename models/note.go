package models

import "time"

// RootNoteID is the parent identifier of top-level placements. It is a
// sentinel, not a row in the notes table.
const RootNoteID = "root"

// Placement targets accepted by [NewNote.Target].
const (
	// TargetInto appends the new placement after the last child of the parent.
	TargetInto = "into"

	// TargetAfter puts the new placement right after TargetNoteTreeID and
	// shifts every later sibling by one.
	TargetAfter = "after"
)

// Note is the persisted representation of a single note.
//
// When IsProtected is true, Title and Text hold ciphertext produced by the
// field codec and must be decrypted before being handed to a caller. The
// flag and the encoding of both fields always agree: a note is never half
// encrypted.
type Note struct {
	// NoteID is the immutable identifier assigned on creation.
	NoteID string `json:"note_id"`

	// Title is the note title, plaintext or ciphertext (see IsProtected).
	Title string `json:"title"`

	// Text is the note body, plaintext or ciphertext (see IsProtected).
	Text string `json:"text"`

	// IsProtected marks Title and Text as stored encrypted.
	IsProtected bool `json:"is_protected"`

	// IsDeleted is the soft-delete marker. Deleted notes are never returned
	// to callers.
	IsDeleted bool `json:"-"`

	// DateCreated is set once by the mutation engine.
	DateCreated time.Time `json:"date_created"`

	// DateModified is updated by the mutation engine on every change.
	DateModified time.Time `json:"date_modified"`
}

// NoteTree is one placement of a note in the hierarchy. A note may have
// several placements (clones), each under its own parent.
type NoteTree struct {
	// NoteTreeID identifies the placement.
	NoteTreeID string `json:"note_tree_id"`

	// NoteID is the note this placement refers to.
	NoteID string `json:"note_id"`

	// ParentNoteID is the containing note or [RootNoteID].
	ParentNoteID string `json:"parent_note_id"`

	// Position orders siblings under the same parent.
	Position int `json:"note_position"`

	// IsExpanded is a presentation flag kept for tree views.
	IsExpanded bool `json:"is_expanded"`

	// IsDeleted is the soft-delete marker.
	IsDeleted bool `json:"-"`

	DateModified time.Time `json:"date_modified"`
}

// NoteFields is the set of columns rewritten by an update. Title and Text
// are already encoded according to IsProtected.
type NoteFields struct {
	Title        string
	Text         string
	IsProtected  bool
	DateModified time.Time
}

// NoteDetail is the read model returned for a single note: plaintext fields,
// ordered images and the server time of the read.
type NoteDetail struct {
	Note     Note      `json:"detail"`
	Images   []Image   `json:"images"`
	LoadTime time.Time `json:"load_time"`
}

// NewNote is the payload of a create request.
type NewNote struct {
	// Title and Text are always plaintext here.
	Title string `json:"title"`
	Text  string `json:"text"`

	// IsProtected asks for the fields to be stored encrypted. Requires a
	// session holding a data key.
	IsProtected bool `json:"is_protected"`

	// Target is [TargetInto] (default when empty) or [TargetAfter].
	Target string `json:"target,omitempty"`

	// TargetNoteTreeID is the sibling placement used by [TargetAfter].
	TargetNoteTreeID string `json:"target_note_tree_id,omitempty"`
}

// CreatedNote holds the identifiers generated by a create.
type CreatedNote struct {
	NoteID     string `json:"note_id"`
	NoteTreeID string `json:"note_tree_id"`
}

// NoteUpdate is a partial update of a note. Nil fields keep their current
// value. IsProtected flips the protection state when set.
type NoteUpdate struct {
	Title       *string `json:"title,omitempty"`
	Text        *string `json:"text,omitempty"`
	IsProtected *bool   `json:"is_protected,omitempty"`
}
