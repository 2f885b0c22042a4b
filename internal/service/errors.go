package service

import "errors"

// Precondition failures. They are returned before or instead of any write
// and are never retried by this package.
var (
	// ErrNotFound is returned when the note, placement or image owner does not
	// exist, is soft-deleted or has no active placement left.
	ErrNotFound = errors.New("note not found")

	// ErrInvalidParent is returned when a create targets a parent without an
	// active placement, or an "after" sibling that is not an active child of
	// that parent.
	ErrInvalidParent = errors.New("invalid parent note")

	// ErrProtectedAccessDenied is returned when protected content is read or
	// written by a session that holds no data key.
	ErrProtectedAccessDenied = errors.New("protected note access denied")

	// ErrInvalidDataProvided is returned by the validation wrapper.
	ErrInvalidDataProvided = errors.New("invalid data provided")
)
