package store

import (
	"errors"
	"fmt"
)

// ErrStorage is the root of every backend failure returned by this package.
// A unit of work that fails with it has been rolled back.
var ErrStorage = errors.New("storage error")

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoteNotFound is returned when no row in notes matches the requested
	// note_id. Soft-deleted notes are still found; callers check IsDeleted.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrNoteTreeNotFound is returned when no active placement matches the
	// requested note_tree_id.
	ErrNoteTreeNotFound = errors.New("note tree entry was not found")

	// ErrMissingReference is returned when a placement or image refers to a
	// note row that does not exist.
	ErrMissingReference = errors.New("referenced note does not exist")

	// ErrNothingInserted is returned when an INSERT completes without error
	// but affects no rows.
	ErrNothingInserted = fmt.Errorf("%w: row was not saved", ErrStorage)
)

// Low-level database operation errors. All of them wrap [ErrStorage].
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = fmt.Errorf("%w: error building sql query", ErrStorage)

	// ErrExecutingQuery is returned when executing a query or statement
	// against the database fails.
	ErrExecutingQuery = fmt.Errorf("%w: error executing sql query", ErrStorage)

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = fmt.Errorf("%w: failed to begin transaction", ErrStorage)

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = fmt.Errorf("%w: failed to commit transaction", ErrStorage)

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = fmt.Errorf("%w: failed to scan row", ErrStorage)

	// ErrScanningRows is returned when multi-row iteration fails mid-result-set.
	ErrScanningRows = fmt.Errorf("%w: failed to scan rows", ErrStorage)

	// ErrDuplicateID is returned when an inserted id already exists.
	ErrDuplicateID = fmt.Errorf("%w: duplicate id", ErrStorage)

	// ErrUnsupportedDriver is returned by NewConnect for unknown drivers.
	ErrUnsupportedDriver = fmt.Errorf("%w: unsupported database driver", ErrStorage)
)
