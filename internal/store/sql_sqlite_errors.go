package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3
// errors. Foreign keys are enforced through the _foreign_keys DSN option.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintForeignKey:
		return MissingReference
	case sqlite3.ErrConstraintPrimaryKey, sqlite3.ErrConstraintUnique:
		return DuplicateKey
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}

	return NonRetryable
}
