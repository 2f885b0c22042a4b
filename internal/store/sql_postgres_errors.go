package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the repositories how to report a failed
// statement.
type ErrorClassification int

const (
	// NonRetryable is the default for anything not listed below.
	NonRetryable ErrorClassification = iota

	// Retryable failures are transient: lost connections, serialization
	// failures and deadlocks between concurrent cascades.
	Retryable

	// MissingReference means a notes_tree or images row pointed at a note
	// that does not exist. Reported as [ErrMissingReference].
	MissingReference

	// DuplicateKey means a generated id collided with an existing row.
	DuplicateKey
)

// PostgresErrorClassifier implements [ErrorClassificator] for pgx errors.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a PostgreSQL error code to an [ErrorClassification].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.ForeignKeyViolation:
		return MissingReference
	case pgerrcode.UniqueViolation:
		return DuplicateKey

	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.CannotConnectNow:
		return Retryable

	// a concurrent delete cascade holding the same note lock
	case pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.LockNotAvailable:
		return Retryable
	}

	return NonRetryable
}
