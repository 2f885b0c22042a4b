package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Dialects accepted by Migrate. They match the goose dialect names and the
// database/sql driver names used by the store package.
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies every pending migration for the given dialect.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, err := migrationsDir(dialect)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func migrationsDir(dialect string) (string, error) {
	switch dialect {
	case DialectPostgres:
		return "postgres", nil
	case DialectSQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported dialect %q", dialect)
	}
}
