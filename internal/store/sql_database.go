package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/migrations"
)

// DB wraps a *sql.DB together with everything the repositories need to
// talk to a particular backend: the driver name, the squirrel placeholder
// format and an error classificator.
type DB struct {
	*sql.DB
	driver             string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a connection using the driver named in cfg.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres, "":
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		log.Error().Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("unsupported database driver")
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Driver returns the database/sql driver name.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// classify reports whether err is worth retrying. Unknown backends are
// non-retryable.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
