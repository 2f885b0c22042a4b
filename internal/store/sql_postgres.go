package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open(config.DriverPostgres, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return newDB(conn, config.DriverPostgres, log), nil
}

// newDB builds a *DB around an open connection. The placeholder format and
// the error classificator follow the driver.
func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	db := &DB{
		DB:     conn,
		driver: driver,
		logger: log,
	}

	switch driver {
	case config.DriverSQLite:
		db.placeholder = sq.Question
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.placeholder = sq.Dollar
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
