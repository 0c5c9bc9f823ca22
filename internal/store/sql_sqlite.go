package store

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-bookshelf/internal/config"
	"github.com/MKhiriev/go-bookshelf/internal/logger"
	_ "github.com/mattn/go-sqlite3"
)

const sqliteScheme = "sqlite://"

// NewConnectSQLite opens the database file named by cfg.DSN. Both
// "sqlite://path/to/file.db" and "file:path/to/file.db?..." forms are
// accepted; the file is created when missing.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := strings.TrimPrefix(cfg.DSN, sqliteScheme)

	db, err := newConnectSQL(ctx, sqliteDialect, dsn, log)
	if err != nil {
		return nil, err
	}

	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	return db, nil
}
