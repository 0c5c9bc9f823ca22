package store

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/migrations"
	"github.com/jmoiron/sqlx"
)

// dialect holds everything that differs between the SQL backends.
type dialect struct {
	driverName   string
	gooseDialect string
	placeholder  squirrel.PlaceholderFormat
	classifier   ErrorClassificator
}

var (
	postgresDialect = dialect{
		driverName:   "pgx",
		gooseDialect: migrations.DialectPostgres,
		placeholder:  squirrel.Dollar,
		classifier:   NewPostgresErrorClassifier(),
	}
	sqliteDialect = dialect{
		driverName:   "sqlite3",
		gooseDialect: migrations.DialectSQLite,
		placeholder:  squirrel.Question,
		classifier:   NewSQLiteErrorClassifier(),
	}
)

// DB is a SQL connection pool exposing the "User" and "Book" tables.
type DB struct {
	*sqlx.DB
	dialect dialect
	logger  *logger.Logger
}

func newConnectSQL(ctx context.Context, d dialect, dsn string, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sqlx.Open(d.driverName, dsn)
	if err != nil {
		log.Err(err).Str("func", "newConnectSQL").Str("driver", d.driverName).Msg("error occured during database connection")
		return nil, fmt.Errorf("%w: %w", ErrConnecting, err)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "newConnectSQL").Str("driver", d.driverName).Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrConnecting, err)
	}

	db := &DB{
		DB:      conn,
		dialect: d,
		logger:  log,
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "newConnectSQL").Msg("error applying migrations")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "newConnectSQL").Str("driver", d.driverName).Msg("connected to database successfully")

	return db, nil
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB.DB, db.dialect.gooseDialect)
}

// builder returns a squirrel statement builder using the dialect's
// placeholder format.
func (db *DB) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(db.dialect.placeholder)
}

// classify maps a driver error to a store sentinel when one applies and
// wraps it with fallback otherwise.
func (db *DB) classify(err error, fallback error) error {
	if db.dialect.classifier != nil {
		if classified := db.dialect.classifier.Classify(err); classified != nil {
			return classified
		}
	}
	return fmt.Errorf("%w: %w", fallback, err)
}

func (db *DB) Close(_ context.Context) error {
	return db.DB.Close()
}
