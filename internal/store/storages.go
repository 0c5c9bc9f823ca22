package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bookshelf/internal/config"
	"github.com/MKhiriev/go-bookshelf/internal/logger"
)

type backend int

const (
	backendMongo backend = iota + 1
	backendPostgres
	backendSQLite
)

func (b backend) String() string {
	switch b {
	case backendMongo:
		return "mongodb"
	case backendPostgres:
		return "postgres"
	case backendSQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

// Storages groups the repositories of the selected backend together with
// the handle that owns their connections.
type Storages struct {
	UserRepository UserRepository
	BookRepository BookRepository

	closer func(context.Context) error
}

// NewStorages connects to the database named by cfg.DB.DSN and builds the
// repositories on top of it. The scheme picks the backend:
//
//	mongodb://, mongodb+srv://  MongoDB
//	postgres://, postgresql://  PostgreSQL (pgx)
//	sqlite://, file:            SQLite
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	b, err := detectBackend(cfg.DB.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("cannot select storage backend")
		return nil, err
	}
	log.Info().Str("func", "NewStorages").Stringer("backend", b).Msg("connecting storage")

	switch b {
	case backendMongo:
		mongoDB, err := NewConnectMongo(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return &Storages{
			UserRepository: NewMongoUserRepository(mongoDB.users, log),
			BookRepository: NewMongoBookRepository(mongoDB.books, log),
			closer:         mongoDB.Close,
		}, nil

	case backendPostgres, backendSQLite:
		connect := NewConnectPostgres
		if b == backendSQLite {
			connect = NewConnectSQLite
		}

		db, err := connect(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return newSQLStorages(db, log), nil
	}

	return nil, ErrUnsupportedDSN
}

func newSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewSQLUserRepository(db, log),
		BookRepository: NewSQLBookRepository(db, log),
		closer:         db.Close,
	}
}

// Close releases the underlying connections.
func (s *Storages) Close(ctx context.Context) error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer(ctx)
}

func detectBackend(dsn string) (backend, error) {
	lower := strings.ToLower(dsn)
	switch {
	case strings.HasPrefix(lower, "mongodb://"), strings.HasPrefix(lower, "mongodb+srv://"):
		return backendMongo, nil
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return backendPostgres, nil
	case strings.HasPrefix(lower, sqliteScheme), strings.HasPrefix(lower, "file:"):
		return backendSQLite, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(dsn))
}

// redactDSN keeps only the scheme so credentials never reach the logs.
func redactDSN(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i+3] + "..."
	}
	if dsn == "" {
		return ""
	}
	return "..."
}
