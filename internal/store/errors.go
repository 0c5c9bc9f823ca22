package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrInvalidIdentifier is returned when an identifier cannot be parsed
	// into the identifier type of the active backend (ObjectID for MongoDB,
	// UUID for SQL).
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrUserNotFound is returned when an identifier parses but no user
	// document matches it.
	ErrUserNotFound = errors.New("no user found with specified ID")

	// ErrDuplicateID is returned when an insert collides with an existing
	// primary key.
	ErrDuplicateID = errors.New("document with this identifier already exists")

	// ErrUnsupportedDSN is returned by [NewStorages] when the DSN scheme does
	// not select any known backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a driver-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when a squirrel builder fails to render
	// a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT, a MongoDB find or an
	// aggregation fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// (or their MongoDB counterparts) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrDecodingDocument is returned when a MongoDB document cannot be
	// decoded into its Go representation.
	ErrDecodingDocument = errors.New("failed to decode document")

	// ErrConnecting is returned when the database cannot be reached at
	// startup.
	ErrConnecting = errors.New("error connecting to database")
)
