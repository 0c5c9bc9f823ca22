package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "not a pg error", err: errors.New("plain"), want: nil},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: ErrDuplicateID},
		{
			name: "wrapped unique violation",
			err:  fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation}),
			want: ErrDuplicateID,
		},
		{name: "invalid text representation", err: &pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation}, want: ErrInvalidIdentifier},
		{name: "other code", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "not a sqlite error", err: errors.New("plain"), want: nil},
		{
			name: "primary key",
			err:  sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey},
			want: ErrDuplicateID,
		},
		{
			name: "unique",
			err:  sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
			want: ErrDuplicateID,
		},
		{
			name: "not null",
			err:  sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestDB_Classify(t *testing.T) {
	db := &DB{dialect: postgresDialect}

	err := db.classify(&pgconn.PgError{Code: pgerrcode.UniqueViolation}, ErrExecutingStatement)
	assert.ErrorIs(t, err, ErrDuplicateID)

	raw := errors.New("connection reset")
	err = db.classify(raw, ErrExecutingStatement)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.ErrorIs(t, err, raw)
}
