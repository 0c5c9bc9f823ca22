package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "0190c8f4-3c5e-7b3a-9c1d-2f4e5a6b7c8d"

func newTestSQLDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = raw.Close() })

	return &DB{
		DB:      sqlx.NewDb(raw, "sqlmock"),
		dialect: postgresDialect,
		logger:  logger.Nop(),
	}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userRowColumns = []string{"id", "name", "email", "password", "location", "title", "user_id"}

func TestSQLUserRepository_CreateUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newTestSQLDB(t)
		repo := NewSQLUserRepository(db, logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "User" (id,name,email,password,location,title,user_id) VALUES ($1,$2,$3,$4,$5,$6,$7)`)).
			WithArgs(sqlmock.AnyArg(), "Jane Doe", "jane@x.com", "hash", "NY", "Eng", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		created, err := repo.CreateUser(context.Background(), models.User{
			Name: "Jane Doe", Email: "jane@x.com", Password: "hash", Location: "NY", Title: "Eng",
		})
		require.NoError(t, err)

		parsed, err := uuid.Parse(created.ID)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())
		assert.Equal(t, created.ID, created.UserID)
		assert.Equal(t, "Jane Doe", created.Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation", func(t *testing.T) {
		db, mock := newTestSQLDB(t)
		repo := NewSQLUserRepository(db, logger.Nop())

		mock.ExpectExec(`INSERT INTO "User"`).
			WillReturnError(pgError(pgerrcode.UniqueViolation))

		_, err := repo.CreateUser(context.Background(), models.User{Name: "Jane Doe"})
		assert.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("unexpected error", func(t *testing.T) {
		db, mock := newTestSQLDB(t)
		repo := NewSQLUserRepository(db, logger.Nop())

		mock.ExpectExec(`INSERT INTO "User"`).
			WillReturnError(errors.New("db network error"))

		_, err := repo.CreateUser(context.Background(), models.User{Name: "Jane Doe"})
		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.Contains(t, err.Error(), "db network error")
	})
}

func TestSQLUserRepository_GetUserByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newTestSQLDB(t)
		repo := NewSQLUserRepository(db, logger.Nop())

		rows := sqlmock.NewRows(userRowColumns).
			AddRow(testUserID, "Jane Doe", "jane@x.com", "hash", "NY", "Eng", testUserID)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, password, location, title, user_id FROM "User" WHERE id = $1`)).
			WithArgs(testUserID).
			WillReturnRows(rows)

		user, err := repo.GetUserByID(context.Background(), testUserID)
		require.NoError(t, err)
		assert.Equal(t, models.User{
			ID: testUserID, Name: "Jane Doe", Email: "jane@x.com", Password: "hash",
			Location: "NY", Title: "Eng", UserID: testUserID,
		}, user)
	})

	t.Run("null user_id", func(t *testing.T) {
		db, mock := newTestSQLDB(t)
		repo := NewSQLUserRepository(db, logger.Nop())

		rows := sqlmock.NewRows(userRowColumns).
			AddRow(testUserID, "Jane Doe", "jane@x.com", "hash", "NY", "Eng", nil)
		mock.ExpectQuery(`SELECT (.+) FROM "User"`).WillReturnRows(rows)

		user, err := repo.GetUserByID(context.Background(), testUserID)
		require.NoError(t, err)
		assert.Empty(t, user.UserID)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestSQLDB(t)
		repo := NewSQLUserRepository(db, logger.Nop())

		mock.ExpectQuery(`SELECT (.+) FROM "User"`).
			WillReturnRows(sqlmock.NewRows(userRowColumns))

		_, err := repo.GetUserByID(context.Background(), testUserID)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("invalid id skips the database", func(t *testing.T) {
		db, mock := newTestSQLDB(t)
		repo := NewSQLUserRepository(db, logger.Nop())

		_, err := repo.GetUserByID(context.Background(), "65f1c0a2b3d4e5f60718293a")
		assert.ErrorIs(t, err, ErrInvalidIdentifier)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newTestSQLDB(t)
		repo := NewSQLUserRepository(db, logger.Nop())

		mock.ExpectQuery(`SELECT (.+) FROM "User"`).WillReturnError(sql.ErrConnDone)

		_, err := repo.GetUserByID(context.Background(), testUserID)
		assert.ErrorIs(t, err, ErrExecutingQuery)
		assert.ErrorIs(t, err, sql.ErrConnDone)
	})
}

func TestSQLUserRepository_UpdateUser(t *testing.T) {
	t.Run("matched without password", func(t *testing.T) {
		db, mock := newTestSQLDB(t)
		repo := NewSQLUserRepository(db, logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "User" SET name = $1, email = $2, location = $3, title = $4 WHERE id = $5`)).
			WithArgs("Jane Doe", "jane@x.com", "LA", "Eng", testUserID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		res, err := repo.UpdateUser(context.Background(), testUserID, models.User{
			Name: "Jane Doe", Email: "jane@x.com", Location: "LA", Title: "Eng",
		})
		require.NoError(t, err)
		assert.Equal(t, models.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, res)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("with password", func(t *testing.T) {
		db, mock := newTestSQLDB(t)
		repo := NewSQLUserRepository(db, logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "User" SET name = $1, email = $2, location = $3, title = $4, password = $5 WHERE id = $6`)).
			WithArgs("Jane Doe", "jane@x.com", "LA", "Eng", "new-hash", testUserID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		_, err := repo.UpdateUser(context.Background(), testUserID, models.User{
			Name: "Jane Doe", Email: "jane@x.com", Location: "LA", Title: "Eng", Password: "new-hash",
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero matched", func(t *testing.T) {
		db, mock := newTestSQLDB(t)
		repo := NewSQLUserRepository(db, logger.Nop())

		mock.ExpectExec(`UPDATE "User"`).WillReturnResult(sqlmock.NewResult(0, 0))

		res, err := repo.UpdateUser(context.Background(), testUserID, models.User{Name: "Jane Doe"})
		require.NoError(t, err)
		assert.Zero(t, res.MatchedCount)
	})

	t.Run("rows affected error", func(t *testing.T) {
		db, mock := newTestSQLDB(t)
		repo := NewSQLUserRepository(db, logger.Nop())

		mock.ExpectExec(`UPDATE "User"`).
			WillReturnResult(sqlmock.NewErrorResult(errors.New("not supported")))

		_, err := repo.UpdateUser(context.Background(), testUserID, models.User{})
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})

	t.Run("invalid id", func(t *testing.T) {
		db, _ := newTestSQLDB(t)
		repo := NewSQLUserRepository(db, logger.Nop())

		_, err := repo.UpdateUser(context.Background(), "42", models.User{})
		assert.ErrorIs(t, err, ErrInvalidIdentifier)
	})
}

func TestSQLUserRepository_DeleteUser(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		db, mock := newTestSQLDB(t)
		repo := NewSQLUserRepository(db, logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "User" WHERE id = $1`)).
			WithArgs(testUserID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		res, err := repo.DeleteUser(context.Background(), testUserID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.DeletedCount)
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newTestSQLDB(t)
		repo := NewSQLUserRepository(db, logger.Nop())

		mock.ExpectExec(`DELETE FROM "User"`).WillReturnResult(sqlmock.NewResult(0, 0))

		res, err := repo.DeleteUser(context.Background(), testUserID)
		require.NoError(t, err)
		assert.Zero(t, res.DeletedCount)
	})

	t.Run("exec error", func(t *testing.T) {
		db, mock := newTestSQLDB(t)
		repo := NewSQLUserRepository(db, logger.Nop())

		mock.ExpectExec(`DELETE FROM "User"`).WillReturnError(errors.New("boom"))

		_, err := repo.DeleteUser(context.Background(), testUserID)
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})
}

func TestSQLUserRepository_ListUsers(t *testing.T) {
	t.Run("rows", func(t *testing.T) {
		db, mock := newTestSQLDB(t)
		repo := NewSQLUserRepository(db, logger.Nop())

		rows := sqlmock.NewRows(userRowColumns).
			AddRow(testUserID, "Jane Doe", "jane@x.com", "h1", "NY", "Eng", testUserID).
			AddRow(uuid.NewString(), "John Roe", "john@x.com", "h2", "LA", "Ops", nil)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, password, location, title, user_id FROM "User"`)).
			WillReturnRows(rows)

		users, err := repo.ListUsers(context.Background())
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "Jane Doe", users[0].Name)
		assert.Equal(t, "John Roe", users[1].Name)
	})

	t.Run("empty table", func(t *testing.T) {
		db, mock := newTestSQLDB(t)
		repo := NewSQLUserRepository(db, logger.Nop())

		mock.ExpectQuery(`SELECT (.+) FROM "User"`).WillReturnRows(sqlmock.NewRows(userRowColumns))

		users, err := repo.ListUsers(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newTestSQLDB(t)
		repo := NewSQLUserRepository(db, logger.Nop())

		mock.ExpectQuery(`SELECT (.+) FROM "User"`).WillReturnError(errors.New("boom"))

		_, err := repo.ListUsers(context.Background())
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}
