package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/internal/utils"
	"github.com/MKhiriev/go-bookshelf/models"
	"github.com/google/uuid"
)

// sqlUserRepository is the SQL-backed implementation of [UserRepository]
// working on the "User" table. Identifiers are UUIDv7 strings.
type sqlUserRepository struct {
	db     *DB
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

func NewSQLUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating sql user repository")
	return &sqlUserRepository{
		db:     db,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

func (r *sqlUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	id := r.ids.Generate()
	row := userRow{
		ID:       id,
		Name:     user.Name,
		Email:    user.Email,
		Password: user.Password,
		Location: user.Location,
		Title:    user.Title,
		UserID:   sql.NullString{String: id, Valid: true},
	}

	query, args, err := buildInsertUserQuery(r.db.builder(), row)
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.db.classify(err, ErrExecutingStatement)
	}

	return row.toModel(), nil
}

func (r *sqlUserRepository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := parseUUID(id); err != nil {
		return models.User{}, err
	}

	query, args, err := buildSelectUserByIDQuery(r.db.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.GetUserByID").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row userRow
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.GetUserByID").Str("id", id).Msg("error selecting user")
		return models.User{}, r.db.classify(err, ErrExecutingQuery)
	}

	return row.toModel(), nil
}

// UpdateUser reports rows affected as both matched and modified: the SQL
// backends count every matched row as changed.
func (r *sqlUserRepository) UpdateUser(ctx context.Context, id string, user models.User) (models.UpdateResult, error) {
	log := logger.FromContext(ctx)

	if err := parseUUID(id); err != nil {
		return models.UpdateResult{}, err
	}

	query, args, err := buildUpdateUserQuery(r.db.builder(), id, user)
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.UpdateUser").Msg("failed to build query")
		return models.UpdateResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.UpdateUser").Str("id", id).Msg("error updating user")
		return models.UpdateResult{}, err
	}

	return models.UpdateResult{MatchedCount: affected, ModifiedCount: affected}, nil
}

func (r *sqlUserRepository) DeleteUser(ctx context.Context, id string) (models.DeleteResult, error) {
	log := logger.FromContext(ctx)

	if err := parseUUID(id); err != nil {
		return models.DeleteResult{}, err
	}

	query, args, err := buildDeleteUserQuery(r.db.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.DeleteUser").Msg("failed to build query")
		return models.DeleteResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.DeleteUser").Str("id", id).Msg("error deleting user")
		return models.DeleteResult{}, err
	}

	return models.DeleteResult{DeletedCount: affected}, nil
}

func (r *sqlUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUsersQuery(r.db.builder())
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.ListUsers").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows []userRow
	if err = r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.ListUsers").Msg("error selecting users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	users := make([]models.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toModel())
	}

	return users, nil
}

func (r *sqlUserRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, r.db.classify(err, ErrExecutingStatement)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

func parseUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidIdentifier
	}
	return nil
}
