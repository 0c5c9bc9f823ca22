package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/internal/utils"
	"github.com/MKhiriev/go-bookshelf/models"
)

// sqlBookRepository is the SQL-backed implementation of [BookRepository]
// working on the "Book" table.
type sqlBookRepository struct {
	db     *DB
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

func NewSQLBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating sql book repository")
	return &sqlBookRepository{
		db:     db,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

func (r *sqlBookRepository) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	if err := parseUUID(book.OwnerID); err != nil {
		return models.Book{}, err
	}

	row := bookRow{
		ID:      r.ids.Generate(),
		Title:   book.Title,
		Message: book.Message,
		OwnerID: book.OwnerID,
	}

	query, args, err := buildInsertBookQuery(r.db.builder(), row)
	if err != nil {
		log.Err(err).Str("func", "*sqlBookRepository.CreateBook").Msg("failed to build query")
		return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlBookRepository.CreateBook").Msg("error inserting book")
		return models.Book{}, r.db.classify(err, ErrExecutingStatement)
	}

	return row.toModel(), nil
}

func (r *sqlBookRepository) FindBooksByTitles(ctx context.Context, titles []string) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBooksByTitlesQuery(r.db.builder(), titles)
	if err != nil {
		log.Err(err).Str("func", "*sqlBookRepository.FindBooksByTitles").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows []bookRow
	if err = r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlBookRepository.FindBooksByTitles").Strs("titles", titles).Msg("error selecting books")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	books := make([]models.Book, 0, len(rows))
	for _, row := range rows {
		books = append(books, row.toModel())
	}

	return books, nil
}

func (r *sqlBookRepository) ListBooksWithOwner(ctx context.Context) ([]models.BookWithOwner, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBooksWithOwnerQuery(r.db.builder())
	if err != nil {
		log.Err(err).Str("func", "*sqlBookRepository.ListBooksWithOwner").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows []bookWithOwnerRow
	if err = r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlBookRepository.ListBooksWithOwner").Msg("error selecting books")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	books := make([]models.BookWithOwner, 0, len(rows))
	for _, row := range rows {
		books = append(books, row.toModel())
	}

	return books, nil
}
