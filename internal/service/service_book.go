package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/internal/store"
	"github.com/MKhiriev/go-bookshelf/models"
)

type bookService struct {
	bookRepository store.BookRepository

	logger *logger.Logger
}

func NewBookService(bookRepository store.BookRepository, logger *logger.Logger) BookService {
	return &bookService{
		bookRepository: bookRepository,
		logger:         logger,
	}
}

func (s *bookService) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	created, err := s.bookRepository.CreateBook(ctx, book)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookService.CreateBook").Msg("book creation ended with error")
		return models.Book{}, fmt.Errorf("book creation ended with error: %w", err)
	}

	return created, nil
}

func (s *bookService) FindBooksByTitles(ctx context.Context, names string) ([]models.Book, error) {
	titles := ParseTitles(names)
	if len(titles) == 0 {
		return nil, ErrValidationNoTitles
	}

	books, err := s.bookRepository.FindBooksByTitles(ctx, titles)
	if err != nil {
		return nil, fmt.Errorf("book search failed: %w", err)
	}

	return books, nil
}

// ListBooksWithOwner joins every book with its owner and strips the owner's
// password hash.
func (s *bookService) ListBooksWithOwner(ctx context.Context) ([]models.BookWithOwner, error) {
	books, err := s.bookRepository.ListBooksWithOwner(ctx)
	if err != nil {
		return nil, fmt.Errorf("book listing failed: %w", err)
	}

	for i := range books {
		if books[i].Owner != nil {
			owner := books[i].Owner.WithoutPassword()
			books[i].Owner = &owner
		}
	}

	return books, nil
}

// ParseTitles splits a comma-separated list of titles. Titles are trimmed;
// empty and repeated ones are dropped, first occurrence order is kept.
func ParseTitles(names string) []string {
	parts := strings.Split(names, ",")
	seen := make(map[string]struct{}, len(parts))
	titles := make([]string, 0, len(parts))

	for _, part := range parts {
		title := strings.TrimSpace(part)
		if title == "" {
			continue
		}
		if _, ok := seen[title]; ok {
			continue
		}
		seen[title] = struct{}{}
		titles = append(titles, title)
	}

	return titles
}
