package service

import (
	"context"

	"github.com/MKhiriev/go-bookshelf/models"
)

// UserService manages users. Returned users never carry a password hash.
type UserService interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	// UpdateUser applies the update and returns the stored user re-read
	// after the write. Zero matches yield store.ErrUserNotFound.
	UpdateUser(ctx context.Context, id string, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, id string) (models.DeleteResult, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

type BookService interface {
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)
	// FindBooksByTitles takes the raw comma-separated names parameter.
	FindBooksByTitles(ctx context.Context, names string) ([]models.Book, error)
	ListBooksWithOwner(ctx context.Context) ([]models.BookWithOwner, error)
}

// TokenService issues tokens for freshly created users. Tokens are
// informational: nothing in the server verifies them.
type TokenService interface {
	Enabled() bool
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validation.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// BookServiceWrapper is the BookService counterpart of UserServiceWrapper.
type BookServiceWrapper interface {
	Wrap(BookService) BookService
}
