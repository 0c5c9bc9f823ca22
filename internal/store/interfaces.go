// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/go-bookshelf/models"
)

// UserRepository persists users in the "User" collection (or table).
//
// Identifiers are generated before the insert, so a single write stores both
// id and user_id. Methods taking an id return [ErrInvalidIdentifier] when it
// does not parse for the backend.
type UserRepository interface {
	// CreateUser stores user under a fresh identifier and returns it.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// GetUserByID returns [ErrUserNotFound] when nothing matches id.
	GetUserByID(ctx context.Context, id string) (models.User, error)
	// UpdateUser replaces name, email, location and title, plus password
	// when it is non-empty. Zero matches are reported through MatchedCount.
	UpdateUser(ctx context.Context, id string, user models.User) (models.UpdateResult, error)
	// DeleteUser removes the user. Books owned by it are left in place.
	DeleteUser(ctx context.Context, id string) (models.DeleteResult, error)
	// ListUsers returns every user in store order.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// BookRepository persists books in the "Book" collection (or table).
type BookRepository interface {
	// CreateBook stores book under a fresh identifier. owner_id must parse
	// as an identifier but is not required to reference an existing user.
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)
	// FindBooksByTitles returns every book whose title equals one of titles.
	FindBooksByTitles(ctx context.Context, titles []string) ([]models.Book, error)
	// ListBooksWithOwner returns every book joined with its owner. Owner is
	// nil when owner_id matches no user.
	ListBooksWithOwner(ctx context.Context) ([]models.BookWithOwner, error)
}
