// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the bookshelf REST API.
//
// [ServerAdapter] has one method per route. Non-2xx responses are mapped by
// mapHTTPError to the sentinels in errors.go, so callers can use [errors.Is]
// (e.g. [ErrNotFound] for 404, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-bookshelf/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to a bookshelf server. When a hash key is configured,
// request bodies are signed and signed responses are verified.
type ServerAdapter interface {
	// CreateUser stores user and returns it without the password, along with
	// the bearer token from the Authorization header (empty when the server
	// issues none).
	CreateUser(ctx context.Context, user models.User) (models.User, string, error)

	// GetUser fetches the user with the given id.
	GetUser(ctx context.Context, id string) (models.User, error)

	// UpdateUser replaces the mutable fields of the user with the given id and
	// returns the stored result.
	UpdateUser(ctx context.Context, id string, user models.User) (models.User, error)

	// DeleteUser removes the user with the given id. A missing user yields a
	// zero DeletedCount, not an error.
	DeleteUser(ctx context.Context, id string) (models.DeleteResult, error)

	ListUsers(ctx context.Context) ([]models.User, error)

	CreateBook(ctx context.Context, book models.Book) (models.Book, error)

	// FindBooks returns the books whose title equals one of titles.
	FindBooks(ctx context.Context, titles []string) ([]models.Book, error)

	// ListBooks returns every book joined with its owner.
	ListBooks(ctx context.Context) ([]models.BookWithOwner, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
