// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Book is a message-like document owned by a [User].
type Book struct {
	ID      string `json:"id,omitempty"`
	Title   string `json:"title"`
	Message string `json:"message"`

	// OwnerID references User.UserID. The reference is not enforced, so an
	// owner may be missing.
	OwnerID string `json:"owner_id"`
}

// BookWithOwner is a book joined with its owner. Owner is nil when no user
// matches Book.OwnerID.
type BookWithOwner struct {
	Book  Book  `json:"book"`
	Owner *User `json:"owner"`
}
