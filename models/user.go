// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is a person registered in the bookshelf.
//
// ID is assigned by the storage layer right before the document is inserted
// and never changes afterwards. UserID mirrors ID and exists only as the join
// key referenced by [Book.OwnerID].
type User struct {
	// ID is the opaque identifier of the stored document.
	ID string `json:"id,omitempty"`

	// Name is the display name. It must consist of at least two
	// whitespace-separated tokens.
	Name string `json:"name"`

	// Email is the contact address of the user.
	Email string `json:"email"`

	// Password is accepted on input only. The storage layer keeps a bcrypt
	// hash of it and services clear the field before returning a user.
	Password string `json:"password,omitempty"`

	// Location is free text.
	Location string `json:"location"`

	// Title is free text.
	Title string `json:"title"`

	// UserID equals ID for every user created by this service.
	UserID string `json:"user_id,omitempty"`
}

// WithoutPassword returns a copy of u with the password field cleared.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}
