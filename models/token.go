// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token is a signed JWT issued for a freshly created user.
type Token struct {
	// Token is the parsed JWT. It is not serialized.
	*jwt.Token `json:"-"`

	// RegisteredClaims holds the standard JWT claims (iss, sub, exp, iat).
	jwt.RegisteredClaims

	// SignedString is the compact serialized form sent in the
	// Authorization header.
	SignedString string `json:"-"`

	// UserID is the identifier of the user the token was issued for.
	UserID string `json:"-"`
}

// String implements fmt.Stringer and returns the signed token.
func (t *Token) String() string {
	return t.SignedString
}
