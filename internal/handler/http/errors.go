// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Response bodies shared by several handlers. Clients may match on them.
const (
	msgInvalidJSON      = "Invalid JSON was passed"
	msgInvalidID        = "invalid ID"
	msgUserNotFound     = "No user found with specified ID"
	msgDuplicateID      = "document with this ID already exists"
	msgIntegrityFailed  = "Integrity check failed"
	msgInternalError    = "internal server error"
	msgTimeout          = "request timed out"
	msgInvalidGzipInput = "Invalid gzip data"
)

// ErrHashMismatch is logged when the HashSHA256 header does not match the
// request body.
var ErrHashMismatch = errors.New("`HashSHA256` header does not match body")
