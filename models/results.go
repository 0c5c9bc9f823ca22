// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UpdateResult reports how many documents a filtered update touched.
// A zero MatchedCount means no document carried the requested identifier.
type UpdateResult struct {
	MatchedCount  int64 `json:"matched_count"`
	ModifiedCount int64 `json:"modified_count"`
}

// DeleteResult reports how many documents were removed (0 or 1).
type DeleteResult struct {
	DeletedCount int64 `json:"deleted_count"`
}
