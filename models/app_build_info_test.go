// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo_FillsEmptyValues(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")

	assert.Equal(t, "N/A", info.Version)
	assert.Equal(t, "2026-01-01", info.Date)
	assert.Equal(t, "N/A", info.Commit)
}

func TestAppBuildInfo_String(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "today", "abc123")

	assert.Equal(t, "Build version: 1.0.0\nBuild date: today\nBuild commit: abc123\n", info.String())
}

func TestUser_WithoutPassword(t *testing.T) {
	u := User{ID: "1", Name: "Jane Doe", Password: "secret"}

	stripped := u.WithoutPassword()

	assert.Empty(t, stripped.Password)
	assert.Equal(t, "secret", u.Password, "original must stay untouched")
	assert.Equal(t, "Jane Doe", stripped.Name)
}
