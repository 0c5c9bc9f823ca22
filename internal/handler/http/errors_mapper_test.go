package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-bookshelf/internal/service"
	"github.com/MKhiriev/go-bookshelf/internal/store"
	"github.com/MKhiriev/go-bookshelf/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "validation keeps its text",
			err:         fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidName),
			wantStatus:  http.StatusBadRequest,
			wantMessage: fmt.Sprintf("%s: %s", service.ErrInvalidDataProvided, validators.ErrInvalidName),
		},
		{name: "empty id", err: service.ErrValidationNoID, wantStatus: http.StatusBadRequest, wantMessage: msgInvalidID},
		{name: "no titles", err: service.ErrValidationNoTitles, wantStatus: http.StatusBadRequest, wantMessage: service.ErrValidationNoTitles.Error()},
		{
			name:        "unparsable id",
			err:         fmt.Errorf("user lookup failed: %w", store.ErrInvalidIdentifier),
			wantStatus:  http.StatusBadRequest,
			wantMessage: msgInvalidID,
		},
		{name: "not found", err: store.ErrUserNotFound, wantStatus: http.StatusNotFound, wantMessage: msgUserNotFound},
		{name: "duplicate", err: store.ErrDuplicateID, wantStatus: http.StatusConflict, wantMessage: msgDuplicateID},
		{
			name:        "store failure is hidden",
			err:         fmt.Errorf("%w: %w", store.ErrExecutingQuery, errors.New("pq: relation does not exist")),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: msgInternalError,
		},
		{
			name:        "deadline",
			err:         fmt.Errorf("user listing failed: %w", context.DeadlineExceeded),
			wantStatus:  http.StatusGatewayTimeout,
			wantMessage: msgTimeout,
		},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantMessage: msgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := statusFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}
