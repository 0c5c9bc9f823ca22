package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-bookshelf/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookValidator(t *testing.T) {
	require.NotNil(t, NewBookValidator())
}

func TestBookValidator_Validate(t *testing.T) {
	v := NewBookValidator()
	ctx := context.Background()
	book := models.Book{Title: "Dune", Message: "spice", OwnerID: "65f1c0a2b3d4e5f60718293a"}

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "valid value", obj: book},
		{name: "valid pointer", obj: &book},
		{name: "empty title allowed", obj: models.Book{OwnerID: "abc"}},
		{name: "empty owner", obj: models.Book{Title: "Dune"}, wantErr: ErrEmptyOwnerID},
		{name: "blank owner", obj: models.Book{Title: "Dune", OwnerID: "  "}, wantErr: ErrEmptyOwnerID},
		{name: "nil pointer", obj: (*models.Book)(nil), wantErr: ErrUnsupportedType},
		{name: "user", obj: models.User{}, wantErr: ErrUnsupportedType},
		{name: "unknown field", obj: book, fields: []string{"isbn"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
