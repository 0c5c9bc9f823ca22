package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-bookshelf/models"
)

const FieldOwnerID = "owner_id"

// BookValidator checks the shape of models.Book values. Whether owner_id
// parses as an identifier depends on the store and is checked there.
type BookValidator struct {
}

func NewBookValidator() Validator {
	return &BookValidator{}
}

func (v *BookValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Book:
		return v.validateBook(ctx, value, fields...)
	case *models.Book:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateBook(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *BookValidator) validateBook(_ context.Context, book models.Book, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if strings.TrimSpace(book.OwnerID) == "" {
				return ErrEmptyOwnerID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
