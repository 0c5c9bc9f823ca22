package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-bookshelf/models"
)

// User field names accepted by UserValidator.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	// FieldOptionalPassword applies the password rules only when a password
	// is present. Used for updates, where an empty password keeps the old one.
	FieldOptionalPassword = "optional password"
)

const (
	minNameLength     = 3
	minNameTokens     = 2
	minPasswordLength = 8
	maxPasswordLength = 72
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// UserValidator checks the shape of models.User values.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUser(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldName, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if len(user.Name) < minNameLength || len(strings.Fields(user.Name)) < minNameTokens {
				return ErrInvalidName
			}
		case FieldEmail:
			if !emailPattern.MatchString(user.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if err := validatePassword(user.Password); err != nil {
				return err
			}
		case FieldOptionalPassword:
			if user.Password == "" {
				continue
			}
			if err := validatePassword(user.Password); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrInvalidPassword
	}
	if len(password) > maxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}
