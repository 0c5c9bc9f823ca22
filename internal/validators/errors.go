package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidName     = errors.New("not a name with first and last name of at least 3 characters")
	ErrInvalidEmail    = errors.New("not a valid email address")
	ErrInvalidPassword = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes long")
	ErrEmptyOwnerID    = errors.New("owner_id is required")
)
