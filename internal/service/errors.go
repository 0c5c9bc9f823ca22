package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrTokensDisabled        = errors.New("token issuance is disabled")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrValidationNoID     = errors.New("no user ID was given")
	ErrValidationNoTitles = errors.New("no book titles were given")
)
