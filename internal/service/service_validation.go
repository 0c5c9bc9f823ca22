package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bookshelf/internal/validators"
	"github.com/MKhiriev/go-bookshelf/models"
)

// UserValidationService checks user input before handing it to the wrapped
// UserService. Validation failures wrap ErrInvalidDataProvided.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateUser(ctx, user)
}

func (v *UserValidationService) GetUser(ctx context.Context, id string) (models.User, error) {
	if err := validateID(id); err != nil {
		return models.User{}, err
	}

	return v.inner.GetUser(ctx, id)
}

// UpdateUser checks email and name; the password is checked only when one
// is sent.
func (v *UserValidationService) UpdateUser(ctx context.Context, id string, user models.User) (models.User, error) {
	if err := validateID(id); err != nil {
		return models.User{}, err
	}

	err := v.validator.Validate(ctx, user, validators.FieldEmail, validators.FieldName, validators.FieldOptionalPassword)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateUser(ctx, id, user)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, id string) (models.DeleteResult, error) {
	if err := validateID(id); err != nil {
		return models.DeleteResult{}, err
	}

	return v.inner.DeleteUser(ctx, id)
}

func (v *UserValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}

// BookValidationService checks book input before handing it to the wrapped
// BookService.
type BookValidationService struct {
	inner     BookService
	validator validators.Validator
}

func NewBookValidationService() BookServiceWrapper {
	return &BookValidationService{
		validator: validators.NewBookValidator(),
	}
}

func (v *BookValidationService) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	if err := v.validator.Validate(ctx, book); err != nil {
		return models.Book{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateBook(ctx, book)
}

func (v *BookValidationService) FindBooksByTitles(ctx context.Context, names string) ([]models.Book, error) {
	if strings.TrimSpace(names) == "" {
		return nil, ErrValidationNoTitles
	}

	return v.inner.FindBooksByTitles(ctx, names)
}

func (v *BookValidationService) ListBooksWithOwner(ctx context.Context) ([]models.BookWithOwner, error) {
	return v.inner.ListBooksWithOwner(ctx)
}

func (v *BookValidationService) Wrap(wrapped BookService) BookService {
	v.inner = wrapped
	return v
}

func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrValidationNoID
	}
	return nil
}
