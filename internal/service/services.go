package service

import (
	"github.com/MKhiriev/go-bookshelf/internal/config"
	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/internal/store"
)

type Services struct {
	UserService    UserService
	BookService    BookService
	TokenService   TokenService
	AppInfoService AppInfoService
}

// NewServices builds the service layer on top of storages. User and book
// services are wrapped with input validation.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		UserService:    NewUserValidationService().Wrap(NewUserService(storages.UserRepository, cfg, logger)),
		BookService:    NewBookValidationService().Wrap(NewBookService(storages.BookRepository, logger)),
		TokenService:   NewTokenService(cfg, logger),
		AppInfoService: appInfoService,
	}, nil
}
