package service

import (
	"testing"

	"github.com/MKhiriev/go-bookshelf/internal/config"
	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/internal/mock"
	"github.com/MKhiriev/go-bookshelf/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{
		UserRepository: mock.NewMockUserRepository(ctrl),
		BookRepository: mock.NewMockBookRepository(ctrl),
	}

	services, err := NewServices(storages, config.App{Version: "1.2.3"}, logger.Nop())
	require.NoError(t, err)

	assert.IsType(t, &UserValidationService{}, services.UserService)
	assert.IsType(t, &BookValidationService{}, services.BookService)
	assert.False(t, services.TokenService.Enabled())
	assert.Equal(t, "1.2.3", services.AppInfoService.GetAppVersion(t.Context()))
}

func TestNewServices_NoVersion(t *testing.T) {
	services, err := NewServices(&store.Storages{}, config.App{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
	assert.Nil(t, services)
}
