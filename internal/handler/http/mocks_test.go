package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/internal/service"
	"github.com/MKhiriev/go-bookshelf/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockUserSvc struct {
	createFn func(ctx context.Context, user models.User) (models.User, error)
	getFn    func(ctx context.Context, id string) (models.User, error)
	updateFn func(ctx context.Context, id string, user models.User) (models.User, error)
	deleteFn func(ctx context.Context, id string) (models.DeleteResult, error)
	listFn   func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserSvc) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}
func (m *mockUserSvc) GetUser(ctx context.Context, id string) (models.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.User{ID: id}, nil
}
func (m *mockUserSvc) UpdateUser(ctx context.Context, id string, user models.User) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, user)
	}
	return user, nil
}
func (m *mockUserSvc) DeleteUser(ctx context.Context, id string) (models.DeleteResult, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return models.DeleteResult{}, nil
}
func (m *mockUserSvc) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []models.User{}, nil
}

type mockBookSvc struct {
	createFn func(ctx context.Context, book models.Book) (models.Book, error)
	findFn   func(ctx context.Context, names string) ([]models.Book, error)
	listFn   func(ctx context.Context) ([]models.BookWithOwner, error)
}

func (m *mockBookSvc) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	if m.createFn != nil {
		return m.createFn(ctx, book)
	}
	return book, nil
}
func (m *mockBookSvc) FindBooksByTitles(ctx context.Context, names string) ([]models.Book, error) {
	if m.findFn != nil {
		return m.findFn(ctx, names)
	}
	return []models.Book{}, nil
}
func (m *mockBookSvc) ListBooksWithOwner(ctx context.Context) ([]models.BookWithOwner, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []models.BookWithOwner{}, nil
}

type mockTokenSvc struct {
	enabled  bool
	createFn func(ctx context.Context, user models.User) (models.Token, error)
}

func (m *mockTokenSvc) Enabled() bool { return m.enabled }
func (m *mockTokenSvc) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return models.Token{SignedString: "signed." + user.ID}, nil
}

type mockAppInfoSvc struct {
	version string
}

func (m *mockAppInfoSvc) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestServices fills every service with a default mock; non-nil
// arguments replace the defaults.
func newTestServices(users service.UserService, books service.BookService) *service.Services {
	if users == nil {
		users = &mockUserSvc{}
	}
	if books == nil {
		books = &mockBookSvc{}
	}
	return &service.Services{
		UserService:    users,
		BookService:    books,
		TokenService:   &mockTokenSvc{},
		AppInfoService: &mockAppInfoSvc{version: "test-version"},
	}
}

func newTestHandler(services *service.Services, opts ...Option) *Handler {
	if services == nil {
		services = newTestServices(nil, nil)
	}
	return NewHandler(services, logger.Nop(), opts...)
}

// encodeBody serialises v to JSON and returns it as an io.Reader.
func encodeBody(t *testing.T, v any) io.Reader {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}
