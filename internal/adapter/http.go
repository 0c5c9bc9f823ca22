package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-bookshelf/internal/config"
	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/internal/utils"
	"github.com/MKhiriev/go-bookshelf/models"
	"github.com/go-resty/resty/v2"
)

const hashHeader = "HashSHA256"

type httpServerAdapter struct {
	client *utils.HTTPClient

	// hasher is nil when no hash key is configured.
	hasher *utils.Hasher

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// The base URL comes from adapterCfg.HTTPAddress; a missing scheme defaults to
// http. A non-empty appCfg.HashKey turns on request signing and response
// verification.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	if appCfg.HashKey != "" {
		a.hasher = utils.NewHasher(appCfg.HashKey)
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateUser implements [ServerAdapter]. It POSTs user to POST /user and
// reads the optional bearer token from the Authorization response header.
func (h *httpServerAdapter) CreateUser(ctx context.Context, user models.User) (models.User, string, error) {
	var created models.User

	req, err := h.request(ctx, user)
	if err != nil {
		return models.User{}, "", err
	}
	resp, err := req.SetResult(&created).Post("/user")
	if err != nil {
		return models.User{}, "", fmt.Errorf("create user request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.User{}, "", err
	}

	var token string
	if header := resp.Header().Get("Authorization"); header != "" {
		if token, err = utils.ParseBearerToken(header); err != nil {
			h.logger.Warn().Err(err).Str("func", "*httpServerAdapter.CreateUser").Msg("malformed Authorization header")
		}
	}

	return created, token, nil
}

// GetUser implements [ServerAdapter] with GET /user/{id}.
func (h *httpServerAdapter) GetUser(ctx context.Context, id string) (models.User, error) {
	var user models.User

	req, err := h.request(ctx, nil)
	if err != nil {
		return models.User{}, err
	}
	resp, err := req.SetResult(&user).Get("/user/" + url.PathEscape(id))
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// UpdateUser implements [ServerAdapter] with PUT /user/{id}.
func (h *httpServerAdapter) UpdateUser(ctx context.Context, id string, user models.User) (models.User, error) {
	var updated models.User

	req, err := h.request(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	resp, err := req.SetResult(&updated).Put("/user/" + url.PathEscape(id))
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.User{}, err
	}

	return updated, nil
}

// DeleteUser implements [ServerAdapter] with DELETE /user/{id}.
func (h *httpServerAdapter) DeleteUser(ctx context.Context, id string) (models.DeleteResult, error) {
	var res models.DeleteResult

	req, err := h.request(ctx, nil)
	if err != nil {
		return models.DeleteResult{}, err
	}
	resp, err := req.SetResult(&res).Delete("/user/" + url.PathEscape(id))
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("delete user request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.DeleteResult{}, err
	}

	return res, nil
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := h.getJSON(ctx, "/users", &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// CreateBook implements [ServerAdapter] with POST /books.
func (h *httpServerAdapter) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	var created models.Book

	req, err := h.request(ctx, book)
	if err != nil {
		return models.Book{}, err
	}
	resp, err := req.SetResult(&created).Post("/books")
	if err != nil {
		return models.Book{}, fmt.Errorf("create book request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.Book{}, err
	}

	return created, nil
}

// FindBooks implements [ServerAdapter]. Titles travel comma-joined in the
// "names" query parameter of GET /book.
func (h *httpServerAdapter) FindBooks(ctx context.Context, titles []string) ([]models.Book, error) {
	var books []models.Book

	req, err := h.request(ctx, nil)
	if err != nil {
		return nil, err
	}
	resp, err := req.
		SetQueryParam("names", strings.Join(titles, ",")).
		SetResult(&books).
		Get("/book")
	if err != nil {
		return nil, fmt.Errorf("find books request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return nil, err
	}

	return books, nil
}

func (h *httpServerAdapter) ListBooks(ctx context.Context) ([]models.BookWithOwner, error) {
	var books []models.BookWithOwner
	if err := h.getJSON(ctx, "/books", &books); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// Version implements [ServerAdapter] with GET /version. The body is plain
// text.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	req, err := h.request(ctx, nil)
	if err != nil {
		return "", err
	}
	resp, err := req.Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// request prepares a request carrying body as JSON. The body is marshalled
// here so the exact bytes sent can be signed.
func (h *httpServerAdapter) request(ctx context.Context, body any) (*resty.Request, error) {
	req := h.client.R().SetContext(ctx)
	if body == nil {
		return req, nil
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req.SetHeader("Content-Type", "application/json").SetBody(payload)
	if h.hasher != nil {
		req.SetHeader(hashHeader, h.hasher.SumHex(payload))
	}
	return req, nil
}

func (h *httpServerAdapter) getJSON(ctx context.Context, path string, result any) error {
	req, err := h.request(ctx, nil)
	if err != nil {
		return err
	}
	resp, err := req.SetResult(result).Get(path)
	if err != nil {
		return err
	}
	return h.checkResponse(resp)
}

// checkResponse maps the status code and, when a hash key is set, verifies
// the HashSHA256 header of a signed response.
func (h *httpServerAdapter) checkResponse(resp *resty.Response) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}

	if h.hasher == nil {
		return nil
	}
	if signature := resp.Header().Get(hashHeader); signature != "" && !h.hasher.Verify(resp.Body(), signature) {
		return ErrIntegrity
	}
	return nil
}
