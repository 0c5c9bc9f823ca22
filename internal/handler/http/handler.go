package http

import (
	"time"

	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/internal/service"
	"github.com/MKhiriev/go-bookshelf/internal/utils"
)

type Handler struct {
	services *service.Services

	// hasher signs and verifies bodies; nil disables the integrity check.
	hasher *utils.Hasher
	// requestTimeout bounds every request context; zero disables it.
	requestTimeout time.Duration

	logger *logger.Logger
}

// Option configures optional Handler behaviour.
type Option func(*Handler)

// WithIntegrityKey enables the HashSHA256 header check keyed with key.
// An empty key leaves the check disabled.
func WithIntegrityKey(key string) Option {
	return func(h *Handler) {
		if key != "" {
			h.hasher = utils.NewHasher(key)
		}
	}
}

func WithRequestTimeout(timeout time.Duration) Option {
	return func(h *Handler) {
		h.requestTimeout = timeout
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().
		Bool("integrity_check", h.hasher != nil).
		Dur("request_timeout", h.requestTimeout).
		Msg("http handler created")
	return h
}
