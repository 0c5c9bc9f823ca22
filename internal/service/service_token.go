package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bookshelf/internal/config"
	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/internal/utils"
	"github.com/MKhiriev/go-bookshelf/models"
)

// tokenService is the concrete implementation of TokenService.
type tokenService struct {
	// tokenSignKey is the HMAC secret used to sign tokens. Issuance is
	// disabled when it is empty.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

func (s *tokenService) Enabled() bool {
	return s.tokenSignKey != ""
}

// CreateToken issues an HS256 JWT whose subject is the user's id.
//
// Returns ErrTokensDisabled when no signing key is configured and
// ErrTokenCreationFailed when signing fails.
func (s *tokenService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if !s.Enabled() {
		return models.Token{}, ErrTokensDisabled
	}

	token, err := utils.GenerateJWTToken(s.tokenIssuer, user.ID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.CreateToken").Str("user_id", user.ID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
