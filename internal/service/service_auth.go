package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/utils"
	"github.com/MKhiriev/go-gate-keeper/models"
)

// authService is the concrete implementation of AuthService.
// Operators authenticate with a single shared key configured on the server;
// there is no operator account store. A successful exchange yields an
// HMAC-SHA256 signed JWT.
type authService struct {
	// operatorKey is the shared secret operators exchange for a token.
	operatorKey string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		operatorKey:   cfg.OperatorKey,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Login exchanges the shared operator key for a signed JWT.
//
// Returns ErrInvalidOperatorKey when the presented key does not match the
// configured one. The comparison is constant-time.
func (a *authService) Login(ctx context.Context, operatorKey string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if operatorKey == "" {
		log.Error().Msg("empty operator key provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	if subtle.ConstantTimeCompare([]byte(operatorKey), []byte(a.operatorKey)) != 1 {
		log.Error().Msg("operator key mismatch")
		return models.Token{}, ErrInvalidOperatorKey
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, "operator", a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the issuer claim. Any validation failure (expired, wrong issuer,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid so that callers do
// not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
