// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/user-management-api/internal/config"
	"github.com/MKhiriev/user-management-api/internal/logger"
	"github.com/MKhiriev/user-management-api/internal/utils"
	"github.com/MKhiriev/user-management-api/models"
)

// defaultTokenDuration controls how long a newly issued JWT remains valid.
const defaultTokenDuration = time.Hour

// authService is the concrete implementation of AuthService.
// It verifies bearer tokens presented by clients and can issue tokens with
// the same signing parameters, so that issued and accepted tokens always
// agree on signature, issuer and audience.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim every accepted token must carry.
	tokenIssuer string

	// tokenAudience is the "aud" claim every accepted token must carry.
	tokenAudience string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService populated with the token
// verification parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenAudience: cfg.TokenAudience,
		logger:        logger,
	}
}

// CreateToken issues a signed JWT carrying email as its subject claim.
//
// The token is signed with the configured tokenSignKey, carries the
// configured issuer and audience claims, and expires after
// defaultTokenDuration.
func (a *authService) CreateToken(ctx context.Context, email string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, a.tokenAudience, email, defaultTokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// VerifyToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the expiration, and the issuer and audience claims. Any validation failure
// (expired, wrong signature, wrong issuer or audience, malformed) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) VerifyToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.tokenAudience)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token validation failed")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
