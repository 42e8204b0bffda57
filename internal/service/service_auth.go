// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
)

// authService checks the configured admin credentials and issues HS256
// tokens for the write routes.
type authService struct {
	adminLogin   string
	passwordHash string

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService builds an AuthService from cfg. When no hash is configured
// the plain admin password is hashed once here. With an empty TokenSignKey
// the service is disabled and Login always fails with [ErrAuthDisabled].
func NewAuthService(cfg config.App, log *logger.Logger) (AuthService, error) {
	svc := &authService{
		adminLogin:    cfg.AdminLogin,
		passwordHash:  cfg.AdminPasswordHash,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        log,
	}

	if svc.tokenSignKey != "" && svc.passwordHash == "" {
		hash, err := utils.HashPassword(cfg.AdminPassword)
		if err != nil {
			return nil, fmt.Errorf("error preparing admin password: %w", err)
		}
		svc.passwordHash = hash
	}

	return svc, nil
}

func (a *authService) Enabled() bool {
	return a.tokenSignKey != ""
}

// Login verifies req against the admin credentials and returns a signed
// token. Wrong login and wrong password are indistinguishable to the caller.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if !a.Enabled() {
		return models.Token{}, ErrAuthDisabled
	}
	if req.Login == "" || req.Password == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	loginOK := subtle.ConstantTimeCompare([]byte(req.Login), []byte(a.adminLogin)) == 1
	passwordOK := utils.CheckPassword(a.passwordHash, req.Password)
	if !loginOK || !passwordOK {
		log.Warn().Str("func", "*authService.Login").Str("login", req.Login).Msg("wrong credentials")
		return models.Token{}, ErrWrongCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, a.adminLogin, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("error creating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken normalises every validation failure to
// [ErrTokenIsExpiredOrInvalid].
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
