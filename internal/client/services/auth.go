// Package services contains the application services of the client.
// This file defines the authentication service: credential login, the
// current session view and logout.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/noclaf/internal/client/client"
	"github.com/dmitrijs2005/noclaf/internal/client/credentials"
	"github.com/dmitrijs2005/noclaf/internal/client/decode"
	"github.com/dmitrijs2005/noclaf/internal/client/models"
	"github.com/dmitrijs2005/noclaf/internal/client/session"
	"github.com/dmitrijs2005/noclaf/internal/common"
	"github.com/dmitrijs2005/noclaf/internal/logging"
)

// AuthService defines authentication operations for the UI layer.
//
// Contract:
//   - Authenticate: validate, normalize and send credentials; on a successful
//     result with a token, store the session. A result with Succeeded=false is
//     not an error and leaves the session untouched.
//   - CurrentSession: snapshot of the stored session.
//   - Logout: clear the stored session. Idempotent.
//
// Transport and decode failures are returned as errors, never as results.
type AuthService interface {
	Authenticate(ctx context.Context, identifier, secret string) (models.AuthResult, error)
	CurrentSession() models.Session
	Logout(ctx context.Context) error
}

type authService struct {
	client client.Client
	store  session.Store
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and session store.
func NewAuthService(client client.Client, store session.Store, log logging.Logger) AuthService {
	return &authService{client: client, store: store, log: log}
}

// Authenticate is the only place where a session becomes authenticated.
func (a *authService) Authenticate(ctx context.Context, identifier, secret string) (models.AuthResult, error) {
	if strings.TrimSpace(identifier) == "" || strings.TrimSpace(secret) == "" {
		return models.AuthResult{}, fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	email, digest := credentials.Normalize(identifier, secret)

	data, err := a.client.Login(ctx, email, digest)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("login error: %w", err)
	}

	result, err := decode.Auth(data)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("login error: %w", err)
	}

	if !result.Succeeded {
		a.log.Info(ctx, "login refused", "user", email, "message", result.Message)
		return result, nil
	}

	if err := a.store.SetAuthenticated(ctx, *result.Token, email); err != nil {
		return models.AuthResult{}, fmt.Errorf("session saving error: %w", err)
	}
	return result, nil
}

func (a *authService) CurrentSession() models.Session {
	return a.store.Get()
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}
