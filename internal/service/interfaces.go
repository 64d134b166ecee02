package service

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService implements the registration, login and current-user flows.
type AuthService interface {
	// RegisterUser creates an account and issues a token for it.
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.AuthResult, error)

	// Login checks the credentials and issues a token.
	Login(ctx context.Context, request models.LoginRequest) (models.AuthResult, error)

	// CurrentUser re-reads the user with the given id.
	CurrentUser(ctx context.Context, userID string) (models.User, error)
}

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	Issue(ctx context.Context, userID string) (models.Token, error)

	// Verify returns the user id carried by a valid token.
	Verify(ctx context.Context, token string) (string, error)
}
