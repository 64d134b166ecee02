// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a Go client for the authentication API.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// AuthClient calls the authentication endpoints. The token returned by
// Register or Login is kept and sent as a bearer token by Me.
// Implementations are safe for concurrent use.
type AuthClient interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error)
	Me(ctx context.Context) (models.UserResponse, error)

	SetToken(token string)
	Token() string
}
