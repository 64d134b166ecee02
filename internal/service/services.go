package service

import (
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/crypto"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/validators"
)

type Services struct {
	AuthService  AuthService
	TokenService TokenService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewBcryptHasher(cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	tokenService := NewTokenService(cfg, logger)

	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, hasher, tokenService, validators.NewUserValidator(), logger),
		TokenService: tokenService,
	}, nil
}
