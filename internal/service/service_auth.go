package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-auth-keeper/internal/crypto"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/validators"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and the current
// user lookup, delegating persistence to a UserRepository, password hashing
// to a PasswordHasher and token issuance to a TokenService.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and checks password hashes.
	hasher crypto.PasswordHasher

	// tokens issues the token returned after registration and login.
	tokens TokenService

	// validator checks request fields before any store access.
	validator validators.Validator

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	tokens TokenService,
	validator validators.Validator,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		validator:      validator,
		logger:         logger,
	}
}

// RegisterUser creates a new user account and issues a token for it.
//
// The email is lower-cased and the username trimmed before any check.
//
// Returns the created user with its token or:
//   - ErrMissingFields if username, email or password is empty;
//   - ErrEmailTaken / ErrUsernameTaken if the email or username is in use,
//     including when a concurrent registration wins the insert;
//   - *ValidationError if a field has an invalid format;
//   - a wrapped ErrInternal for store, hashing or token failures.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	request.Username = strings.TrimSpace(request.Username)
	request.Email = normalizeEmail(request.Email)

	if request.Username == "" || request.Email == "" || request.Password == "" {
		log.Debug().Str("func", "*authService.RegisterUser").Msg("missing fields")
		return models.AuthResult{}, ErrMissingFields
	}

	// a taken email or username wins over format errors
	if err := a.ensureAvailable(ctx, request); err != nil {
		return models.AuthResult{}, err
	}

	if err := a.validator.Validate(ctx, request); err != nil {
		return models.AuthResult{}, a.validationError(ctx, err)
	}

	hash, err := a.hasher.Hash(request.Password)
	if errors.Is(err, crypto.ErrPasswordTooLong) {
		return models.AuthResult{}, &ValidationError{Messages: []string{
			fmt.Sprintf("Password must be at most %d bytes", crypto.MaxPasswordBytes),
		}}
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("error hashing password")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: hash,
	})
	if err != nil {
		return models.AuthResult{}, a.createUserError(ctx, err)
	}
	log.Info().Str("func", "*authService.RegisterUser").Str("user_id", user.ID).Msg("user registered")

	return a.authResult(ctx, user)
}

// Login authenticates an existing user by email and password.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials so
// callers cannot tell which one failed.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	request.Email = normalizeEmail(request.Email)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Login").Msg("missing fields")
		return models.AuthResult{}, ErrMissingFields
	}

	user, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("func", "*authService.Login").Msg("unknown email")
		return models.AuthResult{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("%w: user search by email failed: %w", ErrInternal, err)
	}

	ok, err := a.hasher.Verify(request.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("user_id", user.ID).Msg("error verifying password")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if !ok {
		log.Debug().Str("func", "*authService.Login").Str("user_id", user.ID).Msg("wrong password")
		return models.AuthResult{}, ErrInvalidCredentials
	}

	return a.authResult(ctx, user)
}

// CurrentUser returns the stored user with id userID, or ErrUserNotFound.
func (a *authService) CurrentUser(ctx context.Context, userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, ErrUserNotFound
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CurrentUser").Msg("user search by id failed")
		return models.User{}, fmt.Errorf("%w: user search by id failed: %w", ErrInternal, err)
	}

	return user, nil
}

// ensureAvailable checks email first, then username.
func (a *authService) ensureAvailable(ctx context.Context, request models.RegisterRequest) error {
	log := logger.FromContext(ctx)

	_, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	switch {
	case err == nil:
		return ErrEmailTaken
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("func", "*authService.ensureAvailable").Msg("user search by email failed")
		return fmt.Errorf("%w: user search by email failed: %w", ErrInternal, err)
	}

	_, err = a.userRepository.FindUserByUsername(ctx, request.Username)
	switch {
	case err == nil:
		return ErrUsernameTaken
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("func", "*authService.ensureAvailable").Msg("user search by username failed")
		return fmt.Errorf("%w: user search by username failed: %w", ErrInternal, err)
	}

	return nil
}

func (a *authService) createUserError(ctx context.Context, err error) error {
	var constraintErr *store.ConstraintError

	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return ErrEmailTaken
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return ErrUsernameTaken
	case errors.As(err, &constraintErr):
		return &ValidationError{Messages: constraintErr.Messages}
	}

	logger.FromContext(ctx).Err(err).Str("func", "*authService.RegisterUser").Msg("user creation ended with error")
	return fmt.Errorf("%w: user creation ended with error: %w", ErrInternal, err)
}

func (a *authService) validationError(ctx context.Context, err error) error {
	messages := validators.Messages(err)
	if len(messages) == 0 {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.validationError").Msg("validator failed")
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return &ValidationError{Messages: messages}
}

func (a *authService) authResult(ctx context.Context, user models.User) (models.AuthResult, error) {
	token, err := a.tokens.Issue(ctx, user.ID)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return models.AuthResult{Token: token, User: user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
