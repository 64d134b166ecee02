// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-auth-keeper/internal/crypto"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/mock"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/validators"
	"github.com/MKhiriev/go-auth-keeper/models"
)

func newTestAuthService(t *testing.T) (
	*authService,
	*mock.MockUserRepository,
	*mock.MockPasswordHasher,
	*mock.MockTokenService,
) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	tokens := mock.NewMockTokenService(ctrl)

	svc := NewAuthService(repo, hasher, tokens, validators.NewUserValidator(), logger.Nop()).(*authService)
	return svc, repo, hasher, tokens
}

func storedUser() models.User {
	return models.User{
		ID:           "user-1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestRegisterUser_Success(t *testing.T) {
	svc, repo, hasher, tokens := newTestAuthService(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(models.User{}, store.ErrNoUserWasFound),
		repo.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{}, store.ErrNoUserWasFound),
		hasher.EXPECT().Hash("secret1").Return("$2a$10$hash", nil),
		repo.EXPECT().CreateUser(ctx, models.User{
			Username:     "alice",
			Email:        "alice@example.com",
			PasswordHash: "$2a$10$hash",
		}).Return(storedUser(), nil),
		tokens.EXPECT().Issue(ctx, "user-1").Return(models.Token{SignedString: "jwt", UserID: "user-1"}, nil),
	)

	result, err := svc.RegisterUser(ctx, models.RegisterRequest{
		Username: "  alice ",
		Email:    " Alice@Example.COM",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "jwt", result.Token.String())
	assert.Equal(t, "user-1", result.User.ID)
	assert.Equal(t, "alice@example.com", result.User.Email)
}

func TestRegisterUser_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		request models.RegisterRequest
	}{
		{name: "no username", request: models.RegisterRequest{Email: "a@b.c", Password: "secret1"}},
		{name: "blank username", request: models.RegisterRequest{Username: "   ", Email: "a@b.c", Password: "secret1"}},
		{name: "no email", request: models.RegisterRequest{Username: "alice", Password: "secret1"}},
		{name: "no password", request: models.RegisterRequest{Username: "alice", Email: "a@b.c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no repository calls are expected
			svc, _, _, _ := newTestAuthService(t)

			_, err := svc.RegisterUser(context.Background(), tt.request)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}
}

func TestRegisterUser_InvalidFormat(t *testing.T) {
	svc, repo, _, _ := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "not-an-email").Return(models.User{}, store.ErrNoUserWasFound)
	repo.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{
		Username: "alice",
		Email:    "not-an-email",
		Password: "123",
	})
	require.ErrorIs(t, err, ErrValidation)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{validators.MsgEmailInvalid, validators.MsgPasswordTooShort}, validationErr.Messages)
}

func TestRegisterUser_EmailTaken(t *testing.T) {
	svc, repo, _, _ := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(storedUser(), nil)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{Username: "bob", Email: "ALICE@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterUser_TakenEmailWinsOverInvalidFields(t *testing.T) {
	tests := []struct {
		name    string
		request models.RegisterRequest
	}{
		{name: "short password", request: models.RegisterRequest{Username: "bob", Email: "alice@example.com", Password: "123"}},
		{name: "long username", request: models.RegisterRequest{Username: strings.Repeat("b", 80), Email: "alice@example.com", Password: "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, _ := newTestAuthService(t)
			ctx := context.Background()

			repo.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(storedUser(), nil)

			_, err := svc.RegisterUser(ctx, tt.request)
			assert.ErrorIs(t, err, ErrEmailTaken)
			assert.NotErrorIs(t, err, ErrValidation)
		})
	}
}

func TestRegisterUser_TakenUsernameWinsOverInvalidEmail(t *testing.T) {
	svc, repo, _, _ := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "bad-email").Return(models.User{}, store.ErrNoUserWasFound)
	repo.EXPECT().FindUserByUsername(ctx, "alice").Return(storedUser(), nil)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{Username: "alice", Email: "bad-email", Password: "123"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterUser_WhitespacePasswordIsPresent(t *testing.T) {
	svc, repo, hasher, tokens := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "a@b.c").Return(models.User{}, store.ErrNoUserWasFound)
	repo.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{}, store.ErrNoUserWasFound)
	hasher.EXPECT().Hash("        ").Return("hash", nil)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(storedUser(), nil)
	tokens.EXPECT().Issue(ctx, "user-1").Return(models.Token{SignedString: "jwt", UserID: "user-1"}, nil)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{Username: "alice", Email: "a@b.c", Password: "        "})
	assert.NoError(t, err)
}

func TestRegisterUser_UsernameTaken(t *testing.T) {
	svc, repo, _, _ := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "bob@example.com").Return(models.User{}, store.ErrNoUserWasFound)
	repo.EXPECT().FindUserByUsername(ctx, "alice").Return(storedUser(), nil)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{Username: "alice", Email: "bob@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterUser_LookupFailure(t *testing.T) {
	svc, repo, _, _ := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, store.ErrExecutingQuery)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{Username: "alice", Email: "a@b.c", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestRegisterUser_CreateUserErrors(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		want     error
	}{
		{name: "racing email", storeErr: store.ErrEmailAlreadyExists, want: ErrEmailTaken},
		{name: "racing username", storeErr: store.ErrUsernameAlreadyExists, want: ErrUsernameTaken},
		{name: "constraint", storeErr: &store.ConstraintError{Messages: []string{"Please provide a username"}}, want: ErrValidation},
		{name: "unexpected", storeErr: errors.New("connection reset"), want: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, hasher, _ := newTestAuthService(t)
			ctx := context.Background()

			repo.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)
			repo.EXPECT().FindUserByUsername(ctx, gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)
			hasher.EXPECT().Hash(gomock.Any()).Return("hash", nil)
			repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, tt.storeErr)

			_, err := svc.RegisterUser(ctx, models.RegisterRequest{Username: "alice", Email: "a@b.c", Password: "secret1"})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRegisterUser_PasswordTooLong(t *testing.T) {
	svc, repo, hasher, _ := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)
	repo.EXPECT().FindUserByUsername(ctx, gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)
	hasher.EXPECT().Hash(gomock.Any()).Return("", crypto.ErrPasswordTooLong)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{Username: "alice", Email: "a@b.c", Password: "secret1"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegisterUser_TokenFailure(t *testing.T) {
	svc, repo, hasher, tokens := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)
	repo.EXPECT().FindUserByUsername(ctx, gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)
	hasher.EXPECT().Hash(gomock.Any()).Return("hash", nil)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(storedUser(), nil)
	tokens.EXPECT().Issue(ctx, "user-1").Return(models.Token{}, ErrTokenCreationFailed)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{Username: "alice", Email: "a@b.c", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestLogin_Success(t *testing.T) {
	svc, repo, hasher, tokens := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(storedUser(), nil)
	hasher.EXPECT().Verify("secret1", "$2a$10$hash").Return(true, nil)
	tokens.EXPECT().Issue(ctx, "user-1").Return(models.Token{SignedString: "jwt"}, nil)

	result, err := svc.Login(ctx, models.LoginRequest{Email: "Alice@Example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "jwt", result.Token.String())
	assert.Equal(t, "alice", result.User.Username)
}

func TestLogin_MissingFields(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Login(context.Background(), models.LoginRequest{Password: "secret1"})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestLogin_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	svc, repo, hasher, _ := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "ghost@example.com").Return(models.User{}, store.ErrNoUserWasFound)
	_, unknownErr := svc.Login(ctx, models.LoginRequest{Email: "ghost@example.com", Password: "secret1"})

	repo.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(storedUser(), nil)
	hasher.EXPECT().Verify("wrong-password", "$2a$10$hash").Return(false, nil)
	_, wrongErr := svc.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "wrong-password"})

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestLogin_MalformedStoredHash(t *testing.T) {
	svc, repo, hasher, _ := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(storedUser(), nil)
	hasher.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(false, crypto.ErrMalformedHash)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCurrentUser(t *testing.T) {
	svc, repo, _, _ := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByID(ctx, "user-1").Return(storedUser(), nil)
	user, err := svc.CurrentUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	repo.EXPECT().FindUserByID(ctx, "deleted").Return(models.User{}, store.ErrNoUserWasFound)
	_, err = svc.CurrentUser(ctx, "deleted")
	assert.ErrorIs(t, err, ErrUserNotFound)

	repo.EXPECT().FindUserByID(ctx, "user-2").Return(models.User{}, store.ErrExecutingQuery)
	_, err = svc.CurrentUser(ctx, "user-2")
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.CurrentUser(ctx, "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
