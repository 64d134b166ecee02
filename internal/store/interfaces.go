package store

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository persists user records. Username and email uniqueness is
// enforced by the underlying database.
type UserRepository interface {
	// CreateUser inserts user and returns the stored record with its
	// assigned ID and CreatedAt.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}

// ErrorClassificator translates driver-specific errors into the sentinel
// errors of this package.
type ErrorClassificator interface {
	// Classify returns the store error matching err, or nil when err has
	// no specific meaning to the store.
	Classify(err error) error
}
