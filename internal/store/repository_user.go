package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table
// on either PostgreSQL or SQLite, depending on the [DB] dialect.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger      *logger.Logger
	db          *DB
	idGenerator IDGenerator
	now         func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection. New users get their ID from idGenerator.
func NewUserRepository(db *DB, idGenerator IDGenerator, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:          db,
		logger:      logger,
		idGenerator: idGenerator,
		now:         time.Now,
	}
}

// CreateUser assigns ID and CreatedAt, persists the user and returns the
// stored record as reported by the RETURNING clause.
//
// Error handling:
//   - unique violation on email    → [ErrEmailAlreadyExists];
//   - unique violation on username → [ErrUsernameAlreadyExists];
//   - CHECK / NOT NULL violation   → [*ConstraintError];
//   - any other driver-level error → wrapped [ErrExecutingQuery];
//   - scan failure                 → wrapped [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.ID = r.idGenerator.Generate()
	user.CreatedAt = r.now().UTC()

	query, args, err := r.db.buildCreateUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	// create user in db
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.db.classify(err)
	}

	// scan saved user from db
	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		// some drivers report constraint violations only on Scan
		if r.db.errorClassificator != nil {
			if classified := r.db.errorClassificator.Classify(err); classified != nil {
				return models.User{}, classified
			}
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", "email", email)
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByUsername", "username", username)
}

func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", "id", id)
}

// findUser loads the single user whose column equals value.
// A missing row is reported as [ErrNoUserWasFound].
func (r *userRepository) findUser(ctx context.Context, funcName, column string, value any) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildFindUserQuery(column, value)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return models.User{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	if err = row.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting user")
		return models.User{}, r.db.classify(err)
	}

	found, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", funcName).Str("column", column).Msg("user not found")
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
		return models.User{}, err
	}
	return user, nil
}
