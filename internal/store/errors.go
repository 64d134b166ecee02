package store

import (
	"errors"
	"strings"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an insert violates the unique
	// constraint on users.email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUsernameAlreadyExists is returned when an insert violates the unique
	// constraint on users.username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserAlreadyExists is returned for a unique violation that cannot be
	// attributed to a specific column.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoUserWasFound is returned when a lookup matches no user record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrConstraintViolation is matched by every [*ConstraintError].
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrUnsupportedDSN is returned when the DSN scheme selects no known
	// database driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails for a reason the store cannot classify.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan user row")
)

// ConstraintError reports rows rejected by schema validation (CHECK or NOT
// NULL constraints). Messages holds one human-readable message per violated
// field.
type ConstraintError struct {
	Messages []string
}

func (e *ConstraintError) Error() string {
	return "constraint violation: " + strings.Join(e.Messages, "; ")
}

// Is makes every ConstraintError match [ErrConstraintViolation].
func (e *ConstraintError) Is(target error) bool {
	return target == ErrConstraintViolation
}

// constraintMessages maps schema constraint and column names to the message
// reported to clients.
var constraintMessages = map[string]string{
	"users_username_check":      "Please provide a username",
	"users_email_check":         "Please fill a valid email address",
	"users_password_hash_check": "Please provide a password",
	"username":                  "Please provide a username",
	"email":                     "Please provide an email",
	"password_hash":             "Please provide a password",
}

func newConstraintError(name, fallback string) *ConstraintError {
	if msg, ok := constraintMessages[name]; ok {
		return &ConstraintError{Messages: []string{msg}}
	}
	return &ConstraintError{Messages: []string{fallback}}
}

// uniqueColumns maps unique constraint names (PostgreSQL) and qualified
// column names (SQLite) to the error reported for them. Driver details are
// never inspected since they echo the user's values.
var uniqueColumns = map[string]error{
	"users_email_key":    ErrEmailAlreadyExists,
	"users.email":        ErrEmailAlreadyExists,
	"users_username_key": ErrUsernameAlreadyExists,
	"users.username":     ErrUsernameAlreadyExists,
}

// uniqueViolationError attributes a unique violation to a column by the
// constraint or column name that was violated.
func uniqueViolationError(name string) error {
	if err, ok := uniqueColumns[strings.TrimSpace(name)]; ok {
		return err
	}
	return ErrUserAlreadyExists
}
