package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
//
//   - unique_violation (23505)   → [ErrEmailAlreadyExists], [ErrUsernameAlreadyExists]
//     or [ErrUserAlreadyExists], depending on the violated constraint;
//   - check_violation (23514)    → [*ConstraintError] for the constraint;
//   - not_null_violation (23502) → [*ConstraintError] for the column.
func (c *PostgresErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return uniqueViolationError(pgErr.ConstraintName)
	case pgerrcode.CheckViolation:
		return newConstraintError(pgErr.ConstraintName, pgErr.Message)
	case pgerrcode.NotNullViolation:
		return newConstraintError(pgErr.ColumnName, pgErr.Message)
	}

	return nil
}
