package store

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. SQLite reports the violated
// constraint only in the error text, e.g.
// "UNIQUE constraint failed: users.email" or
// "CHECK constraint failed: users_email_check".
func (c *SQLiteErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.Code != sqlite3.ErrConstraint {
		return nil
	}

	msg := sqliteErr.Error()
	subject := msg
	if _, after, ok := strings.Cut(msg, ": "); ok {
		subject = after
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return uniqueViolationError(subject)
	case sqlite3.ErrConstraintCheck:
		return newConstraintError(subject, msg)
	case sqlite3.ErrConstraintNotNull:
		return newConstraintError(strings.TrimPrefix(subject, "users."), msg)
	}

	return nil
}
