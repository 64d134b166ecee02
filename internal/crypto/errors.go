package crypto

import "errors"

var (
	// ErrHashing is returned when a password hash cannot be produced.
	ErrHashing = errors.New("password hashing failed")

	// ErrPasswordTooLong is returned for passwords longer than
	// [MaxPasswordBytes].
	ErrPasswordTooLong = errors.New("password is too long")

	// ErrMalformedHash is returned when a stored hash cannot be parsed.
	ErrMalformedHash = errors.New("malformed password hash")

	// ErrInvalidCost is returned by NewBcryptHasher for a cost outside the
	// range bcrypt accepts.
	ErrInvalidCost = errors.New("invalid bcrypt cost")
)
