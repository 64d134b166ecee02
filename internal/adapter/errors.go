package adapter

import "errors"

// Errors returned for non-2xx responses. The server's message is appended
// to the wrapped error.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")

	ErrNotLoggedIn = errors.New("no token: register or log in first")
)
