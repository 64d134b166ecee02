// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrNotAuthorized is the only error the auth middleware reports to
	// clients, whatever the reason of the rejection.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrNoToken is logged when the "Authorization" header is missing or is
	// not a bearer token.
	ErrNoToken = errors.New("no bearer token in `Authorization` header")

	// ErrTokenInvalidOrExpired is logged when the bearer token fails
	// verification.
	ErrTokenInvalidOrExpired = errors.New("token is invalid or expired")

	// ErrNoIdentity is returned by protected handlers reached without the
	// auth middleware.
	ErrNoIdentity = errors.New("no identity in request context")
)

// msgServerError replaces the message of every 500 response.
const msgServerError = "server error"
