// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements one-way password hashing for stored credentials.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher produces and checks salted, deliberately slow password
// hashes. Implementations must be safe for concurrent use.
type PasswordHasher interface {
	// Hash returns a salted hash of plaintext. A fresh salt is generated on
	// every call, so hashing the same input twice yields different values.
	// The only failure is an internal one (e.g. no entropy), reported as
	// [ErrHashing].
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. A mismatch is not an
	// error; only a malformed hash is, reported as [ErrMalformedHash].
	Verify(plaintext, hash string) (bool, error)
}
