// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued to an authenticated user.
//
// UserID is duplicated in the standard "sub" claim; the "id" claim keeps
// tokens compatible with clients that read the identifier directly.
type Claims struct {
	UserID string `json:"id"`

	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier carried by the token.
	UserID string `json:"-"`
}

// GetUserID returns the user identifier carried by the token claims.
func (t *Token) GetUserID() (string, error) {
	if t.Token == nil {
		return "", errors.New("token is not parsed")
	}

	claims, ok := t.Claims.(*Claims)
	if !ok {
		return "", errors.New("unexpected token claims type")
	}

	if claims.UserID != "" {
		return claims.UserID, nil
	}

	return claims.GetSubject()
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
