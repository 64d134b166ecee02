// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthResult is returned by successful registration and login.
type AuthResult struct {
	Token Token
	User  User
}

// AuthResponse is the JSON body returned by the register and login endpoints.
type AuthResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// DataResponse is the JSON body returned by endpoints that wrap a single
// resource under "data".
type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorResponse is the uniform JSON error envelope.
//
// Message is either a string or, for field validation failures, a list of
// strings.
type ErrorResponse struct {
	Success bool `json:"success"`
	Message any  `json:"message"`
}
