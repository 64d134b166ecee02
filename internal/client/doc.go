// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client for the authentication
// API.
//
// Each invocation runs one command (register, login or me) against the
// server through [adapter.AuthClient] and prints the JSON result.
package client
