package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid.
var (
	// ErrNoTokenSignKey indicates that no JWT signing secret was configured.
	ErrNoTokenSignKey = errors.New("token sign key is not set")
	// ErrNoDSN indicates that no database DSN was configured.
	ErrNoDSN = errors.New("database DSN is not set")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, an empty address or a non-positive request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid token or hashing settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
