package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing key was supplied
	// through any configuration source.
	ErrMissingTokenSignKey = errors.New("token sign key is required")
	// ErrMissingDatabaseDSN indicates that no database connection string
	// was supplied through any configuration source.
	ErrMissingDatabaseDSN = errors.New("database DSN is required")
)
