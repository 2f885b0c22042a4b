package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an empty DSN or unsupported driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing token settings or a bad session TTL.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidNotesConfigs indicates an unknown delete policy.
	ErrInvalidNotesConfigs = errors.New("invalid notes configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
