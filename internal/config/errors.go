package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing API token or a too low PBKDF2 iteration count).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid API server settings
	// (for example, missing HTTP address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWebConfigs indicates invalid web service settings
	// (for example, missing API URL or API token).
	ErrInvalidWebConfigs = errors.New("invalid web configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero hash workers).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
