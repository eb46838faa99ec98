package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN or uploads directory).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidModelConfigs indicates invalid model settings
	// (for example, an empty artifact path).
	ErrInvalidModelConfigs = errors.New("invalid model configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key or zero session duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
