package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Defaults fill every
// field, so a failure here means a source explicitly cleared something the
// application cannot run without.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Uploads.Dir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Model.Path == "" {
		return ErrInvalidModelConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.SessionDuration == 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
