package config

import "time"

// Built-in defaults, mirroring the reference deployment: a local SQLite
// file, uploads under static/uploads, the fixed model artifact next to the
// binary, and the hardcoded admin/admin credential.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:    "secret123",
			TokenIssuer:     "ecosort",
			SessionDuration: 24 * time.Hour,
			AdminUsername:   "admin",
			AdminPassword:   "admin",
		},
		Server: Server{
			HTTPAddress: "localhost:8080",
		},
		Storage: Storage{
			DB: DB{
				DSN: "ecosort.db",
			},
			Uploads: Uploads{
				Dir: "static/uploads",
			},
		},
		Model: Model{
			Path:    "model_fix.tflite",
			Threads: 4,
		},
	}
}
