// Package config loads the application configuration from environment
// variables, command-line flags, an optional JSON file, and built-in
// defaults, merging them in priority order into a single StructuredConfig.
package config
