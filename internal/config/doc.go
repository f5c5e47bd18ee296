// Package config loads, normalizes, and validates soundvault configuration
// from TOML with repository defaults applied first.
package config
