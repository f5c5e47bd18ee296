package testsupport

import (
	"path/filepath"
	"testing"

	"soundvault/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LibraryDir = filepath.Join(base, "library")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithConfidenceThreshold overrides the organizer confidence threshold.
func WithConfidenceThreshold(threshold float64) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organizer.ConfidenceThreshold = threshold
	}
}

// WithSuggestionLimit overrides the resolver suggestion limit.
func WithSuggestionLimit(limit int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organizer.SuggestionLimit = limit
	}
}
