package config

import (
	"errors"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Paths.LibraryDir) == "" {
		return errors.New("paths.library_dir must be set")
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return errors.New("paths.log_dir must be set")
	}
	if c.Organizer.ConfidenceThreshold < 0 || c.Organizer.ConfidenceThreshold > 1 {
		return errors.New("organizer.confidence_threshold must be between 0 and 1")
	}
	if c.Organizer.SuggestionLimit < 1 {
		return errors.New("organizer.suggestion_limit must be >= 1")
	}
	return nil
}
