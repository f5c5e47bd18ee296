package config

const (
	defaultLibraryDir          = "~/.local/share/soundvault"
	defaultLogDir              = "~/.local/share/soundvault/logs"
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
	defaultConfidenceThreshold = 0.7
	defaultSuggestionLimit     = 5
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryDir: defaultLibraryDir,
			LogDir:     defaultLogDir,
		},
		Organizer: Organizer{
			ConfidenceThreshold: defaultConfidenceThreshold,
			SuggestionLimit:     defaultSuggestionLimit,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
