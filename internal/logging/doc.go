// Package logging wires slog handlers and shared attribute helpers for
// soundvault. The console handler renders compact single-line output with a
// leading component label; the JSON handler is intended for log files and
// automation.
package logging
