// Package logs reads the tail of the structured log file for the logs CLI
// command.
package logs
