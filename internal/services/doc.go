// Package services provides shared error classification and context plumbing
// used across soundvault components.
package services
