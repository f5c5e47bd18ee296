// Package organizer runs the batch auto-filing pass: it enumerates tagged
// tracks that sit in no folder, asks the resolver for suggestions, and files
// each track into the first candidate that clears the confidence threshold.
// A file lock keeps concurrent runs from doubling the work.
package organizer
