package library

import "errors"

var (
	// ErrFolderNotFound reports a folder lookup by id that matched nothing.
	ErrFolderNotFound = errors.New("folder not found")
	// ErrFolderNotEmpty reports an attempt to delete a folder that still has
	// child folders.
	ErrFolderNotEmpty = errors.New("folder has child folders")
	// ErrFolderCycle reports a move that would make a folder its own
	// ancestor.
	ErrFolderCycle = errors.New("move would create a folder cycle")
	// ErrTrackNotFound reports a track lookup by id that matched nothing.
	ErrTrackNotFound = errors.New("track not found")
)
