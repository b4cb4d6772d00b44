package input

import "errors"

var (
	// ErrInputNotFound indicates the map file does not exist.
	ErrInputNotFound = errors.New("input not found")

	// ErrNotAFile indicates the input path names a directory or other non-regular file.
	ErrNotAFile = errors.New("input is not a regular file")

	// ErrWatchStdin indicates an attempt to watch standard input.
	ErrWatchStdin = errors.New("cannot watch standard input")
)
