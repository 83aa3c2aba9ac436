package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrUnknownFormat is returned when the output format is not recognised.
	ErrUnknownFormat = errors.New("tui: unknown output format")
)
