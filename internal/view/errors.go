package view

import "errors"

// Domain errors for viewport operations.
var (
	// ErrBadWidth indicates a bitmap width that is negative or not
	// byte aligned.
	ErrBadWidth = errors.New("view: width must be a non-negative multiple of 8")

	// ErrBadOffset indicates a negative initial byte offset.
	ErrBadOffset = errors.New("view: offset must not be negative")

	// ErrBadTermSize indicates a terminal geometry without positive
	// dimensions.
	ErrBadTermSize = errors.New("view: terminal size must be positive")

	// ErrIsDirectory indicates the viewed path is a directory.
	ErrIsDirectory = errors.New("view: path is a directory")
)
