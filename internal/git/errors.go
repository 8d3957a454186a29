package git

import "errors"

// Repository errors
var (
	ErrNotRepository = errors.New("path is not inside a git repository")
	ErrEmptyPath     = errors.New("path is not set")
)

// Revision errors
var (
	ErrEmptyRevision = errors.New("base revision is required to compute diff")
)
