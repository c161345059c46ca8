package repository

import "errors"

// Sentinel kinds for history store errors.
var (
	ErrNotFound     = errors.New("snapshot not found")
	ErrInvalidLimit = errors.New("invalid history limit")
)
