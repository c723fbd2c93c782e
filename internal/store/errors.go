package store

import "errors"

var (
	// ErrNotFound indicates a task index or category lookup missed
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates a value that cannot be stored, such as an empty category name
	ErrInvalidInput = errors.New("invalid input")
	// ErrConflict indicates the value already exists
	ErrConflict = errors.New("already exists")
)
