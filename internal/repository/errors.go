package repository

import "errors"

var (
	// ErrEmailExists is returned when registering an email already in use.
	ErrEmailExists = errors.New("email already exists")
	// ErrNotFound is returned by updates/deletes that matched no row.
	ErrNotFound = errors.New("record not found")
)
