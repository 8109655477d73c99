package repository

import "github.com/pkg/errors"

// Errors shared by every repository implementation.
var (
	// ErrNotFound is returned when no row matches the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("record already exists")
	// ErrInsufficientStock is returned when a conditional stock update matches no row.
	ErrInsufficientStock = errors.New("insufficient stock")
)
