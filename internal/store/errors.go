package store

import (
	"errors"
)

// Erreurs métier attendues, jamais fatales. Les handlers les traduisent en statut HTTP.
var (
	ErrNotFound         = errors.New("not found")
	ErrCapacity         = errors.New("workspace is full")
	ErrAlreadyCompleted = errors.New("challenge already completed")
	ErrInvalidInput     = errors.New("invalid input")
)
