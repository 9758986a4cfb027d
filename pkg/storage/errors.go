package storage

import "errors"

// Storage errors returned by System implementations.
var (
	// ErrNotFound indicates the requested blob does not exist.
	ErrNotFound = errors.New("storage: key not found")

	// ErrPermissionDenied indicates insufficient permissions to access the blob.
	ErrPermissionDenied = errors.New("storage: permission denied")

	// ErrInvalidKey covers empty bucket or blob names and path traversal attempts.
	ErrInvalidKey = errors.New("storage: invalid key")
)
