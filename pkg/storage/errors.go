// Package storage stages short-lived files on the local filesystem for tools
// that only accept a file path. Nothing staged here outlives the request that
// created it. Each process stages under its own directory inside the base
// path and removes that directory on shutdown.
package storage

import "errors"

var (
	// ErrNotFound indicates the requested key does not exist in storage.
	ErrNotFound = errors.New("storage: key not found")

	// ErrPermissionDenied indicates insufficient permissions to access the key.
	ErrPermissionDenied = errors.New("storage: permission denied")

	// ErrInvalidKey indicates the key is empty or escapes the base path.
	ErrInvalidKey = errors.New("storage: invalid key")

	// ErrNotStarted indicates the system was used before Start created
	// its staging directory.
	ErrNotStarted = errors.New("storage: not started")
)
