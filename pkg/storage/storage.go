package storage

import (
	"context"

	"github.com/JaimeStill/pdf-tools/pkg/lifecycle"
)

// System stages binary data under string keys and exposes the
// on-disk path of each staged key.
type System interface {
	// Store writes data at key, replacing any existing content.
	// Returns ErrInvalidKey if the key is empty or contains path traversal.
	Store(ctx context.Context, key string, data []byte) error

	// Path returns the absolute filesystem path of a stored key.
	// Returns ErrNotFound if nothing is stored at key.
	Path(ctx context.Context, key string) (string, error)

	// Delete removes the data at key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Start creates the staging directory and registers its removal
	// with the coordinator's shutdown.
	Start(lc *lifecycle.Coordinator) error
}
