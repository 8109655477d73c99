package repository

import "context"

// SequenceRepository hands out monotonically increasing numbers per key.
type SequenceRepository interface {
	// Next atomically increments the counter for key and returns the new value, starting at 1.
	Next(ctx context.Context, key string) (int64, error)
}
