package service

import (
	"context"
	"io"

	"petwelfare/internal/errors"
)

// ErrFileTooLarge is returned by Save when the input exceeds the configured size limit.
var ErrFileTooLarge = errors.New("file exceeds maximum upload size")

// StoredFile describes an object written to file storage.
type StoredFile struct {
	Key      string `json:"key"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
	Checksum string `json:"checksum"`
}

// FileStorage persists uploads and generated documents under slash separated keys.
type FileStorage interface {
	// Save writes r under key and returns its public URL.
	Save(ctx context.Context, key, contentType string, r io.Reader) (*StoredFile, error)

	// Exists reports whether key is present.
	Exists(ctx context.Context, key string) (bool, error)

	// Delete removes key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// KeyFromURL maps a public URL produced by Save back to its key.
	KeyFromURL(url string) (string, bool)

	// URL returns the public URL for key.
	URL(key string) string
}
