package storage

import (
	"context"
)

// StoreOptions provides options for storing objects
type StoreOptions struct {
	ContentType string            `json:"content_type,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	// Overwrite false refuses to replace an existing object. The S3 implementation checks
	// before it writes, so two concurrent writers of a new key can both succeed.
	Overwrite bool `json:"overwrite,omitempty"`
}

// ObjectStorage provides an abstraction over a bucket of byte blobs.
// Nil StoreOptions overwrite existing objects.
type ObjectStorage interface {
	// Store writes data under key
	Store(ctx context.Context, key string, data []byte, opts *StoreOptions) error

	// Retrieve reads the object stored under key
	Retrieve(ctx context.Context, key string) ([]byte, error)

	// Exists checks if an object exists at the given key
	Exists(ctx context.Context, key string) (bool, error)

	// Delete removes the object stored under key
	Delete(ctx context.Context, key string) error

	// Close cleans up any resources used by the implementation
	Close() error
}

// StorageConfig represents configuration for storage providers
type StorageConfig struct {
	Type   string `json:"type" yaml:"type"`     // "s3" or "mock"
	Bucket string `json:"bucket" yaml:"bucket"` // For cloud storage
}
