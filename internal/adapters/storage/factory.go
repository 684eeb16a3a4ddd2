package storage

import (
	"fmt"
	"strings"
)

// StorageType represents the type of storage implementation
type StorageType string

const (
	StorageTypeS3   StorageType = "s3"
	StorageTypeMock StorageType = "mock"
)

// Factory creates ObjectStorage instances based on configuration
type Factory struct {
	s3Client S3API
}

// NewFactory creates a new storage factory. s3Client may be nil when only mock storage is needed.
func NewFactory(s3Client S3API) *Factory {
	return &Factory{
		s3Client: s3Client,
	}
}

// Create creates an ObjectStorage instance based on the provided configuration
func (f *Factory) Create(config *StorageConfig) (ObjectStorage, error) {
	if config == nil {
		return nil, fmt.Errorf("storage config is required")
	}

	var storage ObjectStorage
	var err error

	switch StorageType(strings.ToLower(config.Type)) {
	case StorageTypeS3:
		storage, err = f.createS3Storage(config)
	case StorageTypeMock:
		storage = NewMockStorage()
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", config.Type)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create %s storage: %w", config.Type, err)
	}

	return storage, nil
}

func (f *Factory) createS3Storage(config *StorageConfig) (ObjectStorage, error) {
	if f.s3Client == nil {
		return nil, fmt.Errorf("s3 client is required")
	}
	if config.Bucket == "" {
		return nil, fmt.Errorf("bucket is required")
	}
	return NewS3Storage(f.s3Client, config.Bucket), nil
}
