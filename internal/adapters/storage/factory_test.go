package storage

import (
	"context"
	"testing"
)

func TestFactory(t *testing.T) {
	t.Run("CreateMockStorage", func(t *testing.T) {
		factory := NewFactory(nil)

		storage, err := factory.Create(&StorageConfig{Type: "mock"})
		if err != nil {
			t.Fatalf("Failed to create mock storage: %v", err)
		}
		defer storage.Close()

		ctx := context.Background()
		if err := storage.Store(ctx, "test.txt", []byte("test"), nil); err != nil {
			t.Fatalf("Store failed: %v", err)
		}
	})

	t.Run("CreateS3Storage", func(t *testing.T) {
		factory := NewFactory(newFakeS3())

		storage, err := factory.Create(&StorageConfig{Type: "S3", Bucket: "local-bucket"})
		if err != nil {
			t.Fatalf("Failed to create s3 storage: %v", err)
		}

		s3Storage, ok := storage.(*S3Storage)
		if !ok {
			t.Fatalf("Expected *S3Storage, got %T", storage)
		}
		if s3Storage.Bucket() != "local-bucket" {
			t.Errorf("Expected bucket local-bucket, got %s", s3Storage.Bucket())
		}
	})

	t.Run("S3RequiresClientAndBucket", func(t *testing.T) {
		if _, err := NewFactory(nil).Create(&StorageConfig{Type: "s3", Bucket: "b"}); err == nil {
			t.Error("Expected error without client")
		}
		if _, err := NewFactory(newFakeS3()).Create(&StorageConfig{Type: "s3"}); err == nil {
			t.Error("Expected error without bucket")
		}
	})

	t.Run("UnsupportedType", func(t *testing.T) {
		if _, err := NewFactory(nil).Create(&StorageConfig{Type: "gcs"}); err == nil {
			t.Error("Expected error for unsupported type")
		}
		if _, err := NewFactory(nil).Create(nil); err == nil {
			t.Error("Expected error for nil config")
		}
	})
}
