package server

import (
	"context"
	"testing"

	"serverless-examples/internal/adapters/storage"
	"serverless-examples/internal/config"
)

func testConfig(mode config.RuntimeMode) *config.Config {
	return &config.Config{
		Mode: mode,
		AWS: config.AWSConfig{
			Region:               "us-east-1",
			LocalRegion:          "us-east-1",
			LocalAccessKeyID:     "somelocalkeyid",
			LocalSecretAccessKey: "somelocalaccesskey",
			DynamoDBLocalAddress: "http://ddb:8000",
			S3LocalAddress:       "http://host.docker.internal:4569",
		},
		Songs:   config.SongsConfig{Table: "Music", QueryErrorPolicy: config.QueryErrorEmpty},
		Upload:  config.UploadConfig{Bucket: "local-bucket", Key: "output"},
		Logging: config.LoggingConfig{Level: "error", Format: "json"},
	}
}

// TestNewContainer verifies that the container can be created successfully
func TestNewContainer(t *testing.T) {
	container, err := NewContainer(context.Background(), testConfig(config.ModeLocal))
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}

	if container.Logger == nil {
		t.Error("Logger is nil")
	}
	if container.Songs == nil {
		t.Error("Songs repository is nil")
	}
	if container.Resolver.Mode() != config.ModeLocal {
		t.Errorf("Expected local mode, got %v", container.Resolver.Mode())
	}

	uploads, ok := container.Uploads.(*storage.S3Storage)
	if !ok {
		t.Fatalf("Expected S3 upload storage, got %T", container.Uploads)
	}
	if uploads.Bucket() != "local-bucket" {
		t.Errorf("Expected bucket local-bucket, got %s", uploads.Bucket())
	}

	if err := container.Close(); err != nil {
		t.Errorf("Failed to close container: %v", err)
	}
}

func TestNewContainerRejectsBadLogLevel(t *testing.T) {
	cfg := testConfig(config.ModeProduction)
	cfg.Logging.Level = "loud"

	if _, err := NewContainer(context.Background(), cfg); err == nil {
		t.Error("Expected error for invalid log level")
	}
}

func TestLoadBasicSkipsAWSSettings(t *testing.T) {
	t.Setenv("AWS_PROFILE", "profile-that-does-not-exist")
	t.Setenv("S3_LOCAL_ENDPOINT", "not a url")

	container, err := LoadBasic(context.Background())
	if err != nil {
		t.Fatalf("Failed to load basic container: %v", err)
	}
	if container.Logger == nil {
		t.Error("Logger is nil")
	}
	if container.Resolver != nil || container.Songs != nil || container.Uploads != nil {
		t.Error("Basic container should not build AWS clients")
	}
	if err := container.Close(); err != nil {
		t.Errorf("Failed to close container: %v", err)
	}

	if _, err := Load(context.Background()); err == nil {
		t.Error("Expected full load to reject the malformed endpoint")
	}
}
