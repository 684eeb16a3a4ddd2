package server

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"serverless-examples/internal/adapters/storage"
	"serverless-examples/internal/config"
	"serverless-examples/internal/endpoint"
	"serverless-examples/internal/songs"
)

// Container holds all process dependencies, built once per cold start
type Container struct {
	Config   *config.Config
	Logger   *logrus.Logger
	Resolver *endpoint.Resolver
	Songs    *songs.Repository
	Uploads  storage.ObjectStorage
}

// Load reads configuration from the environment and builds a container
func Load(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return NewContainer(ctx, cfg)
}

// LoadBasic reads configuration and builds a container holding only config and logger.
// Functions that never reach AWS use it so endpoint settings cannot break them.
func LoadBasic(ctx context.Context) (*Container, error) {
	cfg, err := config.LoadBasic()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return NewBasicContainer(cfg)
}

// NewBasicContainer creates a container without resolver, repository or uploads
func NewBasicContainer(cfg *config.Config) (*Container, error) {
	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &Container{
		Config: cfg,
		Logger: logger,
	}, nil
}

// NewContainer creates a new dependency injection container. Every client shares one
// resolver so they all agree on the runtime mode.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	basic, err := NewBasicContainer(cfg)
	if err != nil {
		return nil, err
	}
	logger := basic.Logger

	resolver := endpoint.NewResolver(cfg)

	ddb, err := endpoint.NewDynamoDBClient(ctx, resolver)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb client: %w", err)
	}

	s3Client, err := endpoint.NewS3Client(ctx, resolver)
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}

	uploads, err := storage.NewFactory(s3Client).Create(&storage.StorageConfig{
		Type:   string(storage.StorageTypeS3),
		Bucket: cfg.Upload.Bucket,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create upload storage: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"mode":       resolver.Mode().String(),
		"deployment": config.GetDeploymentMode(),
	}).Info("Endpoint resolver initialized")

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Resolver: resolver,
		Songs:    songs.NewRepository(ddb, cfg.Songs.Table),
		Uploads:  uploads,
	}, nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.Uploads != nil {
		if err := c.Uploads.Close(); err != nil {
			return fmt.Errorf("failed to close upload storage: %w", err)
		}
	}
	return nil
}
