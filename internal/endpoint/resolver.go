package endpoint

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"serverless-examples/internal/config"
)

// Service identifies a downstream AWS service
type Service string

const (
	ServiceDynamoDB Service = "dynamodb"
	ServiceS3       Service = "s3"
)

// EndpointConfig describes where a service client should send requests
type EndpointConfig struct {
	Mode    config.RuntimeMode
	Service Service
	// LocalAddress is set only in local mode
	LocalAddress string
}

// UsesDefaultDiscovery reports whether the SDK's default chain picks the endpoint
func (e EndpointConfig) UsesDefaultDiscovery() bool {
	return !e.Mode.IsLocal()
}

// Resolver produces client configuration for the process's runtime mode.
// It is built once at cold start and is read-only afterwards.
type Resolver struct {
	mode        config.RuntimeMode
	local       map[Service]string
	region      string
	localRegion string
	localCreds  aws.CredentialsProvider
}

// NewResolver creates a resolver from process configuration
func NewResolver(cfg *config.Config) *Resolver {
	return &Resolver{
		mode: cfg.Mode,
		local: map[Service]string{
			ServiceDynamoDB: cfg.AWS.DynamoDBLocalAddress,
			ServiceS3:       cfg.AWS.S3LocalAddress,
		},
		region:      cfg.AWS.Region,
		localRegion: cfg.AWS.LocalRegion,
		localCreds: credentials.NewStaticCredentialsProvider(
			cfg.AWS.LocalAccessKeyID,
			cfg.AWS.LocalSecretAccessKey,
			"",
		),
	}
}

// Mode returns the runtime mode every client of this resolver shares
func (r *Resolver) Mode() config.RuntimeMode {
	return r.mode
}

// Endpoint decides the endpoint for a service without touching the SDK
func (r *Resolver) Endpoint(service Service) EndpointConfig {
	ep := EndpointConfig{Mode: r.mode, Service: service}
	if r.mode.IsLocal() {
		ep.LocalAddress = r.local[service]
	}
	return ep
}

// AWSConfig loads SDK configuration for a service. Production mode uses the default
// credential and region chain; local mode pins the base endpoint, region and credentials.
func (r *Resolver) AWSConfig(ctx context.Context, service Service) (aws.Config, error) {
	ep := r.Endpoint(service)

	var opts []func(*awsconfig.LoadOptions) error
	if ep.UsesDefaultDiscovery() {
		if r.region != "" {
			opts = append(opts, awsconfig.WithRegion(r.region))
		}
	} else {
		if ep.LocalAddress == "" {
			return aws.Config{}, fmt.Errorf("no local address configured for %s", service)
		}
		opts = append(opts,
			awsconfig.WithBaseEndpoint(ep.LocalAddress),
			awsconfig.WithRegion(r.localRegion),
			awsconfig.WithCredentialsProvider(r.localCreds),
		)
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load %s config in %s mode: %w", service, r.mode, err)
	}

	return cfg, nil
}
