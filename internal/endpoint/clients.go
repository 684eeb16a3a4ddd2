package endpoint

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// NewDynamoDBClient creates a DynamoDB client bound to the resolved endpoint
func NewDynamoDBClient(ctx context.Context, r *Resolver) (*dynamodb.Client, error) {
	cfg, err := r.AWSConfig(ctx, ServiceDynamoDB)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(cfg), nil
}

// NewS3Client creates an S3 client bound to the resolved endpoint.
// Emulators only serve path-style bucket addressing.
func NewS3Client(ctx context.Context, r *Resolver) (*s3.Client, error) {
	cfg, err := r.AWSConfig(ctx, ServiceS3)
	if err != nil {
		return nil, err
	}
	local := r.Mode().IsLocal()
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = local
	}), nil
}
