package main

import (
	"context"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"serverless-examples/internal/handlers"
	"serverless-examples/internal/payload"
	"serverless-examples/pkg/lambda"
	"serverless-examples/pkg/server"
)

var rt = lambda.NewRuntime(server.Load)

func handler(ctx context.Context, event payload.Payload) (handlers.StatusResponse, error) {
	container, err := rt.Container(ctx)
	if err != nil {
		return handlers.StatusResponse{}, err
	}

	h := handlers.NewUploadHandler(container.Uploads, container.Config.Upload.Key, container.Logger)
	return h.Handle(ctx, event)
}

func main() {
	awslambda.Start(handler)
}
