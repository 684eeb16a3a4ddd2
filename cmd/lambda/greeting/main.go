package main

import (
	"context"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"serverless-examples/internal/handlers"
	"serverless-examples/internal/payload"
	"serverless-examples/pkg/lambda"
	"serverless-examples/pkg/server"
)

var rt = lambda.NewRuntime(server.LoadBasic)

func handler(ctx context.Context, event payload.Payload) (handlers.GreetingResponse, error) {
	container, err := rt.Container(ctx)
	if err != nil {
		return handlers.GreetingResponse{}, err
	}

	return handlers.NewGreetingHandler(container.Config.Display, container.Logger).Handle(ctx, event)
}

func main() {
	awslambda.Start(handler)
}
