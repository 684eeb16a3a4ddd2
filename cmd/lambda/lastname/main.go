package main

import (
	"context"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"serverless-examples/internal/handlers"
	"serverless-examples/pkg/lambda"
	"serverless-examples/pkg/server"
)

var rt = lambda.NewRuntime(server.LoadBasic)

func handler(ctx context.Context, person handlers.Person) (handlers.MessageResponse, error) {
	container, err := rt.Container(ctx)
	if err != nil {
		return handlers.MessageResponse{}, err
	}

	return handlers.NewPersonHandler(container.Logger).LastName(ctx, person)
}

func main() {
	awslambda.Start(handler)
}
