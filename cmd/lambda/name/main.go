package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"serverless-examples/internal/handlers"
	"serverless-examples/pkg/lambda"
	"serverless-examples/pkg/server"
)

var rt = lambda.NewRuntime(server.LoadBasic)

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := rt.Container(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return lambda.Proxy(handlers.NewHTTPHandler(container.Logger).Name)(ctx, event)
}

func main() {
	awslambda.Start(handler)
}
