package main

import (
	"context"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"serverless-examples/internal/handlers"
	"serverless-examples/internal/payload"
	"serverless-examples/internal/songs"
	"serverless-examples/pkg/lambda"
	"serverless-examples/pkg/server"
)

var rt = lambda.NewRuntime(server.Load)

func handler(ctx context.Context, event payload.Payload) ([]songs.Song, error) {
	container, err := rt.Container(ctx)
	if err != nil {
		return nil, err
	}

	h := handlers.NewSongsHandler(container.Songs, container.Config.Songs.QueryErrorPolicy, container.Logger)
	return h.Handle(ctx, event)
}

func main() {
	awslambda.Start(handler)
}
