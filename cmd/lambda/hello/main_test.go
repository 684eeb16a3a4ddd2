package main

import (
	"context"
	"testing"

	"github.com/aws/aws-lambda-go/events"
)

func TestHandlerWithoutAWSConfiguration(t *testing.T) {
	t.Setenv("AWS_PROFILE", "profile-that-does-not-exist")
	t.Setenv("S3_LOCAL_ENDPOINT", "not a url")
	t.Setenv("LOG_LEVEL", "error")

	resp, err := handler(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: "GET", Path: "/"})
	if err != nil {
		t.Fatalf("Handler failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}
	if resp.Body != `{"message":"Hello World!"}` {
		t.Errorf("Unexpected body %s", resp.Body)
	}
}
