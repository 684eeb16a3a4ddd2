package handlers

import (
	"context"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"
)

// MessageResponse is the body of every message-only response
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse reports the outcome of a write
type StatusResponse struct {
	Status string `json:"status"`
}

// invocationLogger tags log lines with the function name and the Lambda request id
func invocationLogger(ctx context.Context, logger logrus.FieldLogger, function string) logrus.FieldLogger {
	entry := logger.WithField("function", function)
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		entry = entry.WithField("aws_request_id", lc.AwsRequestID)
	}
	return entry
}
