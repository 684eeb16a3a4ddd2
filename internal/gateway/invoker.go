package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"serverless-examples/pkg/lambda"
)

// InvocationPath is where the runtime interface emulator accepts invocations
const InvocationPath = "/2015-03-31/functions/function/invocations"

// Invoker runs a function with a proxy event and returns its raw output
type Invoker interface {
	Invoke(ctx context.Context, event events.APIGatewayProxyRequest) ([]byte, error)
}

// EmulatorInvoker posts events to a runtime interface emulator
type EmulatorInvoker struct {
	url    string
	client *http.Client
}

// NewEmulatorInvoker creates an invoker for the emulator listening at baseURL
func NewEmulatorInvoker(baseURL string, timeout time.Duration) *EmulatorInvoker {
	return &EmulatorInvoker{
		url:    strings.TrimRight(baseURL, "/") + InvocationPath,
		client: &http.Client{Timeout: timeout},
	}
}

// Invoke implements Invoker
func (e *EmulatorInvoker) Invoke(ctx context.Context, event events.APIGatewayProxyRequest) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to encode event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to invoke %s: %w", e.url, err)
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}

// HandlerInvoker runs a proxy handler in-process
type HandlerInvoker struct {
	handler lambda.ProxyHandler
}

// NewHandlerInvoker wraps a proxy handler
func NewHandlerInvoker(handler lambda.ProxyHandler) *HandlerInvoker {
	return &HandlerInvoker{handler: handler}
}

// Invoke implements Invoker. A handler error is reported the way the runtime reports it.
func (h *HandlerInvoker) Invoke(ctx context.Context, event events.APIGatewayProxyRequest) ([]byte, error) {
	resp, err := h.handler(ctx, event)
	if err != nil {
		return json.Marshal(map[string]string{
			"errorMessage": err.Error(),
			"errorType":    fmt.Sprintf("%T", err),
		})
	}
	return json.Marshal(resp)
}
