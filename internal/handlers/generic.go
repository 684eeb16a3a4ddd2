package handlers

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"serverless-examples/internal/config"
	"serverless-examples/internal/payload"
)

// Defaults used when a field is absent from the event
const (
	DefaultFirstName   = "world"
	DefaultPersonFirst = "Kanji"
	DefaultPersonLast  = "Tanaka"
)

// GreetingResponse is the output of the greeting function
type GreetingResponse struct {
	Message  string `json:"message"`
	Greeting string `json:"greeting"`
	Status   string `json:"status"`
}

// GreetingHandler greets the firstName of a generic payload
type GreetingHandler struct {
	display config.DisplayConfig
	logger  logrus.FieldLogger
}

// NewGreetingHandler creates a greeting handler with the configured display text
func NewGreetingHandler(display config.DisplayConfig, logger logrus.FieldLogger) *GreetingHandler {
	return &GreetingHandler{
		display: display,
		logger:  logger,
	}
}

// Handle never fails: a missing or non-string firstName falls back to the default
func (h *GreetingHandler) Handle(ctx context.Context, event payload.Payload) (GreetingResponse, error) {
	firstName, ok := payload.String(event, "firstName")
	if !ok {
		invocationLogger(ctx, h.logger, "greeting").Debug("firstName missing, using default")
		firstName = DefaultFirstName
	}

	return GreetingResponse{
		Message:  fmt.Sprintf("Hi, %s!", firstName),
		Greeting: h.display.Greeting,
		Status:   h.display.Status,
	}, nil
}

// Person is a record with two optional names
type Person struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

// PersonHandler greets Person records
type PersonHandler struct {
	logger logrus.FieldLogger
}

// NewPersonHandler creates a person handler
func NewPersonHandler(logger logrus.FieldLogger) *PersonHandler {
	return &PersonHandler{logger: logger}
}

// FullName greets a person by both names
func (h *PersonHandler) FullName(ctx context.Context, person Person) (MessageResponse, error) {
	if person.FirstName == nil || person.LastName == nil {
		invocationLogger(ctx, h.logger, "fullname").Debug("name missing, using default")
	}
	first := payload.Optional(person.FirstName, DefaultPersonFirst)
	last := payload.Optional(person.LastName, DefaultPersonLast)
	return MessageResponse{Message: fmt.Sprintf("Hi, %s %s!", first, last)}, nil
}

// LastName greets a person by last name only
func (h *PersonHandler) LastName(ctx context.Context, person Person) (MessageResponse, error) {
	if person.LastName == nil {
		invocationLogger(ctx, h.logger, "lastname").Debug("lastName missing, using default")
	}
	last := payload.Optional(person.LastName, DefaultPersonLast)
	return MessageResponse{Message: fmt.Sprintf("Hi, %s!", last)}, nil
}
