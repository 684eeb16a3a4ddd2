package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"serverless-examples/pkg/lambda"
)

// IDResponse echoes a numeric id
type IDResponse struct {
	ID uint32 `json:"id"`
}

// ContentTypeForm is the content type of URL-encoded form bodies
const ContentTypeForm = "application/x-www-form-urlencoded"

// PersonBody is the body accepted by the body handler. Both keys must be present;
// empty values are allowed.
type PersonBody struct {
	FirstName *string `json:"firstName" validate:"required"`
	LastName  *string `json:"lastName" validate:"required"`
}

// HTTPHandler handles API Gateway proxy requests
type HTTPHandler struct {
	validator *validator.Validate
	logger    logrus.FieldLogger
}

// NewHTTPHandler creates a new HTTP handler
func NewHTTPHandler(logger logrus.FieldLogger) *HTTPHandler {
	return &HTTPHandler{
		validator: validator.New(),
		logger:    logger,
	}
}

// Hello always greets the world
func (h *HTTPHandler) Hello(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	return lambda.JSON(http.StatusOK, MessageResponse{Message: "Hello World!"})
}

// Name greets the firstName path parameter
func (h *HTTPHandler) Name(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	firstName, ok := req.PathParam("firstName")
	if !ok {
		return h.badRequest(ctx, "name", "I can't find your name")
	}
	return lambda.JSON(http.StatusOK, MessageResponse{Message: fmt.Sprintf("Hi, %s!", firstName)})
}

// Paths echoes the id path parameter as a number
func (h *HTTPHandler) Paths(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	raw, ok := req.PathParam("id")
	if !ok {
		return h.badRequest(ctx, "paths", "No id provided")
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return h.badRequest(ctx, "paths", fmt.Sprintf("Invalid id: %s", raw))
	}

	return lambda.JSON(http.StatusOK, IDResponse{ID: uint32(id)})
}

// JSONBody greets the person in a JSON or form body. A missing body or an
// unsupported content type is not an error.
func (h *HTTPHandler) JSONBody(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	if len(bytes.TrimSpace(req.Body)) == 0 {
		return lambda.JSON(http.StatusOK, MessageResponse{Message: "No one found"})
	}

	var person PersonBody
	contentType := strings.ToLower(req.Header("Content-Type"))
	switch {
	case strings.HasPrefix(contentType, lambda.ContentTypeJSON):
		if err := json.Unmarshal(req.Body, &person); err != nil {
			return h.badRequest(ctx, "jsonbody", fmt.Sprintf("Invalid request body: %v", err))
		}
	case strings.HasPrefix(contentType, ContentTypeForm):
		values, err := url.ParseQuery(string(req.Body))
		if err != nil {
			return h.badRequest(ctx, "jsonbody", fmt.Sprintf("Invalid request body: %v", err))
		}
		person = personFromForm(values)
	default:
		invocationLogger(ctx, h.logger, "jsonbody").WithField("content_type", contentType).Debug("Body ignored")
		return lambda.JSON(http.StatusOK, MessageResponse{Message: "No one found"})
	}

	if err := h.validator.Struct(person); err != nil {
		return h.badRequest(ctx, "jsonbody", describeValidation(err))
	}

	return lambda.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Hi, %s %s!", *person.FirstName, *person.LastName),
	})
}

func personFromForm(values url.Values) PersonBody {
	var person PersonBody
	if values.Has("firstName") {
		first := values.Get("firstName")
		person.FirstName = &first
	}
	if values.Has("lastName") {
		last := values.Get("lastName")
		person.LastName = &last
	}
	return person
}

func (h *HTTPHandler) badRequest(ctx context.Context, function, message string) (*lambda.Response, error) {
	invocationLogger(ctx, h.logger, function).WithField("reason", message).Warn("Rejected request")
	return lambda.JSON(http.StatusBadRequest, MessageResponse{Message: message})
}

// describeValidation lists missing fields by their JSON names
func describeValidation(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, jsonFieldName(fe.Field()))
	}
	return fmt.Sprintf("Missing required fields: %s", strings.Join(fields, ", "))
}

func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
