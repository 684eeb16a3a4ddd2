package gateway

import (
	"encoding/base64"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"
)

// NewProxyEvent translates an HTTP request matched by route into an API Gateway proxy event
func NewProxyEvent(route *Route, req *http.Request, body []byte, requestID string) events.APIGatewayProxyRequest {
	headers := make(map[string]string, len(req.Header))
	multiHeaders := make(map[string][]string, len(req.Header))
	for name, values := range req.Header {
		if len(values) == 0 {
			continue
		}
		headers[name] = values[0]
		multiHeaders[name] = values
	}
	if req.Host != "" {
		headers["Host"] = req.Host
		multiHeaders["Host"] = []string{req.Host}
	}

	query := req.URL.Query()
	event := events.APIGatewayProxyRequest{
		Resource:                        route.Config().Path,
		Path:                            req.URL.Path,
		HTTPMethod:                      req.Method,
		Headers:                         headers,
		MultiValueHeaders:               multiHeaders,
		QueryStringParameters:           route.QueryParams(query),
		MultiValueQueryStringParameters: route.MultiQueryParams(query),
		PathParameters:                  route.PathParams(req.URL.EscapedPath()),
		StageVariables:                  map[string]string{},
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID:        requestID,
			ResourcePath:     route.Config().Path,
			HTTPMethod:       req.Method,
			Path:             req.URL.Path,
			Stage:            "local",
			RequestTimeEpoch: time.Now().UnixMilli(),
			Identity: events.APIGatewayRequestIdentity{
				SourceIP:  clientIP(req),
				UserAgent: req.UserAgent(),
			},
		},
	}

	if len(body) > 0 {
		if utf8.Valid(body) {
			event.Body = string(body)
		} else {
			event.Body = base64.StdEncoding.EncodeToString(body)
			event.IsBase64Encoded = true
		}
	}

	return event
}

func clientIP(req *http.Request) string {
	if forwarded := req.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	return req.RemoteAddr
}
