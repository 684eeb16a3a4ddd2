package gateway

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// TranslateOutput turns raw function output into a proxy response. Output carrying a
// statusCode is used as is; any other JSON object becomes a 500 with that object as body;
// anything else becomes a 500 with the raw output as plain text.
func TranslateOutput(output []byte) events.APIGatewayProxyResponse {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(output, &probe); err == nil {
		if hasStatusCode(probe["statusCode"]) {
			var resp events.APIGatewayProxyResponse
			if err := json.Unmarshal(output, &resp); err == nil {
				return resp
			}
		}

		if len(probe) > 0 {
			return events.APIGatewayProxyResponse{
				StatusCode: http.StatusInternalServerError,
				Headers:    map[string]string{"Content-Type": "application/json"},
				Body:       string(output),
			}
		}
	}

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusInternalServerError,
		Headers:    map[string]string{"Content-Type": "text/plain"},
		Body:       string(output),
	}
}

func hasStatusCode(raw json.RawMessage) bool {
	var code float64
	if err := json.Unmarshal(raw, &code); err != nil {
		return false
	}
	return code != 0
}

// ResponseBody returns the decoded body of a proxy response
func ResponseBody(resp events.APIGatewayProxyResponse) ([]byte, error) {
	if resp.IsBase64Encoded {
		return base64.StdEncoding.DecodeString(resp.Body)
	}
	return []byte(resp.Body), nil
}

// FormatJSON indents a JSON body by two spaces; other bodies are returned untouched
func FormatJSON(body []byte) []byte {
	var out bytes.Buffer
	if err := json.Indent(&out, body, "", "  "); err != nil {
		return body
	}
	return out.Bytes()
}
