// Package gateway serves API Gateway proxy events with the gin engine so the
// Lambda deployment answers exactly the same routes as the HTTP server.
package gateway

import (
	"context"
	"encoding/json"
	"github.com/aws/aws-lambda-go/events"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"log"
	"maps"
	"net/http"
	"strings"
)

const requestIDHeader = "X-Request-ID"

type Proxy struct {
	adapter *ginadapter.GinLambda
}

func New(engine *gin.Engine) *Proxy {
	return &Proxy{adapter: ginadapter.New(engine)}
}

// Handle serves one API Gateway proxy request. Events that cannot be turned
// into an HTTP request are answered with 400.
func (p *Proxy) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	resp, err := p.adapter.ProxyWithContext(ctx, withRequestID(req))
	if err != nil {
		log.Printf("proxy %s %s: %v", req.HTTPMethod, req.Path, err)
		return errorResponse(http.StatusBadRequest, "Invalid request")
	}
	return resp, nil
}

// withRequestID forwards the API Gateway request id as X-Request-ID unless
// the caller already sent one.
func withRequestID(req events.APIGatewayProxyRequest) events.APIGatewayProxyRequest {
	id := req.RequestContext.RequestID
	if id == "" || hasHeader(req, requestIDHeader) {
		return req
	}
	// The adapter reads MultiValueHeaders when present, Headers otherwise.
	if req.MultiValueHeaders != nil {
		headers := make(map[string][]string, len(req.MultiValueHeaders)+1)
		maps.Copy(headers, req.MultiValueHeaders)
		headers[requestIDHeader] = []string{id}
		req.MultiValueHeaders = headers
		return req
	}
	headers := make(map[string]string, len(req.Headers)+1)
	maps.Copy(headers, req.Headers)
	headers[requestIDHeader] = id
	req.Headers = headers
	return req
}

func hasHeader(req events.APIGatewayProxyRequest, name string) bool {
	for k := range req.MultiValueHeaders {
		if strings.EqualFold(k, name) {
			return true
		}
	}
	for k := range req.Headers {
		if strings.EqualFold(k, name) {
			return true
		}
	}
	return false
}

func errorResponse(status int, message string) (events.APIGatewayProxyResponse, error) {
	body, _ := json.Marshal(map[string]string{
		"error": message,
	})
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}, nil
}
