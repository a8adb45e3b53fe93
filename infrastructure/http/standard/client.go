// ABOUTME: Standard HTTP client implementation backed by net/http
// ABOUTME: Performs single-shot requests; retry policy belongs to the callers that need one

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"leadscout-api/core/interfaces"
)

const defaultUserAgent = "LeadScoutAPI/1.0"

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client    *http.Client
	userAgent string
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout.
// The timeout is a hard ceiling; per-request contexts may impose shorter ones.
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}
}

// NewStandardHTTPClientWithUserAgent creates a client that identifies itself
// with the given User-Agent on every request
func NewStandardHTTPClientWithUserAgent(timeout time.Duration, userAgent string) *StandardHTTPClient {
	c := NewStandardHTTPClient(timeout)
	if userAgent != "" {
		c.userAgent = userAgent
	}
	return c
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
