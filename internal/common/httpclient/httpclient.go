// Package httpclient provides a minimal HTTP client for issuing GET
// requests against a REST API. It handles URL construction from a base
// URL, path and query parameters, reads the full response body, and
// separates transport failures from server error responses.
package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
)

// HTTPError represents an error response from the server with HTTP status
// code and message.
type HTTPError struct {
	StatusCode int    // HTTP status code of the error
	Message    string // Error message or response body
}

// Error implements the error interface for HTTPError.
func (e *HTTPError) Error() string {
	return e.Message
}

// Response holds the outcome of a successful request: the status code,
// the response headers, and the fully read body.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Client represents a client for making GET requests to a REST API server.
// It is immutable after construction and safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new Client for the given base URL. If httpClient is
// nil, http.DefaultClient is used.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// RequestOptions contains options for making a request. Path is required,
// Query is optional.
type RequestOptions struct {
	Path  string     // API endpoint path, joined onto the base URL
	Query url.Values // Optional query parameters
}

// Get issues a GET request with the given options and returns the response
// with its body fully read. A status code of 400 or above is returned as a
// *HTTPError carrying the body text. Transport-level failures (connection,
// timeout, DNS) are returned unwrapped so callers can classify them.
// Cancellation and timeouts are controlled by the caller's context and by
// the underlying http.Client.
func (c *Client) Get(ctx context.Context, opts RequestOptions) (*Response, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	u.Path = path.Join(u.Path, opts.Path)
	if len(opts.Query) > 0 {
		u.RawQuery = opts.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("%s %s", resp.Status, string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
