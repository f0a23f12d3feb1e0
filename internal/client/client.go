// Package client is the portal's gateway to the API. Every call goes
// through Request.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"internportal/internal/middleware"
)

// TransportError reports a non-2xx status or an unreachable server.
// Status is zero when no response was received.
type TransportError struct {
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("network error: %v", e.Err)
	}
	return fmt.Sprintf("HTTP error! status: %d", e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Options mirror the subset of fetch options the portal uses.
type Options struct {
	Method  string
	Headers http.Header
	Body    any
}

// Client targets one API base URL such as http://localhost:3001/api.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTPClient: httpClient}
}

// Request calls endpoint and decodes the JSON body into T. The body is
// not validated beyond JSON syntax.
func Request[T any](ctx context.Context, c *Client, endpoint string, opts Options) (T, error) {
	var out T

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	var body io.Reader
	if opts.Body != nil {
		b, err := json.Marshal(opts.Body)
		if err != nil {
			return out, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+endpoint, body)
	if err != nil {
		return out, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// Let the API log and rate limit by the viewer, not by the portal.
	if id := middleware.RequestIDFromContext(ctx); id != "" {
		req.Header.Set(middleware.RequestIDHeader, id)
	}
	if ip := middleware.ClientIPFromContext(ctx); ip != "" {
		req.Header.Set("X-Forwarded-For", ip)
	}
	for k, vs := range opts.Headers {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return out, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return out, &TransportError{Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return out, nil
}
