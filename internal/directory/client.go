// Package directory provides an HTTP client for the directory service's
// public API-key endpoints.
package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultRequestTimeout = 10 * time.Second

// ErrRequestSetup indicates the upstream request could not be built.
var ErrRequestSetup = errors.New("failed to build directory request")

// ErrNoResponse indicates the request was sent but no response arrived.
var ErrNoResponse = errors.New("no response from directory service")

// Response carries an upstream reply verbatim so callers can relay it.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Client calls the directory service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// New constructs a Client for the given base URL, e.g. "http://localhost:3001".
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultRequestTimeout},
	}
}

// FetchProfile forwards an API key to the directory profile endpoint.
// The key travels in the JSON body, matching the upstream contract.
func (c *Client) FetchProfile(ctx context.Context, apiKey string) (Response, error) {
	payload, err := json.Marshal(map[string]string{"api_key": apiKey})
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrRequestSetup, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/public/profile", bytes.NewReader(payload))
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrRequestSetup, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// FetchCandidates forwards an API key to the directory candidate endpoint.
// The key travels as a query parameter, matching the upstream contract.
func (c *Client) FetchCandidates(ctx context.Context, apiKey string) (Response, error) {
	endpoint := c.baseURL + "/api/public/candidate?api_key=" + url.QueryEscape(apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrRequestSetup, err)
	}

	return c.do(req)
}

// do executes the request and captures the reply verbatim. Any HTTP
// status is a valid response; only transport failures are errors.
func (c *Client) do(req *http.Request) (Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrNoResponse, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrNoResponse, err)
	}

	return Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
