package tika

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"isccgen/internal/config"
	"isccgen/internal/services"
)

// HTTPDoer describes the HTTP client used by the Tika client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Endpoint paths exposed by the Tika server.
const (
	PathCheck    = "/tika"
	PathDetect   = "/detect/stream"
	PathText     = "/tika"
	PathLanguage = "/language/stream"
	PathMeta     = "/meta"
)

const (
	acceptText = "text/plain"
	acceptJSON = "application/json"
)

// Client issues requests against a single Tika server.
type Client struct {
	baseURL string
	client  HTTPDoer
}

// NewClient returns a client for the server described by the backend config.
func NewClient(backend config.BackendConfig, client HTTPDoer) *Client {
	return NewClientWithBaseURL(backend.BaseURL(), client)
}

// NewClientWithBaseURL returns a client rooted at baseURL.
func NewClientWithBaseURL(baseURL string, client HTTPDoer) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client:  client,
	}
}

// BaseURL reports the server root this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Check probes the server and returns its greeting.
func (c *Client) Check(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+PathCheck, nil)
	if err != nil {
		return "", fmt.Errorf("build tika check request: %w", err)
	}
	body, err := c.do(req, "check")
	if err != nil {
		return "", services.Wrap(services.ErrUnavailable, "tika", "check", "server unreachable at "+c.baseURL, err)
	}
	return string(body), nil
}

// Detect returns the MIME type the server assigns to the file.
func (c *Client) Detect(ctx context.Context, path string) (string, error) {
	body, err := c.putFile(ctx, PathDetect, acceptText, path, "detect")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

// Text returns the plain text extracted from the file.
func (c *Client) Text(ctx context.Context, path string) (string, error) {
	body, err := c.putFile(ctx, PathText, acceptText, path, "text")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Language returns the language code the server detects for the file.
func (c *Client) Language(ctx context.Context, path string) (string, error) {
	body, err := c.putFile(ctx, PathLanguage, acceptText, path, "language")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

// Meta returns the raw JSON metadata document for the file.
func (c *Client) Meta(ctx context.Context, path string) ([]byte, error) {
	return c.putFile(ctx, PathMeta, acceptJSON, path, "meta")
}

func (c *Client) putFile(ctx context.Context, endpoint, accept, path, operation string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s for tika %s: %w", path, operation, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("build tika %s request: %w", operation, err)
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("Content-Type", "application/octet-stream")

	body, err := c.do(req, operation)
	if err != nil {
		return nil, services.Wrap(services.ErrExtraction, "tika", operation, "", err)
	}
	return body, nil
}

func (c *Client) do(req *http.Request, operation string) ([]byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tika %s: %w", operation, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read tika %s response: %w", operation, err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("tika %s %s returned %d", req.Method, req.URL.Path, resp.StatusCode)
	}
	return body, nil
}
