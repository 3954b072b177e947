// Package api is the HTTP client for the beatdeck community service.
package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultBaseURL = "https://api.beatdeck.dev/v1"

// ErrStatus is returned when the service answers with a non-200 status.
type ErrStatus struct {
	Code int
	URL  string
}

func (e *ErrStatus) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.Code, e.URL)
}

// Client talks to the beatdeck service. Every client carries a session id
// sent with each request so the service can group one client run.
type Client struct {
	baseURL string
	client  *http.Client
	session string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the service endpoint.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// NewClient creates a Client with a 30 second timeout and a fresh session
// id.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		session: uuid.New().String(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the client session id.
func (c *Client) Session() string {
	return c.session
}

// getJSON issues a GET and decodes the response body into out.
func (c *Client) getJSON(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Client-Session", c.session)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &ErrStatus{Code: resp.StatusCode, URL: req.URL.String()}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
