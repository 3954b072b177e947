// Package release checks whether a newer beatdeck build has been published.
// It only reports; it never swaps the running binary.
package release

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

var ErrDevBuild = errors.New("cannot check a development build")

const defaultReleaseBaseURL = "https://api.github.com/repos/okarum/beatdeck"

// Checker queries the release feed.
type Checker struct {
	baseURL string
	client  *http.Client
}

// Option configures a Checker.
type Option func(*Checker)

// WithBaseURL overrides the release feed endpoint.
func WithBaseURL(url string) Option {
	return func(c *Checker) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) {
		c.client.Timeout = d
	}
}

// NewChecker creates a Checker with a 30 second timeout.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		baseURL: defaultReleaseBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckInput carries the running version.
type CheckInput struct {
	Version string
}

// CheckResult reports the latest published version.
type CheckResult struct {
	LatestVersion   string
	UpdateAvailable bool
}

// Check fetches the latest release tag and compares it with the running
// version using semver ordering.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	if input.Version == "(devel)" {
		return nil, ErrDevBuild
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/releases/latest", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from release feed", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read release feed: %w", err)
	}

	var payload struct {
		TagName string `json:"tag_name"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode release feed: %w", err)
	}
	if payload.TagName == "" {
		return nil, fmt.Errorf("release feed has no tag")
	}

	latest := canonical(payload.TagName)
	current := canonical(input.Version)
	if !semver.IsValid(latest) {
		return nil, fmt.Errorf("invalid release tag %q", payload.TagName)
	}

	return &CheckResult{
		LatestVersion:   payload.TagName,
		UpdateAvailable: !semver.IsValid(current) || semver.Compare(latest, current) > 0,
	}, nil
}

// canonical normalizes a tag to the "vX.Y.Z" form semver expects.
func canonical(tag string) string {
	if tag == "" {
		return ""
	}
	if !strings.HasPrefix(tag, "v") {
		tag = "v" + tag
	}
	return tag
}
