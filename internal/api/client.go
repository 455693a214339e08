// Package api provides the client for the saltyhana backend REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/saltyhana/goalie/internal/auth"
	"github.com/saltyhana/goalie/internal/goal"
)

const (
	defaultBaseURL = "http://localhost:9090/api"
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

var (
	// ErrUnauthorized indicates the access token is expired or invalid.
	ErrUnauthorized = errors.New("api: unauthorized (access token expired or invalid)")
	// ErrCreateFailed indicates a goal create request was rejected.
	ErrCreateFailed = errors.New("api: create goal failed")
	// ErrUpdateFailed indicates a goal update request was rejected.
	ErrUpdateFailed = errors.New("api: update goal failed")
)

// Client calls the saltyhana backend. The token source is injected so
// credential storage stays out of this package.
type Client struct {
	baseURL string
	tokens  auth.TokenSource
	http    *http.Client
}

// NewClient creates a client for the given base URL. An empty baseURL
// selects the default local backend.
func NewClient(baseURL string, tokens auth.TokenSource) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		http:    &http.Client{},
	}
}

// Accounts returns the authenticated user's bank accounts.
// Callers treat any failure as an empty account list; there is no retry.
func (c *Client) Accounts(ctx context.Context) ([]Account, error) {
	body, err := c.get(ctx, "/accounts")
	if err != nil {
		return nil, err
	}

	var accounts []Account
	if err := json.Unmarshal(body, &accounts); err != nil {
		return nil, fmt.Errorf("api: parsing accounts: %w", err)
	}
	return accounts, nil
}

// Products returns the recommended financial products.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	body, err := c.get(ctx, "/products")
	if err != nil {
		return nil, err
	}

	var products []Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, fmt.Errorf("api: parsing products: %w", err)
	}
	return products, nil
}

// Goal fetches a single goal record, used to seed the form in edit mode.
func (c *Client) Goal(ctx context.Context, id int64) (goal.Goal, error) {
	body, err := c.get(ctx, fmt.Sprintf("/goals/%d", id))
	if err != nil {
		return goal.Goal{}, err
	}

	var g goal.Goal
	if err := json.Unmarshal(body, &g); err != nil {
		return goal.Goal{}, fmt.Errorf("api: parsing goal: %w", err)
	}
	return g, nil
}

// CreateGoal registers a new goal.
func (c *Client) CreateGoal(ctx context.Context, req goal.Request) error {
	if err := c.send(ctx, http.MethodPost, "/goals", req); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}
	return nil
}

// UpdateGoal replaces an existing goal.
func (c *Client) UpdateGoal(ctx context.Context, id int64, req goal.Request) error {
	if err := c.send(ctx, http.MethodPut, fmt.Sprintf("/goals/%d", id), req); err != nil {
		return fmt.Errorf("%w: %w", ErrUpdateFailed, err)
	}
	return nil
}

// get performs an authenticated GET request and returns the response body.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("api: creating request: %w", err)
	}
	if err := c.setHeaders(req); err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("api: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("api: reading response: %w", err)
	}
	return body, nil
}

// send performs an authenticated JSON request with a body. Any 2xx
// status is success; the response body is discarded.
func (c *Client) send(ctx context.Context, method, path string, payload any) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if err := c.setHeaders(req); err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
	return nil
}

// setHeaders attaches auth and tracing headers shared by all requests.
func (c *Client) setHeaders(req *http.Request) error {
	token, err := c.tokens.Token()
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	req.Header.Set("User-Agent", "github.com/saltyhana/goalie/1.0")
	return nil
}
