// Package backend provides the FitLink backend API client
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fitlink-qa/reportflow/pkg/errors"
	"github.com/fitlink-qa/reportflow/pkg/identity"
)

// DefaultTimeout bounds each individual backend request
const DefaultTimeout = 30 * time.Second

// maxBodySize limits how much of a response body is read for display
const maxBodySize = 1 << 20 // 1MB

// Client is the HTTP client for the FitLink backend API
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a backend client for the given base URL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// SetTimeout overrides the per-request timeout
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.client.Timeout = d
	}
}

// BaseURL returns the configured base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Register creates a reporter account via POST /auth/register. The response
// is returned raw regardless of status; only transport failures are errors.
// Duplicate-account responses are an expected outcome on repeated runs.
func (c *Client) Register(ctx context.Context, id identity.Identity) (*RawResult, error) {
	reqBody := RegisterRequest{
		Carnet:          id.Carnet,
		Nombre:          id.Nombre,
		Biografia:       id.Biografia,
		FechaNacimiento: id.FechaNacimiento,
		Ciudad:          id.Ciudad,
		Foto:            id.Foto,
		Email:           id.Email,
		Password:        id.Password,
	}

	status, body, err := c.postJSON(ctx, c.baseURL+"/auth/register", "", reqBody)
	if err != nil {
		return nil, errors.BackendError(fmt.Sprintf("register request failed for %s", id.Email), err)
	}

	return &RawResult{StatusCode: status, Body: body}, nil
}

// Login authenticates a reporter via POST /auth/login and decodes the
// session from the response body. The caller decides whether a missing
// token aborts the run; Login itself only fails on transport errors or an
// undecodable body.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	reqBody := LoginRequest{Email: email, Password: password}

	status, body, err := c.postJSON(ctx, c.baseURL+"/auth/login", "", reqBody)
	if err != nil {
		return nil, errors.BackendError(fmt.Sprintf("login request failed for %s", email), err)
	}

	result := &LoginResult{StatusCode: status, Body: body}
	// A non-JSON error body (e.g. from a proxy) still yields a result with
	// an empty token rather than masking the raw response.
	_ = json.Unmarshal(body, &result.Response)

	return result, nil
}

// Report files an abuse report against targetID via
// POST /users/{targetID}/report, authenticated with the given bearer token.
// The body is an empty JSON object; the backend counts reports server-side.
func (c *Client) Report(ctx context.Context, token, targetID string) (*RawResult, error) {
	if token == "" {
		return nil, errors.AuthError("report requires a bearer token", nil)
	}

	url := fmt.Sprintf("%s/users/%s/report", c.baseURL, targetID)
	status, body, err := c.postJSON(ctx, url, token, struct{}{})
	if err != nil {
		return nil, errors.BackendError(fmt.Sprintf("report request failed for target %s", targetID), err)
	}

	return &RawResult{StatusCode: status, Body: body}, nil
}

// Health checks if the backend API is accessible
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return errors.BackendError("failed to create health request", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.BackendError("health check failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.BackendError(fmt.Sprintf("health check returned status %d", resp.StatusCode), nil)
	}

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return errors.BackendError("failed to decode health response", err)
	}
	if !health.OK {
		return errors.BackendError("backend reports not ok", nil)
	}

	return nil
}

// postJSON issues a POST with a JSON body and returns status and raw body.
// An empty token means the request is unauthenticated.
func (c *Client) postJSON(ctx context.Context, url, token string, payload any) (int, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp.StatusCode, respBody, nil
}
