package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"ichthyo-signup/internal/signupform"
)

// SignupPath is the endpoint of the signup service.
const SignupPath = "/api/auth/signup"

// maxBodySize caps how much of an error response is echoed back to the user.
const maxBodySize = 64 << 10

// envelope mirrors the response format of the signup service.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Client talks to the signup service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New returns a client for the service rooted at baseURL. An empty baseURL
// targets the origin the page was served from.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ signupform.Signupper = (*Client)(nil)

// Signup posts the credentials and translates the response into a Result.
// Non-2xx responses are rejections; only transport failures are errors.
func (c *Client) Signup(ctx context.Context, creds signupform.Credentials) (signupform.Result, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return signupform.Result{}, fmt.Errorf("encode signup request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+SignupPath, bytes.NewReader(body))
	if err != nil {
		return signupform.Result{}, fmt.Errorf("build signup request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return signupform.Result{}, fmt.Errorf("signup request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return signupform.Result{}, fmt.Errorf("read signup response: %w", err)
	}

	c.logger.Debug("signup response", zap.Int("status", resp.StatusCode), zap.Int("bytes", len(raw)))

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if decodeErr == nil && env.Status != "" && env.Status != "success" {
			return signupform.Result{Success: false, Error: messageOr(env.Message, "Signup failed.")}, nil
		}
		return signupform.Result{Success: true}, nil
	}

	if decodeErr == nil && env.Message != "" {
		return signupform.Result{Success: false, Error: env.Message}, nil
	}
	return signupform.Result{
		Success: false,
		Error:   fmt.Sprintf("API Error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(raw))),
	}, nil
}

func messageOr(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}
