package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// ErrLoginFailed marks authentication failures: a rejected login at setup
// time, or a 401 from the panel after the session token went stale. Callers
// check for it with errors.Is.
var ErrLoginFailed = errors.New("crafty: login failed")

// CraftyClient defines the interface for talking to a Crafty Controller panel.
type CraftyClient interface {
	Login(ctx context.Context) error
	Ping(ctx context.Context) error

	Servers(ctx context.Context) ([]Record, error)
	ServerStats(ctx context.Context, id any) (Record, error)
	ServerAccesses(ctx context.Context, id any) ([]any, error)
	ServerWebhooks(ctx context.Context, id any) ([]any, error)

	Roles(ctx context.Context) ([]Record, error)
	RoleServers(ctx context.Context, id any) ([]any, error)
	RoleUsers(ctx context.Context, id any) ([]any, error)

	Users(ctx context.Context) ([]Record, error)
	User(ctx context.Context, id any) (Record, error)
	UserPicture(ctx context.Context, id any) (string, error)

	ServerAction(ctx context.Context, id any, action ServerAction) error

	Host() string
	Port() int
	BaseURL() string
}

// ClientConfig holds configuration for DefaultClient.
type ClientConfig struct {
	Host               string
	Port               int
	Username           string
	Password           string
	SSL                bool
	InsecureSkipVerify bool
	RequestTimeout     time.Duration
}

// DefaultClient implements CraftyClient using the standard net/http package.
// The bearer token obtained by Login is reused for every subsequent call;
// there is no automatic re-login.
type DefaultClient struct {
	http   *http.Client
	config ClientConfig

	mu    sync.RWMutex
	token string
}

// NewDefaultClient constructs a DefaultClient from the given config.
// It configures TLS skip-verify and request timeout from the config.
// Returns an error if Host is empty or Port is out of range.
func NewDefaultClient(cfg ClientConfig) (*DefaultClient, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("Host is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("Port %d out of range", cfg.Port)
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: cfg.InsecureSkipVerify, //nolint:gosec
	}

	return &DefaultClient{
		http: &http.Client{
			Timeout:   cfg.RequestTimeout,
			Transport: transport,
		},
		config: cfg,
	}, nil
}

// Host returns the configured panel hostname.
func (c *DefaultClient) Host() string { return c.config.Host }

// Port returns the configured panel port.
func (c *DefaultClient) Port() int { return c.config.Port }

// BaseURL returns the panel base URL, e.g. "https://panel.example.com:8443".
func (c *DefaultClient) BaseURL() string {
	scheme := "http"
	if c.config.SSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s:%d", scheme, c.config.Host, c.config.Port)
}

// Login authenticates against /api/v2/auth/login and stores the session
// token for subsequent calls. A rejected login (401/403 or a non-ok
// envelope) returns ErrLoginFailed.
func (c *DefaultClient) Login(ctx context.Context) error {
	payload, err := json.Marshal(map[string]string{
		"username": c.config.Username,
		"password": c.config.Password,
	})
	if err != nil {
		return fmt.Errorf("Login encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL()+endpointLogin, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("Login: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("Login: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := readBody(resp.Body)
	if err != nil {
		return fmt.Errorf("Login: read body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: status %d", ErrLoginFailed, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("Login: unexpected status %d: %s", resp.StatusCode, truncate(body, 200))
	}

	var env apiResponse
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("Login decode: %w", err)
	}
	if env.Status != statusOK {
		return fmt.Errorf("%w: status %q", ErrLoginFailed, env.Status)
	}

	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return fmt.Errorf("Login decode token: %w", err)
	}
	if data.Token == "" {
		return fmt.Errorf("%w: empty token", ErrLoginFailed)
	}

	c.mu.Lock()
	c.token = data.Token
	c.mu.Unlock()
	return nil
}

// Ping validates the session with a cheap authenticated call. A stale or
// rejected token surfaces as ErrLoginFailed via the shared doGet path.
func (c *DefaultClient) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := c.doGet(pingCtx, endpointPing)
	return err
}

// doGet performs an authenticated GET to the given path (relative to
// BaseURL) and returns the decoded "data" member of the response envelope.
// A 401 maps to ErrLoginFailed; any non-2xx status or non-ok envelope is
// an error.
func (c *DefaultClient) doGet(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL()+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return c.do(req)
}

// doPost performs an authenticated POST with an empty body. Crafty's action
// endpoints take no payload.
func (c *DefaultClient) doPost(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL()+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return c.do(req)
}

func (c *DefaultClient) do(req *http.Request) (json.RawMessage, error) {
	req.Header.Set("Accept", "application/json")

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := readBody(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("%w: status 401", ErrLoginFailed)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(body, 200))
	}

	var env apiResponse
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	if env.Status != statusOK {
		return nil, fmt.Errorf("api status %q: %s", env.Status, env.Error)
	}
	return env.Data, nil
}

func readBody(r io.Reader) ([]byte, error) {
	const maxResponseBytes = 32 * 1024 * 1024 // 32 MB — well above any real panel response
	return io.ReadAll(io.LimitReader(r, maxResponseBytes))
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
