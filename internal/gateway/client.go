// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

// Package gateway implements domain.RemoteGateway over the Amphitryon REST
// API.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/amphitryon/amphitryon-client/internal/domain"
	"github.com/amphitryon/amphitryon-client/internal/logging"
)

const (
	// DefaultClientTimeout is the default HTTP client timeout for API requests
	DefaultClientTimeout = 30 * time.Second
	// Default retry configuration
	DefaultMaxRetries        = 3
	DefaultInitialBackoff    = 1 * time.Second
	DefaultMaxBackoff        = 30 * time.Second
	DefaultBackoffMultiplier = 2.0

	requestIDHeader = "X-Request-Id"
)

// Config holds the configuration for the API client
type Config struct {
	BaseURL string
	// SessionHeader is the name of the session token header, on responses
	// from the connect and sign-up calls and on every outbound request once
	// a session is established.
	SessionHeader string
	// TokenSource supplies the identity token presented on the connect and
	// sign-up calls. Optional: without it those calls go out unauthenticated.
	TokenSource oauth2.TokenSource
	// Optional: override timeout for HTTP requests
	Timeout time.Duration
	// Optional: retry configuration for transport failures
	MaxRetries        int
	InitialBackoff    time.Duration
	MaxBackoff        time.Duration
	BackoffMultiplier float64
}

// Client is the HTTP implementation of the remote gateway
type Client struct {
	httpClient *http.Client
	config     Config

	mu           sync.RWMutex
	sessionToken string
}

// Ensure that Client implements the gateway contract
var _ domain.RemoteGateway = (*Client)(nil)

// NewClient creates a new API client
func NewClient(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = DefaultClientTimeout
	}
	if config.MaxRetries == 0 {
		config.MaxRetries = DefaultMaxRetries
	}
	if config.InitialBackoff == 0 {
		config.InitialBackoff = DefaultInitialBackoff
	}
	if config.MaxBackoff == 0 {
		config.MaxBackoff = DefaultMaxBackoff
	}
	if config.BackoffMultiplier == 0 {
		config.BackoffMultiplier = DefaultBackoffMultiplier
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		config: config,
	}
}

// SetSessionToken installs the token carried on all subsequent calls. An
// empty token clears the session.
func (c *Client) SetSessionToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessionToken = token
}

func (c *Client) currentSessionToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sessionToken
}

// doRequest performs one API call, retrying transport failures with
// exponential backoff. A received HTTP response, whatever its status, settles
// the call: classification of non-2xx statuses belongs to the stores.
func (c *Client) doRequest(ctx context.Context, method, path string, body any, withIdentity bool) (domain.Response, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
	}

	requestID := uuid.New().String()
	ctx = logging.AppendCtx(ctx, slog.String("request_id", requestID))

	var lastErr error
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := c.backoffDuration(attempt)
			slog.DebugContext(ctx, "retrying request",
				"method", method,
				"path", path,
				"attempt", attempt,
				"backoff", backoff,
			)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		req, err := c.newRequest(ctx, method, path, payload, requestID, withIdentity)
		if err != nil {
			return nil, err
		}

		httpResp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		respBody, err := io.ReadAll(httpResp.Body)
		_ = httpResp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		return &response{
			status: httpResp.StatusCode,
			header: httpResp.Header,
			body:   respBody,
		}, nil
	}

	slog.WarnContext(ctx, "request failed after retries",
		"method", method,
		"path", path,
		"attempts", c.config.MaxRetries+1,
		logging.ErrKey, lastErr,
	)
	return nil, fmt.Errorf("request %s %s failed after %d attempts: %w", method, path, c.config.MaxRetries+1, lastErr)
}

func (c *Client) newRequest(ctx context.Context, method, path string, payload []byte, requestID string, withIdentity bool) (*http.Request, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.currentSessionToken(); token != "" {
		req.Header.Set(c.config.SessionHeader, token)
	}
	if withIdentity && c.config.TokenSource != nil {
		token, err := c.config.TokenSource.Token()
		if err != nil {
			return nil, fmt.Errorf("fetching identity token: %w", err)
		}
		token.SetAuthHeader(req)
	}

	return req, nil
}

func (c *Client) backoffDuration(attempt int) time.Duration {
	backoff := time.Duration(float64(c.config.InitialBackoff) * math.Pow(c.config.BackoffMultiplier, float64(attempt-1)))
	if backoff > c.config.MaxBackoff {
		backoff = c.config.MaxBackoff
	}
	// Jitter between 50% and 100% of the computed backoff.
	return time.Duration(float64(backoff) * (0.5 + rand.Float64()/2))
}
