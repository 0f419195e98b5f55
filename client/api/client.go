// Package api is the HTTP transport used by the storefront client SDK.
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

	"go.uber.org/zap"
)

// ErrUnauthorized is returned for every 401 response. The original request
// is never retried; the OnUnauthorized hook decides what happens next.
var ErrUnauthorized = errors.New("unauthorized")

// TokenSource supplies the bearer token for outgoing requests. An empty
// string means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

type Config struct {
	BaseURL        string
	HTTPClient     *http.Client
	Tokens         TokenSource
	OnUnauthorized func()
	Logger         *zap.Logger
}

type Client struct {
	baseURL        string
	http           *http.Client
	tokens         TokenSource
	onUnauthorized func()
	log            *zap.Logger
}

func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL:        cfg.BaseURL,
		http:           httpClient,
		tokens:         cfg.Tokens,
		onUnauthorized: cfg.OnUnauthorized,
		log:            log,
	}
}

func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.log.Warn("request unauthorized", zap.String("method", method), zap.String("path", path))
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return ErrUnauthorized
	}

	if resp.StatusCode >= 400 {
		return &APIError{Status: resp.StatusCode, Message: decodeErrorMessage(resp)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeErrorMessage(resp *http.Response) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return resp.Status
}
