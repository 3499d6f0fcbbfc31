// Package apiclient is the thin HTTP client for the hotel REST backend.
// Every response is wrapped in an Envelope; failures are normalised into
// *apperror.AppError values whose message is safe to show on a page.
package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"github.com/iliyamo/hotel-booking-web/internal/apperror"
)

// Envelope is the wrapper every backend response uses.
type Envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client calls the backend. The zero token makes it the unauthenticated
// instance used by login and register; WithToken derives the authenticated
// one. A Client is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
	cache      *ReadCache
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the transport timeout applied to every call.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithReadCache enables caching of unauthenticated catalogue reads.
func WithReadCache(rc *ReadCache) Option {
	return func(c *Client) { c.cache = rc }
}

// New builds the unauthenticated client.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithToken returns a copy of c that attaches token as a bearer credential.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// Authenticated reports whether the client carries a bearer token.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// getJSON performs a GET and decodes the envelope data into out. Public
// reads of cacheable resources go through the read cache.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.endpoint(path, query)
	cacheable := c.cache != nil && c.token == "" && isCatalogue(path)

	if cacheable {
		if data, ok := c.cache.Get(ctx, path, endpoint); ok {
			return decodeData(data, out)
		}
	}

	data, err := c.do(ctx, http.MethodGet, endpoint, nil, "")
	if err != nil {
		return err
	}
	if cacheable {
		c.cache.Set(ctx, path, endpoint, data)
	}
	return decodeData(data, out)
}

// sendJSON encodes in as the request body, performs the call and decodes
// the envelope data into out (which may be nil).
func (c *Client) sendJSON(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return apperror.External("", fmt.Errorf("encode request: %w", err))
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}
	data, err := c.do(ctx, method, c.endpoint(path, nil), body, contentType)
	if err != nil {
		return err
	}
	c.invalidate(ctx, method, path)
	return decodeData(data, out)
}

// sendRaw posts a pre-encoded body such as a multipart form.
func (c *Client) sendRaw(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	data, err := c.do(ctx, method, c.endpoint(path, nil), body, contentType)
	if err != nil {
		return err
	}
	c.invalidate(ctx, method, path)
	return decodeData(data, out)
}

func (c *Client) invalidate(ctx context.Context, method, path string) {
	if c.cache == nil || method == http.MethodGet || !changesCatalogue(path) {
		return
	}
	c.cache.Invalidate(ctx, path)
}

// do executes one request and returns the raw envelope data. It never
// retries.
func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader, contentType string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, apperror.External("", fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("url", endpoint).Msg("backend request failed")
		return nil, apperror.External("", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.External("", fmt.Errorf("read response: %w", err))
	}

	log.Debug().
		Str("method", method).
		Str("url", endpoint).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("backend call")

	var env Envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := ""
		if decodeErr == nil {
			msg = env.Message
		}
		return nil, statusError(resp.StatusCode, msg)
	}
	if decodeErr != nil {
		return nil, apperror.External("", fmt.Errorf("decode envelope: %w", decodeErr))
	}
	if env.Status >= 400 {
		return nil, statusError(env.Status, env.Message)
	}
	return env.Data, nil
}

// statusError maps a failed status to the error taxonomy, keeping the
// server's message when it sent one.
func statusError(status int, msg string) error {
	cause := fmt.Errorf("backend returned status %d", status)
	switch status {
	case http.StatusUnauthorized:
		if msg == "" {
			msg = "Your session has expired, please log in again"
		}
		return &apperror.AppError{Type: apperror.TypeUnauthorized, Message: msg, Err: cause}
	case http.StatusForbidden:
		if msg == "" {
			msg = "You do not have permission to do that"
		}
		return &apperror.AppError{Type: apperror.TypeForbidden, Message: msg, Err: cause}
	case http.StatusNotFound:
		if msg == "" {
			msg = "Not found"
		}
		return &apperror.AppError{Type: apperror.TypeNotFound, Message: msg, Err: cause}
	}
	return apperror.External(msg, cause)
}

func decodeData(data json.RawMessage, out interface{}) error {
	if out == nil || len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apperror.External("", fmt.Errorf("decode data: %w", err))
	}
	return nil
}
