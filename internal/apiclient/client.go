// Package apiclient talks to the external benchmarking backend. Every call is a
// single bounded attempt; failures come back as typed apperr errors so callers
// can decide to degrade.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/green-bench/internal/apperr"
	"github.com/DjordjeVuckovic/green-bench/internal/catalog"
)

const (
	DefaultTimeout    = 10 * time.Second
	DefaultPathPrefix = "/api"
)

type Option func(c *Client)

type Client struct {
	base    url.URL
	prefix  string
	timeout time.Duration
	http    *http.Client
	catalog *catalog.Catalog
}

func New(baseURL string, opts ...Option) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, apperr.NewValidationWrap("invalid backend url", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, apperr.NewValidation(fmt.Sprintf("backend url %q must be absolute", baseURL))
	}

	c := &Client{
		base:    *base,
		prefix:  DefaultPathPrefix,
		timeout: DefaultTimeout,
		http:    &http.Client{},
		catalog: catalog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithTimeout bounds every request. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithPathPrefix sets the prefix prepended to every endpoint. An empty prefix
// addresses endpoints at the server root.
func WithPathPrefix(prefix string) Option {
	return func(c *Client) {
		c.prefix = "/" + strings.Trim(prefix, "/")
		if c.prefix == "/" {
			c.prefix = ""
		}
	}
}

func WithCatalog(cat *catalog.Catalog) Option {
	return func(c *Client) {
		if cat != nil {
			c.catalog = cat
		}
	}
}

func (c *Client) Timeout() time.Duration {
	return c.timeout
}

func (c *Client) BaseURL() string {
	return c.base.JoinPath(c.prefix).String()
}

type errorEnvelope struct {
	Error   string          `json:"error"`
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
}

func (e errorEnvelope) text() string {
	if e.Error != "" {
		return e.Error
	}
	if len(e.Detail) > 0 {
		var s string
		if err := json.Unmarshal(e.Detail, &s); err == nil {
			return s
		}
		return string(e.Detail)
	}
	return e.Message
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, reqData, respData any) error {
	endpoint := c.prefix + path

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if reqData != nil {
		b, err := json.Marshal(reqData)
		if err != nil {
			return fmt.Errorf("marshal %s request: %w", endpoint, err)
		}
		body = bytes.NewReader(b)
	}

	reqURL := c.base.JoinPath(endpoint)
	if len(query) > 0 {
		reqURL.RawQuery = query.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", endpoint, err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	slog.Debug("Calling backend", "method", method, "url", reqURL.String())

	resp, err := c.http.Do(request)
	if err != nil {
		return transportError(ctx, endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(ctx, endpoint, err)
	}

	var envelope errorEnvelope
	_ = json.Unmarshal(respBody, &envelope)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := envelope.text()
		if msg == "" {
			msg = strings.TrimSpace(string(respBody))
		}
		return &apperr.HTTPStatusError{Endpoint: endpoint, StatusCode: resp.StatusCode, Message: msg}
	}
	if envelope.Error != "" {
		return &apperr.HTTPStatusError{Endpoint: endpoint, StatusCode: resp.StatusCode, Message: envelope.Error}
	}

	if respData == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, respData); err != nil {
		return fmt.Errorf("unmarshal %s response: %w", endpoint, err)
	}
	return nil
}

// transportError turns a failed round trip into a timeout or network error.
// Cancellation by the caller is returned as is.
func transportError(ctx context.Context, endpoint string, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return &apperr.TimeoutError{Endpoint: endpoint, Err: err}
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("call %s: %w", endpoint, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &apperr.TimeoutError{Endpoint: endpoint, Err: err}
	}
	return &apperr.NetworkError{Endpoint: endpoint, Err: err}
}
