// Package backendapi is the typed client for the platform's admin REST API.
// Every call issues exactly one request, attaches the session's bearer token and
// normalizes failures into *APIError.
package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "subscription-admin"
	maxResponseBytes = 8 << 20
)

// Config configures a Client.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Client    *http.Client
	Logger    *slog.Logger
}

// Client talks to the backend admin API.
type Client struct {
	base      *url.URL
	userAgent string
	client    *http.Client
	logger    *slog.Logger
}

// NewClient builds a backend client. BaseURL must be absolute.
func NewClient(cfg Config) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		return nil, errors.New("backend base url is required")
	}
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse backend base url: %w", err)
	}
	if !base.IsAbs() {
		return nil, fmt.Errorf("backend base url must be absolute: %q", raw)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		base:      base,
		userAgent: fallbackString(strings.TrimSpace(cfg.UserAgent), defaultUserAgent),
		client:    hc,
		logger:    logger.With("component", "backendapi"),
	}, nil
}

type tokenKey struct{}

// ContextWithToken returns a context whose backend calls authenticate with the access token.
func ContextWithToken(ctx context.Context, accessToken string) context.Context {
	if accessToken == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
}

// TokenFromContext returns the access token attached by ContextWithToken.
func TokenFromContext(ctx context.Context) (string, bool) {
	tok, ok := ctx.Value(tokenKey{}).(*oauth2.Token)
	if !ok || tok == nil || tok.AccessToken == "" {
		return "", false
	}
	return tok.AccessToken, true
}

// request describes one backend call.
type request struct {
	method      string
	path        string
	query       url.Values
	body        any
	rawBody     io.Reader
	contentType string
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, request{method: http.MethodGet, path: path, query: query}, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, request{method: http.MethodPost, path: path, body: body}, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, request{method: http.MethodPatch, path: path, body: body}, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, request{method: http.MethodDelete, path: path}, out)
}

// do performs the request and decodes a 2xx body into out. Every failure is an *APIError.
func (c *Client) do(ctx context.Context, r request, out any) error {
	req, err := c.newRequest(ctx, r)
	if err != nil {
		return Unexpected(err)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "backend request failed",
			"method", r.method, "path", r.path, "error", err)
		return Unexpected(fmt.Errorf("%s %s: %w", r.method, r.path, err))
	}

	body, readErr := readBody(resp)
	c.logger.DebugContext(ctx, "backend request",
		"method", r.method,
		"path", r.path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := decodeAPIError(resp.StatusCode, body)
		if readErr != nil && apiErr.cause == nil {
			apiErr.cause = readErr
		}
		return apiErr
	}
	if readErr != nil {
		return Unexpected(fmt.Errorf("read %s %s: %w", r.method, r.path, readErr))
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		apiErr := Unexpected(fmt.Errorf("decode %s %s: %w", r.method, r.path, err))
		apiErr.Status = resp.StatusCode
		return apiErr
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, r request) (*http.Request, error) {
	target, err := c.resolve(r.path, r.query)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	contentType := r.contentType
	switch {
	case r.rawBody != nil:
		body = r.rawBody
	case r.body != nil:
		payload, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", r.method, r.path, err)
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("create %s %s request: %w", r.method, r.path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if tok, ok := ctx.Value(tokenKey{}).(*oauth2.Token); ok && tok != nil && tok.AccessToken != "" {
		tok.SetAuthHeader(req)
	}
	return req, nil
}

// resolve joins a relative endpoint path onto the base URL, keeping the base path prefix.
func (c *Client) resolve(path string, query url.Values) (string, error) {
	rel, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return "", fmt.Errorf("parse endpoint %q: %w", path, err)
	}
	u := c.base.ResolveReference(rel)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

func readBody(resp *http.Response) (body []byte, err error) {
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close response body: %w", closeErr))
		}
	}()
	return io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
}

func fallbackString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func pageQuery(page int) url.Values {
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	q.Set("page", fmt.Sprint(page))
	return q
}

func escapeID(id string) string {
	return url.PathEscape(strings.TrimSpace(id))
}
