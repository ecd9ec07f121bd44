package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/devu-community/chatsview/domain"
	"github.com/devu-community/chatsview/util"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Client talks to the forum REST collaborator
type Client struct {
	baseURL     string
	httpClient  HTTPClient
	limiter     *rate.Limiter
	accessToken string
}

type Option func(*Client)

// WithHTTPClient replaces the transport, mainly for tests
func WithHTTPClient(c HTTPClient) Option {
	return func(cl *Client) { cl.httpClient = c }
}

// WithRateLimit paces outgoing requests. Requests wait for a token; none are dropped.
func WithRateLimit(rps float64, burst int) Option {
	return func(cl *Client) {
		if rps <= 0 {
			cl.limiter = nil
			return
		}
		cl.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithAccessToken sets the opaque token sent on authenticated writes
func WithAccessToken(token string) Option {
	return func(cl *Client) { cl.accessToken = token }
}

// DefaultTimeout bounds every request when no positive timeout is configured
const DefaultTimeout = 10 * time.Second

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: NewDefaultHTTPClient(DefaultTimeout),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromConfig builds a client from the application configuration
func NewFromConfig(conf *util.AppConfig) *Client {
	timeout := time.Duration(conf.Conf.RequestTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	burst := int(conf.Conf.RequestsPerSecond) * 2
	if burst < 1 {
		burst = 1
	}
	return NewClient(conf.Conf.ApiBaseUrl,
		WithHTTPClient(NewDefaultHTTPClient(timeout)),
		WithRateLimit(conf.Conf.RequestsPerSecond, burst),
		WithAccessToken(conf.Conf.AccessToken),
	)
}

// StatusError is returned for any non-2xx response. It unwraps to domain.ErrNetwork.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.Code)
}

func (e *StatusError) Unwrap() error {
	return domain.ErrNetwork
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
	auth   bool
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: rate limiter: %v", domain.ErrNetwork, err)
		}
	}

	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("failed to encode %s body: %w", r.path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return fmt.Errorf("failed to build request %s %s: %w", r.method, r.path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.New().String())
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.auth && c.accessToken != "" {
		// the token is opaque and sent as-is
		req.Header.Set("Authorization", c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrNetwork, r.method, r.path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Method: r.method, Path: r.path, Code: resp.StatusCode, Body: string(snippet)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Printf("Failed to decode %s %s response: %v", r.method, r.path, err)
		return fmt.Errorf("%w: decode %s: %v", domain.ErrNetwork, r.path, err)
	}
	return nil
}
