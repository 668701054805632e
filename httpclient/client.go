package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"

	"github.com/efkanbakanay/devhelper/logging"
)

const (
	// DefaultTimeout bounds a single attempt, covering connection setup,
	// redirects, and reading the response body.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxAttempts is the total number of tries for a retryable
	// request, including the first.
	DefaultMaxAttempts = 3

	// DefaultInitialInterval seeds the exponential backoff between
	// retries.
	DefaultInitialInterval = 200 * time.Millisecond

	// DefaultMaxInterval caps the backoff between retries.
	DefaultMaxInterval = 5 * time.Second

	// RequestIDHeader carries the identifier attached to every outgoing
	// request. All retries of one logical request share the same ID.
	RequestIDHeader = "X-Request-ID"
)

// RetryPolicy controls how failed requests are retried.
//
// Transport errors and retryable status codes (5xx and 429) trigger a
// retry on idempotent methods. POST and PATCH are never retried unless
// RetryPost is set, since a failed attempt may still have been applied
// by the server.
type RetryPolicy struct {
	// MaxAttempts is the total number of tries, including the first.
	// Set to 1 to disable retries. Values below 1 fall back to
	// DefaultMaxAttempts.
	MaxAttempts int

	// InitialInterval is the first backoff delay. Subsequent delays
	// grow exponentially with jitter.
	// Default: DefaultInitialInterval.
	InitialInterval time.Duration

	// MaxInterval caps the delay between retries.
	// Default: DefaultMaxInterval.
	MaxInterval time.Duration

	// RetryPost also retries POST and PATCH requests. Leave unset
	// unless the target endpoints are known to be idempotent.
	RetryPost bool
}

// Options configures a Client. The zero value is usable: no base URL,
// DefaultTimeout, default retry policy, and a no-op logger.
type Options struct {
	// BaseURL is prepended to request paths that are not absolute URLs.
	BaseURL string

	// Timeout bounds each attempt.
	// Default: DefaultTimeout.
	Timeout time.Duration

	// Headers are added to every outgoing request. Per-call headers
	// override them.
	Headers map[string]string

	// Logger receives request and retry logs.
	// Default: logging.Nop.
	Logger logging.Logger

	// Retry controls retries for failed requests.
	Retry RetryPolicy

	// HTTPClient overrides the underlying *http.Client. When set,
	// Timeout is ignored and the given client is used as is.
	HTTPClient *http.Client
}

// Client is an HTTP client with a base URL, default headers, automatic
// request IDs, and retries with exponential backoff.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Responses: Do and the method helpers return the server's response
//   whenever one was received, even when it carries an error status and
//   retries are exhausted. They return an error only when no response
//   could be obtained.
// - Bodies: response bodies are fully read and the connection released
//   before a Response is returned.
type Client struct {
	opts Options
	http *http.Client
	log  logging.Logger
}

// New creates a Client, applying defaults for unset options.
func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Retry.MaxAttempts < 1 {
		opts.Retry.MaxAttempts = DefaultMaxAttempts
	}
	if opts.Retry.InitialInterval <= 0 {
		opts.Retry.InitialInterval = DefaultInitialInterval
	}
	if opts.Retry.MaxInterval <= 0 {
		opts.Retry.MaxInterval = DefaultMaxInterval
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop{}
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{
		opts: opts,
		http: hc,
		log:  opts.Logger,
	}
}

// Response is a fully-read HTTP response.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Status is the full status line, e.g. "200 OK".
	Status string

	// Header holds the response headers.
	Header http.Header

	// Body is the complete response body.
	Body []byte
}

// Success reports whether the response carried a 2xx status code.
func (r *Response) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Get issues a GET request to path.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil, nil)
}

// Post issues a POST request with the given body and content type.
func (c *Client) Post(ctx context.Context, path, contentType string, body []byte) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, contentTypeHeader(contentType), body)
}

// Put issues a PUT request with the given body and content type.
func (c *Client) Put(ctx context.Context, path, contentType string, body []byte) (*Response, error) {
	return c.Do(ctx, http.MethodPut, path, contentTypeHeader(contentType), body)
}

// Delete issues a DELETE request to path.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// Do issues a request and returns the fully-read response.
//
// The path is resolved against the base URL unless it is already an
// absolute URL. Per-call headers override the client's default headers.
// A nil header and empty body are valid.
//
// Retryable failures are retried per the client's RetryPolicy. When
// retries are exhausted on an error status, the final response is
// returned with a nil error; use Success or the JSON helpers to turn
// error statuses into errors.
func (c *Client) Do(ctx context.Context, method, path string, header http.Header, body []byte) (*Response, error) {
	url := c.buildURL(path)
	requestID := uuid.NewString()

	if !c.retryable(method) {
		return c.attempt(ctx, method, url, header, body, requestID)
	}

	// lastResp tracks the final attempt's response so it can be handed
	// back when retries exhaust on a retryable status.
	var lastResp *Response
	op := func() (*Response, error) {
		lastResp = nil
		resp, err := c.attempt(ctx, method, url, header, body, requestID)
		if err != nil {
			return nil, err
		}
		lastResp = resp
		if retryableStatus(resp.StatusCode) {
			if delay, ok := retryAfter(resp.Header); ok {
				return nil, &backoff.RetryAfterError{Duration: delay}
			}
			return nil, newStatusError(resp)
		}
		return resp, nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.opts.Retry.InitialInterval
	bo.MaxInterval = c.opts.Retry.MaxInterval

	resp, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(uint(c.opts.Retry.MaxAttempts)),
		backoff.WithNotify(func(err error, delay time.Duration) {
			c.log.Warn("retrying request", logging.Fields{
				"method":     method,
				"url":        url,
				"request_id": requestID,
				"delay_ms":   float64(delay.Milliseconds()),
				"error":      err.Error(),
			})
		}),
	)
	if err != nil {
		if lastResp != nil {
			return lastResp, nil
		}
		return nil, err
	}
	return resp, nil
}

// attempt executes a single HTTP exchange and fully reads the body.
func (c *Client) attempt(ctx context.Context, method, url string, header http.Header, body []byte, requestID string) (*Response, error) {
	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("httpclient: build request: %w", err)
	}

	for k, v := range c.opts.Headers {
		req.Header.Set(k, v)
	}
	for k, vs := range header {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if req.Header.Get(RequestIDHeader) == "" {
		req.Header.Set(RequestIDHeader, requestID)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read response body: %w", err)
	}

	c.log.Debug("request completed", logging.Fields{
		"method":      method,
		"url":         url,
		"status":      resp.StatusCode,
		"request_id":  requestID,
		"duration_ms": float64(time.Since(start).Milliseconds()),
	})

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

// buildURL joins the base URL and path. Absolute URLs pass through
// untouched, and query strings in the path are preserved.
func (c *Client) buildURL(path string) string {
	if c.opts.BaseURL == "" || strings.Contains(path, "://") {
		return path
	}
	base := strings.TrimSuffix(c.opts.BaseURL, "/")
	if path == "" {
		return base
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

// retryable reports whether requests with this method may be retried.
// Idempotent methods always are; POST and PATCH only when the policy
// opts in.
func (c *Client) retryable(method string) bool {
	if c.opts.Retry.MaxAttempts <= 1 {
		return false
	}
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete, http.MethodOptions:
		return true
	case http.MethodPost, http.MethodPatch:
		return c.opts.Retry.RetryPost
	default:
		return false
	}
}

// retryableStatus reports whether a status code indicates a transient
// server condition. 501 Not Implemented is excluded: it will not change
// on retry.
func retryableStatus(code int) bool {
	if code == http.StatusNotImplemented {
		return false
	}
	return code >= 500 || code == http.StatusTooManyRequests
}

// retryAfter parses a Retry-After header given in delay seconds.
// HTTP-date values are ignored and the backoff schedule applies
// instead.
func retryAfter(h http.Header) (time.Duration, bool) {
	v := h.Get("Retry-After")
	if v == "" {
		return 0, false
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0, false
	}
	return time.Duration(secs) * time.Second, true
}

func contentTypeHeader(contentType string) http.Header {
	if contentType == "" {
		return nil
	}
	h := http.Header{}
	h.Set("Content-Type", contentType)
	return h
}
