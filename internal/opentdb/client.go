package opentdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// DefaultBaseURL is the public Open Trivia DB endpoint.
	DefaultBaseURL = "https://opentdb.com/api.php"

	// DefaultAmount is the page size requested per fetch.
	DefaultAmount = 10

	defaultTimeout = 15 * time.Second
)

// Client fetches question pages from the Open Trivia DB API.
type Client struct {
	baseURL string
	amount  int
	client  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithAmount sets the page size requested per fetch.
func WithAmount(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.amount = n
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.client.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// NewClient creates a Client with defaults, then applies opts.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		amount:  DefaultAmount,
		client:  &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch issues one GET for a page of questions and returns the raw records.
//
// Failures are returned as one of the typed errors in this package:
// *ErrUnavailable for transport problems, *ErrBadStatus for non-2xx HTTP
// statuses, and *ErrBadData for bodies that cannot be used.
func (c *Client) Fetch(ctx context.Context) ([]Result, error) {
	q := url.Values{}
	q.Set("amount", strconv.Itoa(c.amount))
	reqURL := c.baseURL + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &ErrUnavailable{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ErrBadStatus{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ErrUnavailable{Err: fmt.Errorf("read body: %w", err)}
	}

	if err := validateBody(body); err != nil {
		return nil, err
	}

	var parsed response
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &ErrBadData{Content: body, Err: err}
	}

	if parsed.ResponseCode != 0 {
		msg, ok := responseCodeText[parsed.ResponseCode]
		if !ok {
			msg = "unknown response code"
		}
		return nil, &ErrBadData{
			Content: body,
			Err:     fmt.Errorf("response code %d: %s", parsed.ResponseCode, msg),
		}
	}

	return parsed.Results, nil
}
