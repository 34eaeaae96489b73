package riot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"
)

// TokenHeader carries the API key on every upstream request.
const TokenHeader = "X-Riot-Token"

// Host selects which Riot base URL a request goes to.
type Host int

const (
	// Platform hosts serve per-shard data (summoner, league, mastery, spectator).
	Platform Host = iota
	// Routing hosts serve regional data (account, match).
	Routing
)

func (h Host) String() string {
	if h == Routing {
		return "routing"
	}
	return "platform"
}

// Recorder receives one observation per upstream request.
type Recorder interface {
	RecordRiotRequest(endpoint string, status int, duration time.Duration)
}

type Options struct {
	APIKey      string
	PlatformURL string
	RoutingURL  string
	Timeout     time.Duration
	Recorder    Recorder
}

// Client is a thin Riot Games API client. It attaches the API key header and
// hands back the upstream status and body unchanged; it never retries.
type Client struct {
	apiKey      string
	platformURL string
	routingURL  string
	httpClient  *http.Client
	recorder    Recorder
}

func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiKey:      opts.APIKey,
		platformURL: opts.PlatformURL,
		routingURL:  opts.RoutingURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		recorder: opts.Recorder,
	}
}

// Response is a raw upstream reply.
type Response struct {
	StatusCode int
	Body       []byte
}

func (r *Response) OK() bool {
	return r.StatusCode == http.StatusOK
}

// Decode unmarshals the body into v.
func (r *Response) Decode(v interface{}) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Err returns a *StatusError for any non-200 response, nil otherwise.
func (r *Response) Err() error {
	if r.OK() {
		return nil
	}
	return &StatusError{StatusCode: r.StatusCode, Body: r.Body}
}

// Get issues a GET against host. path must already be escaped.
func (c *Client) Get(ctx context.Context, host Host, path string, query url.Values) (*Response, error) {
	return c.do(ctx, http.MethodGet, host, path, query, nil, path)
}

// Put issues a PUT with payload encoded as JSON. It serves the PUT-style Riot
// endpoints; the gateway's own lookups are all reads.
func (c *Client) Put(ctx context.Context, host Host, path string, payload interface{}) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	return c.do(ctx, http.MethodPut, host, path, nil, bytes.NewReader(body), path)
}

func (c *Client) baseURL(host Host) string {
	if host == Routing {
		return c.routingURL
	}
	return c.platformURL
}

func (c *Client) do(ctx context.Context, method string, host Host, path string, query url.Values, body io.Reader, endpoint string) (*Response, error) {
	target := c.baseURL(host) + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(TokenHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(endpoint, 0, time.Since(start))
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.record(endpoint, resp.StatusCode, time.Since(start))
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	c.record(endpoint, resp.StatusCode, time.Since(start))

	log.WithFields(log.Fields{
		"method":   method,
		"host":     host.String(),
		"endpoint": endpoint,
		"status":   resp.StatusCode,
		"duration": time.Since(start).String(),
	}).Debug("riot request")

	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}

func (c *Client) record(endpoint string, status int, duration time.Duration) {
	if c.recorder != nil {
		c.recorder.RecordRiotRequest(endpoint, status, duration)
	}
}

// getJSON performs a GET and decodes a 200 body into v. Non-200 replies come
// back as *StatusError.
func (c *Client) getJSON(ctx context.Context, host Host, endpoint, path string, query url.Values, v interface{}) error {
	resp, err := c.do(ctx, http.MethodGet, host, path, query, nil, endpoint)
	if err != nil {
		return err
	}
	if err := resp.Err(); err != nil {
		return err
	}
	return resp.Decode(v)
}
