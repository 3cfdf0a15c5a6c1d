package jupiter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Client represents a Jupiter API client
type Client struct {
	httpClient *http.Client
	quoteAPI   string
	priceAPI   string
	logger     *log.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithQuoteAPI overrides the quote API base URL.
func WithQuoteAPI(base string) Option {
	return func(c *Client) { c.quoteAPI = strings.TrimSuffix(base, "/") }
}

// WithPriceAPI overrides the price API base URL.
func WithPriceAPI(base string) Option {
	return func(c *Client) { c.priceAPI = strings.TrimSuffix(base, "/") }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a new Jupiter API client
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		quoteAPI: DefaultQuoteAPI,
		priceAPI: DefaultPriceAPI,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	return GetJSON(ctx, c.httpClient, url, out)
}

func (c *Client) postJSON(ctx context.Context, url string, in, out interface{}) error {
	return PostJSON(ctx, c.httpClient, url, in, out)
}

// GetJSON issues a GET and decodes the response body into out, classifying
// API-reported errors along the way. Shared by both API-version bindings.
func GetJSON(ctx context.Context, httpClient *http.Client, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return do(httpClient, req, out)
}

// PostJSON issues a POST with a JSON body and decodes the response into out.
func PostJSON(ctx context.Context, httpClient *http.Client, url string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return do(httpClient, req, out)
}

func do(httpClient *http.Client, req *http.Request, out interface{}) error {
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call jupiter api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read jupiter response: %w", err)
	}

	// The API reports failures both via status codes and via an in-band
	// error envelope on some endpoints; check for either.
	if apiErr := apiErrorFromBody(resp.StatusCode, body); apiErr != nil {
		return apiErr
	}
	if resp.StatusCode != http.StatusOK {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    truncate(string(body), 256),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode jupiter response: %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
