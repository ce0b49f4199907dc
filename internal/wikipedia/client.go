// Package wikipedia provides a minimal client for the Wikipedia
// query API, used to enrich book details with an intro summary.
package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mkarppi/openshelf/internal/ratelimit"
)

const defaultBaseURL = "https://en.wikipedia.org/w/api.php"

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is a Wikipedia query API client.
type Client struct {
	baseURL     string
	httpClient  HTTPDoer
	rateLimiter *ratelimit.Limiter
}

// NewClient creates a new Wikipedia client.
func NewClient(opts ...Option) *Client {
	client := &Client{
		baseURL:     defaultBaseURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		rateLimiter: ratelimit.New("Wikipedia", 2),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

// WithBaseURL sets a custom API endpoint. Used by tests and the
// mock-API mode.
func WithBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// Summary looks up a page by free-text title and returns its intro
// extract and thumbnail. The lookup is best-effort: titles are matched
// fuzzily by the API and a missing page yields (nil, nil), not an
// error. Only transport and HTTP-status failures are returned.
func (c *Client) Summary(ctx context.Context, title string) (*Summary, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("prop", "extracts|pageimages")
	params.Set("exintro", "1")
	params.Set("explaintext", "1")
	params.Set("exsentences", "3")
	params.Set("piprop", "thumbnail")
	params.Set("pithumbsize", "400")
	params.Set("redirects", "1")
	params.Set("titles", title)

	endpoint := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("wikipedia summary: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wikipedia summary: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("wikipedia summary: unexpected status %s", resp.Status)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("wikipedia summary: decode response: %w", err)
	}

	if body.Query == nil || len(body.Query.Pages) == 0 {
		return nil, nil
	}

	// The pages map holds a single entry keyed by page ID; a key of
	// "-1" marks a miss.
	for _, page := range body.Query.Pages {
		if page.PageID == 0 {
			continue
		}
		return &page, nil
	}
	return nil, nil
}

// PageURL formats the canonical article URL for a page title. Pure
// string formatting, no I/O.
func PageURL(title string) string {
	return "https://en.wikipedia.org/wiki/" + url.PathEscape(strings.ReplaceAll(title, " ", "_"))
}

// Summary is a page intro summary with an optional thumbnail.
type Summary struct {
	Title     string `json:"title"`
	PageID    int    `json:"pageid"`
	Extract   string `json:"extract,omitempty"`
	Thumbnail *struct {
		Source string `json:"source"`
		Width  int    `json:"width"`
		Height int    `json:"height"`
	} `json:"thumbnail,omitempty"`
}

type response struct {
	Query *struct {
		Pages map[string]Summary `json:"pages"`
	} `json:"query"`
}
