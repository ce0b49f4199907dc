package openlibrary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// getJSON issues a GET for endpoint and decodes the body into target.
// Transport errors and 502/503 responses are retried up to the client's
// configured attempt count; op names the operation in errors.
func (c *Client) getJSON(ctx context.Context, op, endpoint string, target any) error {
	var lastErr error
	for attempt := 1; attempt <= c.retryAttempts; attempt++ {
		if err := c.doJSONRequest(ctx, op, endpoint, target); err != nil {
			lastErr = err
			if !isRetryable(err) || attempt == c.retryAttempts {
				return err
			}
			time.Sleep(retryDelay)
			continue
		}
		return nil
	}
	return lastErr
}

const retryDelay = time.Second

func (c *Client) doJSONRequest(ctx context.Context, op, endpoint string, target any) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RequestError{Op: op, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func isRetryable(err error) bool {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode == http.StatusBadGateway ||
			reqErr.StatusCode == http.StatusServiceUnavailable
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return true
		}
		// Connection resets and friends.
		if strings.Contains(urlErr.Error(), "connection") {
			return true
		}
	}
	return false
}

// normalizeKey gives a resource key a leading path separator when it
// lacks one.
func normalizeKey(key string) string {
	if strings.HasPrefix(key, "/") {
		return key
	}
	return "/" + key
}

// normalizeAuthorKey accepts both "/authors/OL1A" keys and bare
// "OL1A" IDs.
func normalizeAuthorKey(key string) string {
	if strings.HasPrefix(key, "/") {
		return key
	}
	return "/authors/" + key
}
