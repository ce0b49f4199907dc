package openlibrary

import (
	"context"
	"fmt"
	"strings"
)

// Work fetches one book or work detail record. The key may be a full
// "/works/OL45883W" or "/books/OL7353617M" path, with or without the
// leading separator.
func (c *Client) Work(ctx context.Context, key string) (*Work, error) {
	endpoint := fmt.Sprintf("%s%s.json", c.baseURL, normalizeKey(key))

	var work Work
	if err := c.getJSON(ctx, "fetch book", endpoint, &work); err != nil {
		return nil, err
	}
	return &work, nil
}

// WorkEditions lists editions of a work.
func (c *Client) WorkEditions(ctx context.Context, workKey string, limit int) (*Editions, error) {
	if limit <= 0 {
		limit = 10
	}
	workID := strings.TrimPrefix(normalizeKey(workKey), "/works/")
	endpoint := fmt.Sprintf("%s/works/%s/editions.json?limit=%d", c.baseURL, workID, limit)

	var editions Editions
	if err := c.getJSON(ctx, "fetch editions", endpoint, &editions); err != nil {
		return nil, err
	}
	return &editions, nil
}
