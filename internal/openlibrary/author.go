package openlibrary

import (
	"context"
	"fmt"
	"strings"
)

// Author fetches one author detail record. Both "/authors/OL23919A"
// keys and bare "OL23919A" IDs are accepted.
func (c *Client) Author(ctx context.Context, key string) (*Author, error) {
	endpoint := fmt.Sprintf("%s%s.json", c.baseURL, normalizeAuthorKey(key))

	var author Author
	if err := c.getJSON(ctx, "fetch author", endpoint, &author); err != nil {
		return nil, err
	}
	return &author, nil
}

// AuthorWorks lists works attributed to an author.
func (c *Client) AuthorWorks(ctx context.Context, authorKey string, limit int) (*AuthorWorks, error) {
	if limit <= 0 {
		limit = 50
	}
	authorID := strings.TrimPrefix(normalizeAuthorKey(authorKey), "/authors/")
	endpoint := fmt.Sprintf("%s/authors/%s/works.json?limit=%d", c.baseURL, authorID, limit)

	var works AuthorWorks
	if err := c.getJSON(ctx, "fetch author works", endpoint, &works); err != nil {
		return nil, err
	}
	return &works, nil
}
