package openlibrary

import (
	"context"
	"fmt"
)

// Search runs one catalog search and returns the matching result page.
// The caller is expected to gate on criteria.HasFilter(); Search itself
// issues the request unconditionally.
func (c *Client) Search(ctx context.Context, criteria SearchCriteria) (*SearchResult, error) {
	endpoint := fmt.Sprintf("%s/search.json?%s", c.baseURL, buildSearchQuery(criteria).Encode())

	var result SearchResult
	if err := c.getJSON(ctx, "search books", endpoint, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
