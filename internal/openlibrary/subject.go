package openlibrary

import (
	"context"
	"fmt"
	"strings"
)

// Subject browses works filed under a subject slug (e.g. "love",
// "science_fiction"). details requests author and publisher breakdowns
// in addition to the work list.
func (c *Client) Subject(ctx context.Context, slug string, details bool) (*SubjectPage, error) {
	slug = strings.TrimPrefix(slug, "/subjects/")
	endpoint := fmt.Sprintf("%s/subjects/%s.json", c.baseURL, slug)
	if details {
		endpoint += "?details=true"
	}

	var page SubjectPage
	if err := c.getJSON(ctx, "browse subject", endpoint, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
