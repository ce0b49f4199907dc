package openlibrary

import (
	"context"
	"fmt"
)

// RecentChanges fetches the most recent change events, newest first.
// kind filters by change kind (e.g. "add-book"); an empty kind fetches
// the unfiltered feed. Bot edits are always excluded.
func (c *Client) RecentChanges(ctx context.Context, kind string, limit int) ([]ChangeEvent, error) {
	if limit <= 0 {
		limit = 100
	}

	var endpoint string
	if kind != "" {
		endpoint = fmt.Sprintf("%s/recentchanges/%s.json?limit=%d&bot=false", c.baseURL, kind, limit)
	} else {
		endpoint = fmt.Sprintf("%s/recentchanges.json?limit=%d&bot=false", c.baseURL, limit)
	}

	var events []ChangeEvent
	if err := c.getJSON(ctx, "fetch recent changes", endpoint, &events); err != nil {
		return nil, err
	}
	return events, nil
}
