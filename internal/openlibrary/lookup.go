package openlibrary

import (
	"context"
	"fmt"
	"strings"
)

// LookupByBibKey resolves a book by an external identifier (ISBN, OLID,
// LCCN, OCLC) through the cross-identifier endpoint. Returns ErrNotFound
// when the identifier resolves to nothing.
func (c *Client) LookupByBibKey(ctx context.Context, typ, id string) (*LookupRecord, error) {
	bibkey := fmt.Sprintf("%s:%s", strings.ToUpper(typ), id)
	endpoint := fmt.Sprintf("%s/api/books?bibkeys=%s&jscmd=data&format=json", c.baseURL, bibkey)

	var result map[string]LookupRecord
	if err := c.getJSON(ctx, "lookup book", endpoint, &result); err != nil {
		return nil, err
	}

	record, ok := result[bibkey]
	if !ok {
		return nil, fmt.Errorf("lookup book: %s: %w", bibkey, ErrNotFound)
	}
	return &record, nil
}
