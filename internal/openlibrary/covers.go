package openlibrary

import (
	"fmt"
	"strings"
)

// CoverSize selects a cover image size token.
type CoverSize string

const (
	CoverSmall  CoverSize = "S"
	CoverMedium CoverSize = "M"
	CoverLarge  CoverSize = "L"
)

// CoverURL formats the cover image URL for a numeric cover ID. Pure
// string formatting, no I/O. Returns "" for non-positive IDs.
func (c *Client) CoverURL(coverID int, size CoverSize) string {
	if coverID <= 0 {
		return ""
	}
	return fmt.Sprintf("%s/b/id/%d-%s.jpg", c.coversBaseURL, coverID, size)
}

// AuthorPhotoURL formats the author photo URL for an author OLID. Pure
// string formatting, no I/O.
func (c *Client) AuthorPhotoURL(authorKey string, size CoverSize) string {
	id := strings.TrimPrefix(normalizeAuthorKey(authorKey), "/authors/")
	if id == "" {
		return ""
	}
	return fmt.Sprintf("%s/a/olid/%s-%s.jpg", c.coversBaseURL, id, size)
}
