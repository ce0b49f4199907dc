package openlibrary

import (
	"fmt"
	"net/url"
	"strconv"
)

// pageSize is the fixed page size of every search request.
const pageSize = 20

// searchFields is the fixed field-selection list appended to every
// search request to keep response payloads small.
const searchFields = "key,title,author_name,author_key,first_publish_year,isbn,cover_i,publisher,subject,language,number_of_pages_median,edition_count"

// SearchCriteria is one search input. At least one of Query, Author,
// Title or Subject must be non-empty for a search to be issued.
type SearchCriteria struct {
	Query    string
	Author   string
	Title    string
	Subject  string
	Language string
	YearFrom int
	YearTo   int
	// Sort is passed through verbatim: "new", "old", "random" or "key".
	// Empty means relevance order.
	Sort string
	// Page is 1-based; zero is treated as page 1.
	Page int
}

// HasFilter reports whether the criteria carry at least one searchable
// field. Criteria without one define an empty result set and must not
// produce a network call.
func (c SearchCriteria) HasFilter() bool {
	return c.Query != "" || c.Author != "" || c.Title != "" || c.Subject != ""
}

// buildSearchQuery maps criteria to the wire query parameters. The
// mapping is pure: equal criteria always encode to equal query strings.
//
// A year range folds into the q parameter as a
// first_publish_year:[A TO B] clause, open ends written as *. Bound
// ordering is not validated; an inverted range passes through as-is.
func buildSearchQuery(c SearchCriteria) url.Values {
	q := c.Query
	if c.YearFrom != 0 || c.YearTo != 0 {
		from, to := "*", "*"
		if c.YearFrom != 0 {
			from = strconv.Itoa(c.YearFrom)
		}
		if c.YearTo != 0 {
			to = strconv.Itoa(c.YearTo)
		}
		clause := fmt.Sprintf("first_publish_year:[%s TO %s]", from, to)
		if q != "" {
			q = q + " AND " + clause
		} else {
			q = clause
		}
	}

	params := url.Values{}
	if q != "" {
		params.Set("q", q)
	}
	if c.Author != "" {
		params.Set("author", c.Author)
	}
	if c.Title != "" {
		params.Set("title", c.Title)
	}
	if c.Subject != "" {
		params.Set("subject", c.Subject)
	}
	if c.Language != "" {
		params.Set("lang", c.Language)
	}

	page := c.Page
	if page < 1 {
		page = 1
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(pageSize))

	if c.Sort != "" {
		params.Set("sort", c.Sort)
	}
	params.Set("fields", searchFields)

	return params
}
