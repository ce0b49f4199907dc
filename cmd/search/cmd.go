// Package search implements the one-shot search command.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mkarppi/openshelf/internal/browse"
	"github.com/mkarppi/openshelf/internal/openlibrary"
)

// Options configures one search run.
type Options struct {
	Criteria openlibrary.SearchCriteria
	JSON     bool
	Out      io.Writer
}

// Run executes the search and renders the result page.
func Run(ctx context.Context, catalog browse.Catalog, opts Options) error {
	if !opts.Criteria.HasFilter() {
		return fmt.Errorf("nothing to search for: provide a query, --author, --title or --subject")
	}

	view := browse.SearchOnce(ctx, catalog, opts.Criteria)
	if view.Err != nil {
		return view.Err
	}

	if opts.JSON {
		return writeJSON(opts.Out, view)
	}

	if view.TotalCount == 0 {
		fmt.Fprintln(opts.Out, "no books matched")
		return nil
	}

	page := opts.Criteria.Page
	if page < 1 {
		page = 1
	}
	fmt.Fprintf(opts.Out, "%d results (page %d)\n\n", view.TotalCount, page)
	for _, doc := range view.Results {
		fmt.Fprintln(opts.Out, FormatDoc(doc))
	}
	return nil
}

// FormatDoc renders one result line: title, authors, year, key.
func FormatDoc(doc openlibrary.Doc) string {
	var b strings.Builder
	b.WriteString(doc.Title)
	if len(doc.AuthorNames) > 0 {
		fmt.Fprintf(&b, " — %s", strings.Join(doc.AuthorNames, ", "))
	}
	if doc.FirstPublishYear > 0 {
		fmt.Fprintf(&b, " (%d)", doc.FirstPublishYear)
	}
	fmt.Fprintf(&b, "  [%s]", doc.Key)
	return b.String()
}

func writeJSON(out io.Writer, view browse.SearchView) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		TotalCount int               `json:"totalCount"`
		Results    []openlibrary.Doc `json:"results"`
	}{
		TotalCount: view.TotalCount,
		Results:    view.Results,
	})
}
