// Package recent implements the recent-additions command.
package recent

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	searchcmd "github.com/mkarppi/openshelf/cmd/search"
	"github.com/mkarppi/openshelf/internal/browse"
	"github.com/mkarppi/openshelf/internal/openlibrary"
)

// Options configures one recent-additions run.
type Options struct {
	JSON bool
	Out  io.Writer
}

// Run fetches the recent-additions feed and lists the harvested books.
func Run(ctx context.Context, catalog browse.Catalog, opts Options) error {
	view := browse.LoadRecent(ctx, catalog)
	if view.Err != nil {
		return view.Err
	}

	if opts.JSON {
		return writeJSON(opts.Out, view)
	}

	if len(view.Books) == 0 {
		fmt.Fprintln(opts.Out, "no recently added books")
		return nil
	}

	fmt.Fprintf(opts.Out, "%d recently added books\n\n", len(view.Books))
	for _, book := range view.Books {
		fmt.Fprintln(opts.Out, searchcmd.FormatDoc(book))
	}
	return nil
}

func writeJSON(out io.Writer, view browse.RecentView) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Books []openlibrary.Doc `json:"books"`
	}{Books: view.Books})
}
