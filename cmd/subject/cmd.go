// Package subject implements the subject browse command.
package subject

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mkarppi/openshelf/internal/openlibrary"
)

// Options configures one subject browse run.
type Options struct {
	Slug    string
	Details bool
	JSON    bool
	Out     io.Writer
}

// Run fetches the subject page and lists its works.
func Run(ctx context.Context, client *openlibrary.Client, opts Options) error {
	page, err := client.Subject(ctx, opts.Slug, opts.Details)
	if err != nil {
		if openlibrary.IsNotFound(err) {
			return fmt.Errorf("subject not found: %s", opts.Slug)
		}
		return err
	}

	if opts.JSON {
		enc := json.NewEncoder(opts.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(page)
	}

	fmt.Fprintf(opts.Out, "%s — %d works\n\n", page.Name, page.WorkCount)
	for _, w := range page.Works {
		line := w.Title
		if len(w.Authors) > 0 {
			line += " — " + w.Authors[0].Name
		}
		if w.FirstPublishYear > 0 {
			line += fmt.Sprintf(" (%d)", w.FirstPublishYear)
		}
		fmt.Fprintf(opts.Out, "%s  [%s]\n", line, w.Key)
	}
	return nil
}
