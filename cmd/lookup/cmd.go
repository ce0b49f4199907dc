// Package lookup implements the external-identifier lookup command.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mkarppi/openshelf/internal/openlibrary"
)

// Options configures one lookup run.
type Options struct {
	Type string
	ID   string
	JSON bool
	Out  io.Writer
}

// Run resolves one external identifier to a book record.
func Run(ctx context.Context, client *openlibrary.Client, opts Options) error {
	record, err := client.LookupByBibKey(ctx, opts.Type, opts.ID)
	if err != nil {
		if openlibrary.IsNotFound(err) {
			return fmt.Errorf("no book found for %s %s", opts.Type, opts.ID)
		}
		return err
	}

	if opts.JSON {
		enc := json.NewEncoder(opts.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(record)
	}

	fmt.Fprintf(opts.Out, "%s  [%s]\n", record.Title, record.Key)
	if len(record.Authors) > 0 {
		names := make([]string, len(record.Authors))
		for i, a := range record.Authors {
			names[i] = a.Name
		}
		fmt.Fprintf(opts.Out, "by %s\n", strings.Join(names, ", "))
	}
	if record.PublishDate != "" {
		fmt.Fprintf(opts.Out, "Published: %s", record.PublishDate)
		if len(record.Publishers) > 0 {
			fmt.Fprintf(opts.Out, " (%s)", record.Publishers[0].Name)
		}
		fmt.Fprintln(opts.Out)
	}
	if record.NumberOfPages > 0 {
		fmt.Fprintf(opts.Out, "Pages: %d\n", record.NumberOfPages)
	}
	fmt.Fprintf(opts.Out, "%s\n", record.URL)
	return nil
}
