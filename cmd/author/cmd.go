// Package author implements the author detail command.
package author

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mkarppi/openshelf/internal/browse"
	"github.com/mkarppi/openshelf/internal/openlibrary"
)

// Options configures one author detail run.
type Options struct {
	Key   string
	Works int
	JSON  bool
	Out   io.Writer
}

// Run fetches one author and renders it, optionally with a works listing.
func Run(ctx context.Context, catalog browse.Catalog, client *openlibrary.Client, opts Options) error {
	author, err := catalog.Author(ctx, opts.Key)
	if err != nil {
		if openlibrary.IsNotFound(err) {
			return fmt.Errorf("author not found: %s", opts.Key)
		}
		return err
	}

	if opts.JSON {
		enc := json.NewEncoder(opts.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(author); err != nil {
			return err
		}
	} else {
		render(opts.Out, author)
	}

	if opts.Works > 0 {
		works, err := client.AuthorWorks(ctx, author.Key, opts.Works)
		if err != nil {
			return err
		}
		fmt.Fprintf(opts.Out, "\nWorks (%d total):\n", works.Size)
		for _, w := range works.Entries {
			fmt.Fprintf(opts.Out, "- %s  [%s]\n", w.Title, w.Key)
		}
	}

	return nil
}

func render(out io.Writer, author *openlibrary.Author) {
	fmt.Fprintf(out, "%s  [%s]\n", author.Name, author.Key)

	switch {
	case author.BirthDate != "" && author.DeathDate != "":
		fmt.Fprintf(out, "%s – %s\n", author.BirthDate, author.DeathDate)
	case author.BirthDate != "":
		fmt.Fprintf(out, "born %s\n", author.BirthDate)
	}

	if len(author.AlternateNames) > 0 {
		fmt.Fprintf(out, "also known as: %s\n", strings.Join(author.AlternateNames, ", "))
	}

	if bio := author.Bio.String(); bio != "" {
		fmt.Fprintf(out, "\n%s\n", strings.TrimSpace(bio))
	}
}
