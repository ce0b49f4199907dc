// Package book implements the book detail command.
package book

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/mkarppi/openshelf/internal/browse"
	"github.com/mkarppi/openshelf/internal/note"
	"github.com/mkarppi/openshelf/internal/openlibrary"
	"github.com/mkarppi/openshelf/internal/wikipedia"
)

// Options configures one book detail run.
type Options struct {
	Key       string
	Editions  int
	Markdown  string
	Cover     string
	Overwrite bool
	JSON      bool
	Out       io.Writer
}

// Run loads the aggregated detail view and renders it, with optional
// editions listing, markdown export and cover download.
func Run(ctx context.Context, catalog browse.Catalog, enc browse.Encyclopedia, client *openlibrary.Client, opts Options) error {
	view := browse.LoadDetail(ctx, catalog, enc, opts.Key)
	if view.Err != nil {
		if openlibrary.IsNotFound(view.Err) {
			return fmt.Errorf("book not found: %s", opts.Key)
		}
		return view.Err
	}

	coverURL := ""
	if len(view.Book.Covers) > 0 {
		coverURL = client.CoverURL(view.Book.Covers[0], openlibrary.CoverLarge)
	}

	if opts.JSON {
		if err := writeJSON(opts.Out, view, coverURL); err != nil {
			return err
		}
	} else {
		render(opts.Out, view, coverURL)
	}

	if opts.Editions > 0 && strings.Contains(view.Book.Key, "/works/") {
		editions, err := client.WorkEditions(ctx, view.Book.Key, opts.Editions)
		if err != nil {
			return err
		}
		renderEditions(opts.Out, editions)
	}

	if opts.Markdown != "" {
		path, err := note.Write(opts.Markdown, view, coverURL, opts.Overwrite)
		if err != nil {
			return err
		}
		slog.Info("Wrote markdown note", "path", path)
	}

	if opts.Cover != "" {
		if coverURL == "" {
			slog.Warn("Book has no cover to download", "key", view.Book.Key)
		} else {
			savePath := filepath.Join(opts.Cover, coverFilename(view.Book.Title))
			if err := client.DownloadCover(ctx, coverURL, savePath, 0); err != nil {
				return fmt.Errorf("download cover: %w", err)
			}
			slog.Info("Downloaded cover", "path", savePath)
		}
	}

	return nil
}

func render(out io.Writer, view browse.DetailView, coverURL string) {
	book := view.Book
	fmt.Fprintf(out, "%s  [%s]\n", book.Title, book.Key)

	if len(view.Authors) > 0 {
		names := make([]string, len(view.Authors))
		for i, a := range view.Authors {
			names[i] = a.Name
		}
		fmt.Fprintf(out, "by %s\n", strings.Join(names, ", "))
	}
	fmt.Fprintln(out)

	if desc := book.Description.String(); desc != "" {
		fmt.Fprintf(out, "%s\n\n", strings.TrimSpace(desc))
	}

	if book.PublishDate != "" {
		fmt.Fprintf(out, "Published:  %s\n", book.PublishDate)
	}
	if book.NumberOfPages > 0 {
		fmt.Fprintf(out, "Pages:      %d\n", book.NumberOfPages)
	}
	if len(book.ISBN13) > 0 {
		fmt.Fprintf(out, "ISBN-13:    %s\n", strings.Join(book.ISBN13, ", "))
	} else if len(book.ISBN10) > 0 {
		fmt.Fprintf(out, "ISBN-10:    %s\n", strings.Join(book.ISBN10, ", "))
	}
	if len(book.Subjects) > 0 {
		limit := len(book.Subjects)
		if limit > 8 {
			limit = 8
		}
		fmt.Fprintf(out, "Subjects:   %s\n", strings.Join(book.Subjects[:limit], ", "))
	}
	if coverURL != "" {
		fmt.Fprintf(out, "Cover:      %s\n", coverURL)
	}

	if view.Summary != nil && view.Summary.Extract != "" {
		fmt.Fprintf(out, "\nFrom Wikipedia:\n%s\n%s\n",
			strings.TrimSpace(view.Summary.Extract),
			wikipedia.PageURL(view.Summary.Title))
	}
}

func renderEditions(out io.Writer, editions *openlibrary.Editions) {
	fmt.Fprintf(out, "\nEditions (%d total):\n", editions.Size)
	for _, e := range editions.Entries {
		line := fmt.Sprintf("- %s", e.Title)
		if len(e.Publishers) > 0 {
			line += ", " + e.Publishers[0]
		}
		if e.PublishDate != "" {
			line += ", " + e.PublishDate
		}
		fmt.Fprintf(out, "%s  [%s]\n", line, e.Key)
	}
}

func writeJSON(out io.Writer, view browse.DetailView, coverURL string) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Book     *openlibrary.Work    `json:"book"`
		Authors  []openlibrary.Author `json:"authors"`
		Summary  *wikipedia.Summary   `json:"summary,omitempty"`
		CoverURL string               `json:"coverUrl,omitempty"`
	}{
		Book:     view.Book,
		Authors:  view.Authors,
		Summary:  view.Summary,
		CoverURL: coverURL,
	})
}

func coverFilename(title string) string {
	name := strings.ReplaceAll(title, "/", "-")
	name = strings.ReplaceAll(name, ":", " -")
	return strings.TrimSpace(name) + " - cover.jpg"
}
