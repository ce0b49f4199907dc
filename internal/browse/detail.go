package browse

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mkarppi/openshelf/internal/openlibrary"
	"github.com/mkarppi/openshelf/internal/wikipedia"
)

// detailFanout caps concurrent dependent fetches per book.
const detailFanout = 8

// DetailView is the aggregated state of one book detail lookup: the
// book itself, its resolved authors and a best-effort encyclopedia
// summary keyed by the book title.
type DetailView struct {
	Book    *openlibrary.Work
	Authors []openlibrary.Author
	Summary *wikipedia.Summary
	Loading bool
	Err     error
}

// LoadDetail fetches one book to settlement. The book fetch gates
// everything: on failure no dependent fetch starts and the failure is
// the view's error. Author fetches then fan out concurrently with the
// encyclopedia lookup; each dependent failure is swallowed, leaving
// that author out of the list or the summary nil.
func LoadDetail(ctx context.Context, catalog Catalog, enc Encyclopedia, key string) DetailView {
	book, err := catalog.Work(ctx, key)
	if err != nil {
		return DetailView{Err: err}
	}

	resolved := make([]*openlibrary.Author, len(book.Authors))
	var summary *wikipedia.Summary

	var g errgroup.Group
	g.SetLimit(detailFanout)

	for i, ref := range book.Authors {
		g.Go(func() error {
			author, err := catalog.Author(ctx, ref.Author.Key)
			if err != nil {
				slog.Debug("Skipping unresolvable author", "key", ref.Author.Key, "error", err)
				return nil
			}
			resolved[i] = author
			return nil
		})
	}

	if enc != nil && book.Title != "" {
		g.Go(func() error {
			s, err := enc.Summary(ctx, book.Title)
			if err != nil {
				slog.Debug("Skipping encyclopedia summary", "title", book.Title, "error", err)
				return nil
			}
			summary = s
			return nil
		})
	}

	_ = g.Wait()

	// Keep the book's listed order; failed lookups are simply absent.
	authors := make([]openlibrary.Author, 0, len(resolved))
	for _, a := range resolved {
		if a != nil {
			authors = append(authors, *a)
		}
	}

	return DetailView{Book: book, Authors: authors, Summary: summary}
}

// DetailLoader re-derives a detail view whenever its book key changes,
// discarding completions for superseded keys.
type DetailLoader struct {
	catalog Catalog
	enc     Encyclopedia
	notify  func()

	mu   sync.Mutex
	gen  uint64
	view DetailView
}

// NewDetailLoader creates a DetailLoader. notify follows the same
// contract as in NewSearcher.
func NewDetailLoader(catalog Catalog, enc Encyclopedia, notify func()) *DetailLoader {
	return &DetailLoader{catalog: catalog, enc: enc, notify: notify}
}

// SetKey applies a new book identifier. An empty key settles to the
// idle view without a fetch.
func (d *DetailLoader) SetKey(ctx context.Context, key string) {
	d.mu.Lock()
	d.gen++
	gen := d.gen

	if key == "" {
		d.view = DetailView{}
		d.mu.Unlock()
		d.publish()
		return
	}

	d.view = DetailView{Loading: true}
	d.mu.Unlock()
	d.publish()

	go func() {
		view := LoadDetail(ctx, d.catalog, d.enc, key)

		d.mu.Lock()
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.view = view
		d.mu.Unlock()
		d.publish()
	}()
}

// View returns a copy of the current detail view.
func (d *DetailLoader) View() DetailView {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.view
}

func (d *DetailLoader) publish() {
	if d.notify != nil {
		d.notify()
	}
}
