package browse

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mkarppi/openshelf/internal/openlibrary"
)

const (
	// changeKind filters the feed down to newly added books.
	changeKind = "add-book"
	// changeFeedLimit is how many feed events one refresh scans.
	changeFeedLimit = 50
	// maxRecentBooks caps how many harvested keys get a detail fetch.
	maxRecentBooks = 12
	recentFanout   = 6
)

var yearPattern = regexp.MustCompile(`\d{4}`)

// RecentView is the derived state of the recent-additions feed.
type RecentView struct {
	Books   []openlibrary.Doc
	Loading bool
	Err     error
}

// LoadRecent fetches the recent-additions view to settlement: scan the
// add-book change feed, harvest up to maxRecentBooks distinct book or
// work keys in first-seen order, fetch each detail concurrently and
// project the successes. Individual detail failures are dropped; only a
// feed fetch failure becomes the view's error.
func LoadRecent(ctx context.Context, catalog Catalog) RecentView {
	events, err := catalog.RecentChanges(ctx, changeKind, changeFeedLimit)
	if err != nil {
		return RecentView{Err: err}
	}

	keys := harvestBookKeys(events, maxRecentBooks)

	fetched := make([]*openlibrary.Doc, len(keys))
	var g errgroup.Group
	g.SetLimit(recentFanout)

	for i, key := range keys {
		g.Go(func() error {
			work, err := catalog.Work(ctx, key)
			if err != nil {
				slog.Debug("Dropping unfetchable recent book", "key", key, "error", err)
				return nil
			}
			doc := projectWork(work)
			fetched[i] = &doc
			return nil
		})
	}

	_ = g.Wait()

	books := make([]openlibrary.Doc, 0, len(fetched))
	for _, b := range fetched {
		if b != nil {
			books = append(books, *b)
		}
	}

	return RecentView{Books: books}
}

// harvestBookKeys collects the distinct book/work keys referenced by
// the events' change lists, preserving first-seen order, capped at limit.
func harvestBookKeys(events []openlibrary.ChangeEvent, limit int) []string {
	seen := make(map[string]bool)
	keys := make([]string, 0, limit)

	for _, event := range events {
		for _, change := range event.Changes {
			key := change.Key
			if !strings.HasPrefix(key, "/books/") && !strings.HasPrefix(key, "/works/") {
				continue
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			keys = append(keys, key)
			if len(keys) == limit {
				return keys
			}
		}
	}
	return keys
}

// projectWork maps a fetched detail record into the search-document
// shape the book grids render. Author names are intentionally left
// empty in this path; resolving them would cost one more fetch per
// book.
func projectWork(work *openlibrary.Work) openlibrary.Doc {
	doc := openlibrary.Doc{
		Key:         work.Key,
		Title:       work.Title,
		AuthorNames: []string{},
	}
	if len(work.Covers) > 0 {
		doc.CoverID = work.Covers[0]
	}
	doc.FirstPublishYear = publishYear(work.PublishDate)
	return doc
}

// publishYear extracts the first 4-digit run from a free-form publish
// date string. No match yields zero, not an error.
func publishYear(date string) int {
	match := yearPattern.FindString(date)
	if match == "" {
		return 0
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return year
}

// RecentLoader re-derives the recent-additions view on demand,
// discarding completions superseded by a newer refresh.
type RecentLoader struct {
	catalog Catalog
	notify  func()

	mu   sync.Mutex
	gen  uint64
	view RecentView
}

// NewRecentLoader creates a RecentLoader. notify follows the same
// contract as in NewSearcher.
func NewRecentLoader(catalog Catalog, notify func()) *RecentLoader {
	return &RecentLoader{catalog: catalog, notify: notify}
}

// Refresh re-fetches the feed asynchronously.
func (r *RecentLoader) Refresh(ctx context.Context) {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	r.view.Loading = true
	r.mu.Unlock()
	r.publish()

	go func() {
		view := LoadRecent(ctx, r.catalog)

		r.mu.Lock()
		if gen != r.gen {
			r.mu.Unlock()
			return
		}
		r.view = view
		r.mu.Unlock()
		r.publish()
	}()
}

// View returns a copy of the current recent-additions view.
func (r *RecentLoader) View() RecentView {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.view
}

func (r *RecentLoader) publish() {
	if r.notify != nil {
		r.notify()
	}
}
