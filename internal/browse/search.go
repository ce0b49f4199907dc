package browse

import (
	"context"
	"sync"

	"github.com/mkarppi/openshelf/internal/openlibrary"
)

// SearchView is the derived state of one search input.
type SearchView struct {
	Results    []openlibrary.Doc
	TotalCount int
	Loading    bool
	Err        error
}

// SearchOnce runs a single search to settlement. Criteria without any
// searchable field short-circuit to an empty view with no network call.
func SearchOnce(ctx context.Context, catalog Catalog, criteria openlibrary.SearchCriteria) SearchView {
	if !criteria.HasFilter() {
		return SearchView{}
	}
	result, err := catalog.Search(ctx, criteria)
	if err != nil {
		return SearchView{Err: err}
	}
	return SearchView{Results: result.Docs, TotalCount: result.NumFound}
}

// Searcher re-derives a search view whenever its criteria change.
// Responses belonging to superseded criteria are discarded: the last
// applied input always wins.
type Searcher struct {
	catalog Catalog
	notify  func()

	mu   sync.Mutex
	gen  uint64
	view SearchView
}

// NewSearcher creates a Searcher. notify, when non-nil, is called after
// every view change (fetch start and settlement); it must not call back
// into the Searcher synchronously.
func NewSearcher(catalog Catalog, notify func()) *Searcher {
	return &Searcher{catalog: catalog, notify: notify}
}

// SetCriteria applies a new search input. An input with no searchable
// field settles immediately to the empty view; otherwise the fetch runs
// asynchronously and the view passes through a loading state. Overlapping
// in-flight fetches are not deduplicated; stale completions are dropped.
func (s *Searcher) SetCriteria(ctx context.Context, criteria openlibrary.SearchCriteria) {
	s.mu.Lock()
	s.gen++
	gen := s.gen

	if !criteria.HasFilter() {
		s.view = SearchView{}
		s.mu.Unlock()
		s.publish()
		return
	}

	s.view.Loading = true
	s.mu.Unlock()
	s.publish()

	go func() {
		view := SearchOnce(ctx, s.catalog, criteria)

		s.mu.Lock()
		if gen != s.gen {
			s.mu.Unlock()
			return
		}
		s.view = view
		s.mu.Unlock()
		s.publish()
	}()
}

// View returns a copy of the current search view.
func (s *Searcher) View() SearchView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

func (s *Searcher) publish() {
	if s.notify != nil {
		s.notify()
	}
}
