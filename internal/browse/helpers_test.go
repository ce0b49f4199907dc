package browse

import (
	"context"
	"sync"

	"github.com/mkarppi/openshelf/internal/openlibrary"
	"github.com/mkarppi/openshelf/internal/wikipedia"
)

// fakeCatalog implements Catalog with per-operation stubs and call
// counters.
type fakeCatalog struct {
	mu sync.Mutex

	searchCalls  int
	workCalls    int
	authorCalls  int
	changesCalls int

	searchFn  func(openlibrary.SearchCriteria) (*openlibrary.SearchResult, error)
	workFn    func(string) (*openlibrary.Work, error)
	authorFn  func(string) (*openlibrary.Author, error)
	changesFn func(string, int) ([]openlibrary.ChangeEvent, error)
}

func (f *fakeCatalog) Search(_ context.Context, criteria openlibrary.SearchCriteria) (*openlibrary.SearchResult, error) {
	f.mu.Lock()
	f.searchCalls++
	fn := f.searchFn
	f.mu.Unlock()
	return fn(criteria)
}

func (f *fakeCatalog) Work(_ context.Context, key string) (*openlibrary.Work, error) {
	f.mu.Lock()
	f.workCalls++
	fn := f.workFn
	f.mu.Unlock()
	return fn(key)
}

func (f *fakeCatalog) Author(_ context.Context, key string) (*openlibrary.Author, error) {
	f.mu.Lock()
	f.authorCalls++
	fn := f.authorFn
	f.mu.Unlock()
	return fn(key)
}

func (f *fakeCatalog) RecentChanges(_ context.Context, kind string, limit int) ([]openlibrary.ChangeEvent, error) {
	f.mu.Lock()
	f.changesCalls++
	fn := f.changesFn
	f.mu.Unlock()
	return fn(kind, limit)
}

func (f *fakeCatalog) calls() (search, work, author, changes int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.searchCalls, f.workCalls, f.authorCalls, f.changesCalls
}

// fakeEncyclopedia implements Encyclopedia.
type fakeEncyclopedia struct {
	mu        sync.Mutex
	calls     int
	summaryFn func(string) (*wikipedia.Summary, error)
}

func (f *fakeEncyclopedia) Summary(_ context.Context, title string) (*wikipedia.Summary, error) {
	f.mu.Lock()
	f.calls++
	fn := f.summaryFn
	f.mu.Unlock()
	return fn(title)
}

func workRef(authorKeys ...string) *openlibrary.Work {
	work := &openlibrary.Work{Key: "/works/OL1W", Title: "Test Book"}
	for _, key := range authorKeys {
		var ref openlibrary.AuthorRef
		ref.Author.Key = key
		work.Authors = append(work.Authors, ref)
	}
	return work
}
