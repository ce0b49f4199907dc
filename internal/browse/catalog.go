// Package browse composes the API clients into the derived views the
// presentation layer consumes: search pages, book details with author
// and encyclopedia enrichment, and the recent-additions feed. Each
// orchestrator exposes a value-copy view with data, loading and error
// fields and discards responses superseded by newer input.
package browse

import (
	"context"

	"github.com/mkarppi/openshelf/internal/openlibrary"
	"github.com/mkarppi/openshelf/internal/wikipedia"
)

// Catalog is the book-catalog surface the orchestrators fetch from.
// *openlibrary.Client satisfies it, as does the cached decorator.
type Catalog interface {
	Search(ctx context.Context, criteria openlibrary.SearchCriteria) (*openlibrary.SearchResult, error)
	Work(ctx context.Context, key string) (*openlibrary.Work, error)
	Author(ctx context.Context, key string) (*openlibrary.Author, error)
	RecentChanges(ctx context.Context, kind string, limit int) ([]openlibrary.ChangeEvent, error)
}

// Encyclopedia is the summary-lookup surface. *wikipedia.Client
// satisfies it.
type Encyclopedia interface {
	Summary(ctx context.Context, title string) (*wikipedia.Summary, error)
}
