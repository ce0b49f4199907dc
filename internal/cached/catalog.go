// Package cached decorates the API clients with the SQLite response
// cache. A decorated call within a resource's staleness window replays
// the stored response instead of hitting the network; every cache
// problem degrades to a direct fetch.
package cached

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mkarppi/openshelf/internal/cache"
	"github.com/mkarppi/openshelf/internal/openlibrary"
	"github.com/mkarppi/openshelf/internal/wikipedia"
)

// Catalog wraps an Open Library client with per-resource caching. It
// satisfies browse.Catalog.
type Catalog struct {
	client *openlibrary.Client
}

// NewCatalog creates a caching decorator around client.
func NewCatalog(client *openlibrary.Client) *Catalog {
	return &Catalog{client: client}
}

// Client returns the undecorated client, for operations that bypass the
// cache (cover downloads, identifier lookups).
func (c *Catalog) Client() *openlibrary.Client {
	return c.client
}

func (c *Catalog) Search(ctx context.Context, criteria openlibrary.SearchCriteria) (*openlibrary.SearchResult, error) {
	key, err := json.Marshal(criteria)
	if err != nil {
		return c.client.Search(ctx, criteria)
	}
	result, _, err := cache.GetOrFetch("search_cache", string(key), func() (*openlibrary.SearchResult, error) {
		return c.client.Search(ctx, criteria)
	})
	return result, err
}

func (c *Catalog) Work(ctx context.Context, key string) (*openlibrary.Work, error) {
	work, _, err := cache.GetOrFetch("work_cache", key, func() (*openlibrary.Work, error) {
		return c.client.Work(ctx, key)
	})
	return work, err
}

func (c *Catalog) Author(ctx context.Context, key string) (*openlibrary.Author, error) {
	author, _, err := cache.GetOrFetch("author_cache", key, func() (*openlibrary.Author, error) {
		return c.client.Author(ctx, key)
	})
	return author, err
}

func (c *Catalog) RecentChanges(ctx context.Context, kind string, limit int) ([]openlibrary.ChangeEvent, error) {
	cacheKey := fmt.Sprintf("%s:%d", kind, limit)
	events, _, err := cache.GetOrFetch("changes_cache", cacheKey, func() ([]openlibrary.ChangeEvent, error) {
		return c.client.RecentChanges(ctx, kind, limit)
	})
	return events, err
}

// Encyclopedia wraps a Wikipedia client with summary caching. It
// satisfies browse.Encyclopedia.
type Encyclopedia struct {
	client *wikipedia.Client
}

// NewEncyclopedia creates a caching decorator around client.
func NewEncyclopedia(client *wikipedia.Client) *Encyclopedia {
	return &Encyclopedia{client: client}
}

func (e *Encyclopedia) Summary(ctx context.Context, title string) (*wikipedia.Summary, error) {
	summary, _, err := cache.GetOrFetch("wiki_cache", title, func() (*wikipedia.Summary, error) {
		return e.client.Summary(ctx, title)
	})
	return summary, err
}
