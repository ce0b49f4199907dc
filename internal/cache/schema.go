package cache

import "time"

// SQL schemas for the response cache tables. All tables use
// "cache_key" as the primary key column.

// SearchCacheSchema holds search result pages keyed by encoded query.
const SearchCacheSchema = `
CREATE TABLE IF NOT EXISTS search_cache (
	cache_key TEXT PRIMARY KEY NOT NULL,
	data TEXT NOT NULL,
	cached_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_search_cached_at ON search_cache(cached_at);
`

// WorkCacheSchema holds book/work detail records keyed by resource key.
const WorkCacheSchema = `
CREATE TABLE IF NOT EXISTS work_cache (
	cache_key TEXT PRIMARY KEY NOT NULL,
	data TEXT NOT NULL,
	cached_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_work_cached_at ON work_cache(cached_at);
`

// AuthorCacheSchema holds author detail records keyed by author key.
const AuthorCacheSchema = `
CREATE TABLE IF NOT EXISTS author_cache (
	cache_key TEXT PRIMARY KEY NOT NULL,
	data TEXT NOT NULL,
	cached_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_author_cached_at ON author_cache(cached_at);
`

// WikiCacheSchema holds encyclopedia summaries keyed by lookup title.
const WikiCacheSchema = `
CREATE TABLE IF NOT EXISTS wiki_cache (
	cache_key TEXT PRIMARY KEY NOT NULL,
	data TEXT NOT NULL,
	cached_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_wiki_cached_at ON wiki_cache(cached_at);
`

// ChangesCacheSchema holds recent-changes feed pages keyed by kind+limit.
const ChangesCacheSchema = `
CREATE TABLE IF NOT EXISTS changes_cache (
	cache_key TEXT PRIMARY KEY NOT NULL,
	data TEXT NOT NULL,
	cached_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_changes_cached_at ON changes_cache(cached_at);
`

// AllCacheSchemas contains all cache table schemas for initialization.
var AllCacheSchemas = []string{
	SearchCacheSchema,
	WorkCacheSchema,
	AuthorCacheSchema,
	WikiCacheSchema,
	ChangesCacheSchema,
}

// TableTTLs maps each cache table to its staleness window. An entry
// older than its window is refetched; it is not an error for the entry
// to linger until the retention sweep removes it.
var TableTTLs = map[string]time.Duration{
	"search_cache":  3 * time.Minute,
	"work_cache":    10 * time.Minute,
	"author_cache":  15 * time.Minute,
	"wiki_cache":    30 * time.Minute,
	"changes_cache": 5 * time.Minute,
}

// RetentionGrace is how long past its staleness window an entry may
// stay on disk before ClearExpired removes it.
const RetentionGrace = 15 * time.Minute

// ValidCacheTableNames is the whitelist of allowed cache table names,
// used to prevent SQL injection when interpolating table names.
var ValidCacheTableNames = map[string]bool{
	"search_cache":  true,
	"work_cache":    true,
	"author_cache":  true,
	"wiki_cache":    true,
	"changes_cache": true,
}

// TableTTL returns the staleness window for a table, or zero for an
// unknown table.
func TableTTL(tableName string) time.Duration {
	return TableTTLs[tableName]
}
