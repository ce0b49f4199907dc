package cache

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"
)

// sourceTables maps CLI source names to cache table names.
var sourceTables = map[string]string{
	"search":  "search_cache",
	"works":   "work_cache",
	"authors": "author_cache",
	"wiki":    "wiki_cache",
	"changes": "changes_cache",
}

// InvalidateCacheCmd represents the cache invalidate subcommand.
type InvalidateCacheCmd struct {
	Source string `arg:"" help:"Cache source to invalidate: search, works, authors, wiki, changes" required:""`
}

func (i *InvalidateCacheCmd) Run() error {
	tableName, ok := sourceTables[i.Source]
	if !ok {
		return fmt.Errorf("invalid cache source %q; valid sources are: search, works, authors, wiki, changes", i.Source)
	}

	slog.Info("Invalidating cache", "source", i.Source, "database", viper.GetString("cache.dbfile"))

	db, err := GetGlobalCache()
	if err != nil {
		return fmt.Errorf("failed to open cache database: %w", err)
	}

	rowsDeleted, err := db.InvalidateSource(tableName)
	if err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}

	slog.Info("Cache invalidated", "source", i.Source, "rows_deleted", rowsDeleted)
	return nil
}

// ClearExpiredCmd removes entries past their retention window from
// every cache table.
type ClearExpiredCmd struct{}

func (c *ClearExpiredCmd) Run() error {
	db, err := GetGlobalCache()
	if err != nil {
		return fmt.Errorf("failed to open cache database: %w", err)
	}

	for tableName := range ValidCacheTableNames {
		if err := db.ClearExpired(tableName); err != nil {
			return err
		}
	}
	return nil
}
