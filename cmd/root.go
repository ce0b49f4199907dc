// Package cmd wires the openshelf command tree.
package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	authorcmd "github.com/mkarppi/openshelf/cmd/author"
	bookcmd "github.com/mkarppi/openshelf/cmd/book"
	lookupcmd "github.com/mkarppi/openshelf/cmd/lookup"
	recentcmd "github.com/mkarppi/openshelf/cmd/recent"
	searchcmd "github.com/mkarppi/openshelf/cmd/search"
	subjectcmd "github.com/mkarppi/openshelf/cmd/subject"
	"github.com/mkarppi/openshelf/internal/cache"
	"github.com/mkarppi/openshelf/internal/config"
	"github.com/mkarppi/openshelf/internal/openlibrary"
	"github.com/mkarppi/openshelf/internal/theme"
	"github.com/mkarppi/openshelf/internal/tui"
)

// CLI is the complete command structure of openshelf.
type CLI struct {
	// Global flags
	CacheDBFile string `help:"Path to the response cache SQLite file" default:"./openshelf-cache.db"`
	NoCache     bool   `help:"Bypass the response cache"`
	Mock        bool   `help:"Serve canned API responses from the embedded mock server (development)"`

	Browse  BrowseCmd  `cmd:"" default:"1" help:"Browse the catalog interactively"`
	Search  SearchCmd  `cmd:"" help:"Search books by keywords, author, title or subject"`
	Book    BookCmd    `cmd:"" help:"Show one book with authors and background summary"`
	Recent  RecentCmd  `cmd:"" help:"List recently added books"`
	Author  AuthorCmd  `cmd:"" help:"Show one author"`
	Subject SubjectCmd `cmd:"" help:"Browse works filed under a subject"`
	Lookup  LookupCmd  `cmd:"" help:"Resolve a book by external identifier (ISBN, OLID, LCCN)"`
	Cache   CacheCmd   `cmd:"" help:"Manage the response cache"`
	Theme   ThemeCmd   `cmd:"" help:"Set the UI theme preference"`
}

// BrowseCmd starts the interactive TUI.
type BrowseCmd struct{}

// SearchCmd is the one-shot search command.
type SearchCmd struct {
	Query    string `arg:"" optional:"" help:"Free-text query"`
	Author   string `help:"Filter by author name"`
	Title    string `help:"Filter by title"`
	Subject  string `help:"Filter by subject"`
	Language string `help:"Filter by language code (e.g. eng, fre)"`
	YearFrom int    `help:"Lower bound on first publish year"`
	YearTo   int    `help:"Upper bound on first publish year"`
	Sort     string `help:"Sort order" enum:"new,old,random,key," default:""`
	Page     int    `help:"Result page (1-based)" default:"1"`
	JSON     bool   `help:"Write results as JSON"`
}

// BookCmd shows one book detail view.
type BookCmd struct {
	Key       string `arg:"" help:"Work or edition key, e.g. /works/OL45883W or OL7353617M"`
	Editions  int    `help:"Also list up to N editions of the work"`
	Markdown  string `help:"Export the book as a markdown note into this directory" type:"path"`
	Cover     string `help:"Download the cover image into this directory" type:"path"`
	Overwrite bool   `help:"Overwrite an existing markdown note"`
	JSON      bool   `help:"Write the aggregated view as JSON"`
}

// RecentCmd shows the recent-additions feed.
type RecentCmd struct {
	JSON bool `help:"Write results as JSON"`
}

// AuthorCmd shows one author.
type AuthorCmd struct {
	Key   string `arg:"" help:"Author key, e.g. /authors/OL23919A or OL23919A"`
	Works int    `help:"Also list up to N works by the author"`
	JSON  bool   `help:"Write the author as JSON"`
}

// SubjectCmd browses a subject slug.
type SubjectCmd struct {
	Slug    string `arg:"" help:"Subject slug, e.g. science_fiction"`
	Details bool   `help:"Request author/publisher breakdowns"`
	JSON    bool   `help:"Write the page as JSON"`
}

// LookupCmd resolves an external identifier.
type LookupCmd struct {
	ID   string `arg:"" help:"Identifier value, e.g. 9780451524935"`
	Type string `help:"Identifier type" enum:"isbn,olid,lccn,oclc" default:"isbn"`
	JSON bool   `help:"Write the record as JSON"`
}

// CacheCmd groups the cache admin subcommands.
type CacheCmd struct {
	Invalidate   cache.InvalidateCacheCmd `cmd:"" help:"Delete all cached entries for a source"`
	ClearExpired cache.ClearExpiredCmd    `cmd:"" name:"clear-expired" help:"Delete entries past their retention window"`
}

// ThemeCmd persists the theme preference.
type ThemeCmd struct {
	Value string `arg:"" enum:"light,dark" help:"Theme to use: light or dark"`
}

// Execute runs the Kong-based CLI.
func Execute() {
	initLogging()
	initConfig()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("openshelf"),
		kong.Description("Browse the Open Library catalog from the terminal."),
		kong.UsageOnError(),
	)

	updateGlobalConfig(&cli)

	if err := ctx.Run(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initLogging() {
	handler := humanlog.NewHandler(os.Stderr, &humanlog.Options{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

func initConfig() {
	config.SetDefaults()
	viper.AutomaticEnv()

	viper.SetConfigName("openshelf")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Debug("Config file not found, writing defaults")
			if err := viper.SafeWriteConfig(); err != nil {
				slog.Debug("Could not write default config file", "error", err)
			}
		} else {
			slog.Error("Fatal error reading config file", "error", err)
			os.Exit(1)
		}
	}

	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	viper.Set("cache.dbfile", cli.CacheDBFile)
	if cli.NoCache {
		viper.Set("cache.disabled", true)
	}
	if cli.Mock {
		config.SetMocksEnabled(true)
	}
}

// Run methods for each command.

func (b *BrowseCmd) Run() error {
	deps, cleanup := newClients()
	defer cleanup()
	return tui.Run(context.Background(), deps.catalog, deps.enc, theme.Load())
}

func (s *SearchCmd) Run() error {
	deps, cleanup := newClients()
	defer cleanup()

	criteria := openlibrary.SearchCriteria{
		Query:    s.Query,
		Author:   s.Author,
		Title:    s.Title,
		Subject:  s.Subject,
		Language: s.Language,
		YearFrom: s.YearFrom,
		YearTo:   s.YearTo,
		Sort:     s.Sort,
		Page:     s.Page,
	}
	return searchcmd.Run(context.Background(), deps.catalog, searchcmd.Options{
		Criteria: criteria,
		JSON:     s.JSON,
		Out:      os.Stdout,
	})
}

func (b *BookCmd) Run() error {
	deps, cleanup := newClients()
	defer cleanup()

	return bookcmd.Run(context.Background(), deps.catalog, deps.enc, deps.client, bookcmd.Options{
		Key:       b.Key,
		Editions:  b.Editions,
		Markdown:  b.Markdown,
		Cover:     b.Cover,
		Overwrite: b.Overwrite,
		JSON:      b.JSON,
		Out:       os.Stdout,
	})
}

func (r *RecentCmd) Run() error {
	deps, cleanup := newClients()
	defer cleanup()

	return recentcmd.Run(context.Background(), deps.catalog, recentcmd.Options{
		JSON: r.JSON,
		Out:  os.Stdout,
	})
}

func (a *AuthorCmd) Run() error {
	deps, cleanup := newClients()
	defer cleanup()

	return authorcmd.Run(context.Background(), deps.catalog, deps.client, authorcmd.Options{
		Key:   a.Key,
		Works: a.Works,
		JSON:  a.JSON,
		Out:   os.Stdout,
	})
}

func (s *SubjectCmd) Run() error {
	deps, cleanup := newClients()
	defer cleanup()

	return subjectcmd.Run(context.Background(), deps.client, subjectcmd.Options{
		Slug:    s.Slug,
		Details: s.Details,
		JSON:    s.JSON,
		Out:     os.Stdout,
	})
}

func (l *LookupCmd) Run() error {
	deps, cleanup := newClients()
	defer cleanup()

	return lookupcmd.Run(context.Background(), deps.client, lookupcmd.Options{
		Type: l.Type,
		ID:   l.ID,
		JSON: l.JSON,
		Out:  os.Stdout,
	})
}

func (t *ThemeCmd) Run() error {
	return theme.Load().Set(t.Value)
}
