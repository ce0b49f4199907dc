package cmd

import (
	"github.com/spf13/viper"

	"github.com/mkarppi/openshelf/internal/browse"
	"github.com/mkarppi/openshelf/internal/cached"
	"github.com/mkarppi/openshelf/internal/config"
	"github.com/mkarppi/openshelf/internal/mockapi"
	"github.com/mkarppi/openshelf/internal/openlibrary"
	"github.com/mkarppi/openshelf/internal/wikipedia"
)

// deps bundles the data sources a command runs against.
type deps struct {
	catalog browse.Catalog
	enc     browse.Encyclopedia
	// client is the undecorated Open Library client, for operations
	// that bypass the cache (editions, subjects, lookups, covers).
	client *openlibrary.Client
}

// newClients builds the API clients, routed through the mock server
// when mock mode is on and wrapped in the response cache unless
// disabled. cleanup must be called when the command finishes.
func newClients() (deps, func()) {
	cleanup := func() {}

	var olOpts []openlibrary.Option
	var wikiOpts []wikipedia.Option
	if config.MocksEnabled {
		srv := mockapi.Start()
		olOpts = append(olOpts, openlibrary.WithBaseURL(srv.URL()), openlibrary.WithCoversBaseURL(srv.URL()))
		wikiOpts = append(wikiOpts, wikipedia.WithBaseURL(srv.WikiURL()))
		cleanup = srv.Close
	}

	client := openlibrary.NewClient(olOpts...)
	wiki := wikipedia.NewClient(wikiOpts...)

	if viper.GetBool("cache.disabled") {
		return deps{catalog: client, enc: wiki, client: client}, cleanup
	}
	return deps{
		catalog: cached.NewCatalog(client),
		enc:     cached.NewEncyclopedia(wiki),
		client:  client,
	}, cleanup
}
