package mockapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarppi/openshelf/internal/openlibrary"
	"github.com/mkarppi/openshelf/internal/ratelimit"
	"github.com/mkarppi/openshelf/internal/wikipedia"
)

func TestServerServesAllCatalogEndpoints(t *testing.T) {
	srv := Start()
	defer srv.Close()

	client := openlibrary.NewClient(
		openlibrary.WithBaseURL(srv.URL()),
		openlibrary.WithRateLimiter(ratelimit.New("test", 1000)),
	)
	ctx := context.Background()

	result, err := client.Search(ctx, openlibrary.SearchCriteria{Query: "anything"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Docs)

	work, err := client.Work(ctx, "/works/OL45883W")
	require.NoError(t, err)
	assert.NotEmpty(t, work.Title)
	assert.NotEmpty(t, work.Description.String(), "work fixture must exercise the wrapped description shape")

	editions, err := client.WorkEditions(ctx, "/works/OL45883W", 5)
	require.NoError(t, err)
	assert.NotEmpty(t, editions.Entries)

	author, err := client.Author(ctx, "/authors/OL23919A")
	require.NoError(t, err)
	assert.NotEmpty(t, author.Name)

	works, err := client.AuthorWorks(ctx, "/authors/OL23919A", 10)
	require.NoError(t, err)
	assert.NotEmpty(t, works.Entries)

	events, err := client.RecentChanges(ctx, "add-book", 50)
	require.NoError(t, err)
	require.NotEmpty(t, events)
	assert.NotEmpty(t, events[0].Changes)

	subject, err := client.Subject(ctx, "science_fiction", false)
	require.NoError(t, err)
	assert.NotEmpty(t, subject.Works)

	record, err := client.LookupByBibKey(ctx, "isbn", "9780451524935")
	require.NoError(t, err)
	assert.NotEmpty(t, record.Title)
}

func TestServerServesWikipediaEndpoint(t *testing.T) {
	srv := Start()
	defer srv.Close()

	client := wikipedia.NewClient(wikipedia.WithBaseURL(srv.WikiURL()))

	summary, err := client.Summary(context.Background(), "Nineteen Eighty-Four")
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.NotEmpty(t, summary.Extract)
}
