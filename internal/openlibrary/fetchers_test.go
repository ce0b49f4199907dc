package openlibrary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarppi/openshelf/internal/ratelimit"
)

func TestSearchRequestShape(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"numFound":1,"start":0,"docs":[{"key":"/works/OL1W","title":"Dune"}]}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	result, err := client.Search(context.Background(), SearchCriteria{Query: "dune", YearFrom: 1960})
	require.NoError(t, err)

	assert.Equal(t, "/search.json", gotPath)
	assert.Equal(t, []string{"dune AND first_publish_year:[1960 TO *]"}, gotQuery["q"])
	assert.Equal(t, []string{"20"}, gotQuery["limit"])

	assert.Equal(t, 1, result.NumFound)
	require.Len(t, result.Docs, 1)
	assert.Equal(t, "Dune", result.Docs[0].Title)
}

func TestSearchDefaultPaging(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"numFound":0,"start":0,"docs":[]}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.Search(context.Background(), SearchCriteria{Title: "Gatsby"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Gatsby"}, gotQuery["title"])
	assert.Equal(t, []string{"1"}, gotQuery["page"])
	assert.Equal(t, []string{"20"}, gotQuery["limit"])
	assert.Equal(t, []string{searchFields}, gotQuery["fields"])
}

func TestSearchServiceUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(
		WithBaseURL(server.URL),
		WithRetryAttempts(1),
		WithRateLimiter(ratelimit.New("test", 1000)),
	)

	result, err := client.Search(context.Background(), SearchCriteria{Query: "dune"})
	require.Error(t, err)
	assert.Nil(t, result)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusServiceUnavailable, reqErr.StatusCode)
}

func TestWorkNormalizesKey(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"key":"/works/OL45883W","title":"Nineteen Eighty-Four"}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	work, err := client.Work(context.Background(), "works/OL45883W")
	require.NoError(t, err)

	assert.Equal(t, "/works/OL45883W.json", gotPath)
	assert.Equal(t, "Nineteen Eighty-Four", work.Title)
}

func TestWorkEditionsPath(t *testing.T) {
	var gotURL string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		_, _ = w.Write([]byte(`{"size":2,"entries":[{"key":"/books/OL1M","title":"First"},{"key":"/books/OL2M","title":"Second"}]}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	editions, err := client.WorkEditions(context.Background(), "/works/OL45883W", 5)
	require.NoError(t, err)

	assert.Equal(t, "/works/OL45883W/editions.json?limit=5", gotURL)
	assert.Equal(t, 2, editions.Size)
	assert.Len(t, editions.Entries, 2)
}

func TestAuthorAcceptsBareID(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"key":"/authors/OL23919A","name":"George Orwell"}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	author, err := client.Author(context.Background(), "OL23919A")
	require.NoError(t, err)

	assert.Equal(t, "/authors/OL23919A.json", gotPath)
	assert.Equal(t, "George Orwell", author.Name)
}

func TestRecentChangesFiltersKindAndBots(t *testing.T) {
	var gotURL string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		_, _ = w.Write([]byte(`[{"id":"1","kind":"add-book","changes":[{"key":"/books/OL1M","revision":1}]}]`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	events, err := client.RecentChanges(context.Background(), "add-book", 50)
	require.NoError(t, err)

	assert.Equal(t, "/recentchanges/add-book.json?limit=50&bot=false", gotURL)
	require.Len(t, events, 1)
	assert.Equal(t, "/books/OL1M", events[0].Changes[0].Key)
}

func TestSubjectDetailsFlag(t *testing.T) {
	var gotURL string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		_, _ = w.Write([]byte(`{"key":"/subjects/love","name":"Love","work_count":1,"works":[{"key":"/works/OL1W","title":"One"}]}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	page, err := client.Subject(context.Background(), "love", true)
	require.NoError(t, err)

	assert.Equal(t, "/subjects/love.json?details=true", gotURL)
	assert.Equal(t, "Love", page.Name)
	assert.Len(t, page.Works, 1)
}

func TestLookupByBibKey(t *testing.T) {
	var gotURL string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		_, _ = w.Write([]byte(`{"ISBN:9780451524935":{"key":"/books/OL7353617M","title":"1984"}}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	record, err := client.LookupByBibKey(context.Background(), "isbn", "9780451524935")
	require.NoError(t, err)

	assert.Equal(t, "/api/books?bibkeys=ISBN:9780451524935&jscmd=data&format=json", gotURL)
	assert.Equal(t, "1984", record.Title)
}

func TestLookupByBibKeyMiss(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.LookupByBibKey(context.Background(), "isbn", "0000000000")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}
