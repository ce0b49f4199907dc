package browse

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarppi/openshelf/internal/openlibrary"
)

func TestSearchOnceEmptyCriteriaSkipsNetwork(t *testing.T) {
	catalog := &fakeCatalog{
		searchFn: func(openlibrary.SearchCriteria) (*openlibrary.SearchResult, error) {
			t.Fatal("search must not be called for empty criteria")
			return nil, nil
		},
	}

	view := SearchOnce(context.Background(), catalog, openlibrary.SearchCriteria{Language: "eng", Page: 2})

	assert.Empty(t, view.Results)
	assert.Zero(t, view.TotalCount)
	assert.NoError(t, view.Err)

	searches, _, _, _ := catalog.calls()
	assert.Zero(t, searches)
}

func TestSearchOnceMapsResultPage(t *testing.T) {
	catalog := &fakeCatalog{
		searchFn: func(criteria openlibrary.SearchCriteria) (*openlibrary.SearchResult, error) {
			assert.Equal(t, "dune", criteria.Query)
			return &openlibrary.SearchResult{
				NumFound: 412,
				Docs:     []openlibrary.Doc{{Key: "/works/OL1W", Title: "Dune"}},
			}, nil
		},
	}

	view := SearchOnce(context.Background(), catalog, openlibrary.SearchCriteria{Query: "dune"})

	require.NoError(t, view.Err)
	assert.Equal(t, 412, view.TotalCount)
	require.Len(t, view.Results, 1)
	assert.Equal(t, "Dune", view.Results[0].Title)
}

func TestSearchOnceError(t *testing.T) {
	searchErr := errors.New("boom")
	catalog := &fakeCatalog{
		searchFn: func(openlibrary.SearchCriteria) (*openlibrary.SearchResult, error) {
			return nil, searchErr
		},
	}

	view := SearchOnce(context.Background(), catalog, openlibrary.SearchCriteria{Query: "dune"})

	assert.ErrorIs(t, view.Err, searchErr)
	assert.Empty(t, view.Results)
}

func TestSearcherSettles(t *testing.T) {
	catalog := &fakeCatalog{
		searchFn: func(criteria openlibrary.SearchCriteria) (*openlibrary.SearchResult, error) {
			return &openlibrary.SearchResult{
				NumFound: 1,
				Docs:     []openlibrary.Doc{{Key: "/works/OL1W", Title: criteria.Query}},
			}, nil
		},
	}

	searcher := NewSearcher(catalog, nil)
	searcher.SetCriteria(context.Background(), openlibrary.SearchCriteria{Query: "dune"})

	require.Eventually(t, func() bool {
		view := searcher.View()
		return !view.Loading && len(view.Results) == 1
	}, 2*time.Second, 5*time.Millisecond)

	assert.Equal(t, "dune", searcher.View().Results[0].Title)
}

func TestSearcherEmptyCriteriaResetsView(t *testing.T) {
	catalog := &fakeCatalog{
		searchFn: func(openlibrary.SearchCriteria) (*openlibrary.SearchResult, error) {
			return &openlibrary.SearchResult{NumFound: 1, Docs: []openlibrary.Doc{{Title: "x"}}}, nil
		},
	}

	searcher := NewSearcher(catalog, nil)
	searcher.SetCriteria(context.Background(), openlibrary.SearchCriteria{Query: "dune"})
	require.Eventually(t, func() bool {
		return len(searcher.View().Results) == 1
	}, 2*time.Second, 5*time.Millisecond)

	searcher.SetCriteria(context.Background(), openlibrary.SearchCriteria{})

	view := searcher.View()
	assert.Empty(t, view.Results)
	assert.False(t, view.Loading)
}

func TestSearcherDiscardsStaleCompletion(t *testing.T) {
	release := make(chan struct{})
	catalog := &fakeCatalog{
		searchFn: func(criteria openlibrary.SearchCriteria) (*openlibrary.SearchResult, error) {
			if criteria.Query == "slow" {
				<-release
			}
			return &openlibrary.SearchResult{
				NumFound: 1,
				Docs:     []openlibrary.Doc{{Title: criteria.Query}},
			}, nil
		},
	}

	searcher := NewSearcher(catalog, nil)
	searcher.SetCriteria(context.Background(), openlibrary.SearchCriteria{Query: "slow"})
	searcher.SetCriteria(context.Background(), openlibrary.SearchCriteria{Query: "fast"})

	require.Eventually(t, func() bool {
		view := searcher.View()
		return !view.Loading && len(view.Results) == 1
	}, 2*time.Second, 5*time.Millisecond)
	require.Equal(t, "fast", searcher.View().Results[0].Title)

	// Let the superseded fetch complete; it must not overwrite the view.
	close(release)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, "fast", searcher.View().Results[0].Title)
}

func TestSearcherNotifiesOnViewChanges(t *testing.T) {
	catalog := &fakeCatalog{
		searchFn: func(openlibrary.SearchCriteria) (*openlibrary.SearchResult, error) {
			return &openlibrary.SearchResult{}, nil
		},
	}

	notified := make(chan struct{}, 8)
	searcher := NewSearcher(catalog, func() {
		select {
		case notified <- struct{}{}:
		default:
		}
	})

	searcher.SetCriteria(context.Background(), openlibrary.SearchCriteria{Query: "dune"})

	// One notification for the loading state, one for settlement.
	for range 2 {
		select {
		case <-notified:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for notification")
		}
	}
}
