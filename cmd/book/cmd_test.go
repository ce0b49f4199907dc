package book

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkarppi/openshelf/internal/browse"
	"github.com/mkarppi/openshelf/internal/openlibrary"
	"github.com/mkarppi/openshelf/internal/wikipedia"
)

func TestRenderDetailView(t *testing.T) {
	view := browse.DetailView{
		Book: &openlibrary.Work{
			Key:           "/books/OL7353617M",
			Title:         "Nineteen Eighty-Four",
			Description:   "A dystopian novel.",
			PublishDate:   "June 8, 1949",
			NumberOfPages: 328,
			ISBN13:        []string{"9780451524935"},
		},
		Authors: []openlibrary.Author{{Key: "/authors/OL23919A", Name: "George Orwell"}},
		Summary: &wikipedia.Summary{Title: "Nineteen Eighty-Four", Extract: "A novel by George Orwell."},
	}

	var out bytes.Buffer
	render(&out, view, "https://covers.openlibrary.org/b/id/12345-L.jpg")
	text := out.String()

	assert.Contains(t, text, "Nineteen Eighty-Four  [/books/OL7353617M]")
	assert.Contains(t, text, "by George Orwell")
	assert.Contains(t, text, "A dystopian novel.")
	assert.Contains(t, text, "Published:  June 8, 1949")
	assert.Contains(t, text, "Pages:      328")
	assert.Contains(t, text, "ISBN-13:    9780451524935")
	assert.Contains(t, text, "Cover:      https://covers.openlibrary.org/b/id/12345-L.jpg")
	assert.Contains(t, text, "From Wikipedia:")
	assert.Contains(t, text, "https://en.wikipedia.org/wiki/Nineteen_Eighty-Four")
}

func TestRenderEditions(t *testing.T) {
	var out bytes.Buffer
	renderEditions(&out, &openlibrary.Editions{
		Size: 2,
		Entries: []openlibrary.Work{
			{Key: "/books/OL1M", Title: "First", Publishers: []string{"Secker & Warburg"}, PublishDate: "1949"},
			{Key: "/books/OL2M", Title: "Second"},
		},
	})
	text := out.String()

	assert.Contains(t, text, "Editions (2 total):")
	assert.Contains(t, text, "- First, Secker & Warburg, 1949  [/books/OL1M]")
	assert.Contains(t, text, "- Second  [/books/OL2M]")
}

func TestCoverFilename(t *testing.T) {
	assert.Equal(t, "Dune - cover.jpg", coverFilename("Dune"))
	assert.Equal(t, "Fahrenheit 451 - A Novel - cover.jpg", coverFilename("Fahrenheit 451: A Novel"))
	assert.Equal(t, "One-Two - cover.jpg", coverFilename("One/Two"))
}
