package openlibrary

import "encoding/json"

// Text is a description/bio field that the API serves either as a bare
// string or as a {"type": ..., "value": ...} wrapper. Both forms
// normalize to the plain value.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Text(s)
		return nil
	}

	var wrapped struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	*t = Text(wrapped.Value)
	return nil
}

func (t Text) String() string { return string(t) }

// Doc is one search result document. The recent-additions view reuses
// the same shape for its projected book summaries.
type Doc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorNames      []string `json:"author_name,omitempty"`
	AuthorKeys       []string `json:"author_key,omitempty"`
	FirstPublishYear int      `json:"first_publish_year,omitempty"`
	ISBNs            []string `json:"isbn,omitempty"`
	CoverID          int      `json:"cover_i,omitempty"`
	Publishers       []string `json:"publisher,omitempty"`
	Subjects         []string `json:"subject,omitempty"`
	Languages        []string `json:"language,omitempty"`
	PagesMedian      int      `json:"number_of_pages_median,omitempty"`
	EditionCount     int      `json:"edition_count,omitempty"`
}

// SearchResult is one page of search results. Pages are never merged;
// every criteria change produces a fresh page.
type SearchResult struct {
	NumFound int   `json:"numFound"`
	Start    int   `json:"start"`
	Docs     []Doc `json:"docs"`
}

// AuthorRef is an opaque author reference on a work.
type AuthorRef struct {
	Author struct {
		Key string `json:"key"`
	} `json:"author"`
}

// Work is a book or work detail record.
type Work struct {
	Key           string      `json:"key"`
	Title         string      `json:"title"`
	Description   Text        `json:"description,omitempty"`
	Covers        []int       `json:"covers,omitempty"`
	Authors       []AuthorRef `json:"authors,omitempty"`
	Subjects      []string    `json:"subjects,omitempty"`
	SubjectPlaces []string    `json:"subject_places,omitempty"`
	SubjectTimes  []string    `json:"subject_times,omitempty"`
	Publishers    []string    `json:"publishers,omitempty"`
	PublishDate   string      `json:"publish_date,omitempty"`
	PublishPlaces []string    `json:"publish_places,omitempty"`
	NumberOfPages int         `json:"number_of_pages,omitempty"`
	ISBN10        []string    `json:"isbn_10,omitempty"`
	ISBN13        []string    `json:"isbn_13,omitempty"`
	Works         []struct {
		Key string `json:"key"`
	} `json:"works,omitempty"`
}

// Author is an author detail record.
type Author struct {
	Key            string   `json:"key"`
	Name           string   `json:"name"`
	PersonalName   string   `json:"personal_name,omitempty"`
	BirthDate      string   `json:"birth_date,omitempty"`
	DeathDate      string   `json:"death_date,omitempty"`
	Bio            Text     `json:"bio,omitempty"`
	Photos         []int    `json:"photos,omitempty"`
	AlternateNames []string `json:"alternate_names,omitempty"`
}

// ChangeRef is one affected resource in a change event.
type ChangeRef struct {
	Key      string `json:"key"`
	Revision int    `json:"revision"`
}

// ChangeEvent is one entry of the recent-changes feed.
type ChangeEvent struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Timestamp string `json:"timestamp"`
	Author    *struct {
		Key string `json:"key"`
	} `json:"author,omitempty"`
	Comment string      `json:"comment,omitempty"`
	Changes []ChangeRef `json:"changes,omitempty"`
}

// Editions lists the editions of a work.
type Editions struct {
	Size    int    `json:"size"`
	Entries []Work `json:"entries"`
}

// AuthorWorkEntry is one work in an author's works listing.
type AuthorWorkEntry struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// AuthorWorks lists the works of an author.
type AuthorWorks struct {
	Size    int               `json:"size"`
	Entries []AuthorWorkEntry `json:"entries"`
}

// SubjectWork is one work in a subject browse page.
type SubjectWork struct {
	Key          string `json:"key"`
	Title        string `json:"title"`
	EditionCount int    `json:"edition_count"`
	CoverID      int    `json:"cover_id,omitempty"`
	Authors      []struct {
		Key  string `json:"key"`
		Name string `json:"name"`
	} `json:"authors,omitempty"`
	FirstPublishYear int `json:"first_publish_year,omitempty"`
}

// SubjectPage is a subject browse response.
type SubjectPage struct {
	Key       string        `json:"key"`
	Name      string        `json:"name"`
	WorkCount int           `json:"work_count"`
	Works     []SubjectWork `json:"works"`
}

// LookupRecord is one record of the cross-identifier lookup response
// (jscmd=data shape).
type LookupRecord struct {
	URL     string `json:"url"`
	Key     string `json:"key"`
	Title   string `json:"title"`
	Authors []struct {
		URL  string `json:"url"`
		Name string `json:"name"`
	} `json:"authors,omitempty"`
	NumberOfPages int    `json:"number_of_pages,omitempty"`
	PublishDate   string `json:"publish_date,omitempty"`
	Publishers    []struct {
		Name string `json:"name"`
	} `json:"publishers,omitempty"`
	Cover *struct {
		Small  string `json:"small"`
		Medium string `json:"medium"`
		Large  string `json:"large"`
	} `json:"cover,omitempty"`
}
