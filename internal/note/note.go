// Package note exports book details as markdown notes with YAML
// frontmatter.
package note

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mkarppi/openshelf/internal/browse"
	"github.com/mkarppi/openshelf/internal/wikipedia"
)

// frontmatter is the YAML header of a book note. Field order is fixed
// by the struct, keeping output deterministic.
type frontmatter struct {
	Title       string   `yaml:"title"`
	Key         string   `yaml:"key"`
	Authors     []string `yaml:"authors,omitempty"`
	PublishDate string   `yaml:"publish_date,omitempty"`
	Pages       int      `yaml:"pages,omitempty"`
	ISBN10      []string `yaml:"isbn_10,omitempty"`
	ISBN13      []string `yaml:"isbn_13,omitempty"`
	Subjects    []string `yaml:"subjects,omitempty"`
	Cover       string   `yaml:"cover,omitempty"`
	Tags        []string `yaml:"tags"`
}

// Render builds the markdown note for a settled detail view. coverURL
// may be empty.
func Render(view browse.DetailView, coverURL string) (string, error) {
	if view.Book == nil {
		return "", fmt.Errorf("render note: no book in view")
	}
	book := view.Book

	authors := make([]string, 0, len(view.Authors))
	for _, a := range view.Authors {
		authors = append(authors, a.Name)
	}

	fm := frontmatter{
		Title:       book.Title,
		Key:         book.Key,
		Authors:     authors,
		PublishDate: book.PublishDate,
		Pages:       book.NumberOfPages,
		ISBN10:      book.ISBN10,
		ISBN13:      book.ISBN13,
		Subjects:    book.Subjects,
		Cover:       coverURL,
		Tags:        []string{"book/openshelf"},
	}

	header, err := yaml.Marshal(&fm)
	if err != nil {
		return "", fmt.Errorf("render note: marshal frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(header)
	buf.WriteString("---\n\n")
	fmt.Fprintf(&buf, "# %s\n\n", book.Title)

	if desc := book.Description.String(); desc != "" {
		buf.WriteString("## Description\n\n")
		buf.WriteString(strings.TrimSpace(desc))
		buf.WriteString("\n\n")
	}

	if len(view.Authors) > 0 {
		buf.WriteString("## Authors\n\n")
		for _, a := range view.Authors {
			fmt.Fprintf(&buf, "- **%s**", a.Name)
			if a.BirthDate != "" {
				fmt.Fprintf(&buf, " (%s", a.BirthDate)
				if a.DeathDate != "" {
					fmt.Fprintf(&buf, " – %s", a.DeathDate)
				}
				buf.WriteString(")")
			}
			buf.WriteString("\n")
		}
		buf.WriteString("\n")
	}

	if view.Summary != nil && view.Summary.Extract != "" {
		buf.WriteString("## Background\n\n")
		buf.WriteString(strings.TrimSpace(view.Summary.Extract))
		fmt.Fprintf(&buf, "\n\n[Wikipedia](%s)\n", wikipedia.PageURL(view.Summary.Title))
	}

	return buf.String(), nil
}

// Write renders the note and saves it under dir, named after the book
// title. Returns the written path. An existing file is only replaced
// when overwrite is set.
func Write(dir string, view browse.DetailView, coverURL string, overwrite bool) (string, error) {
	content, err := Render(view, coverURL)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, sanitizeFilename(view.Book.Title)+".md")
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("note already exists: %s", path)
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("write note: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write note: %w", err)
	}
	return path, nil
}

func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, ":", " -")
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, "\\", "-")
	return strings.TrimSpace(name)
}
