// Package tui provides the interactive terminal browser. It renders
// whatever the browse orchestrators expose and never talks to the API
// clients directly.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkarppi/openshelf/internal/browse"
	"github.com/mkarppi/openshelf/internal/openlibrary"
	"github.com/mkarppi/openshelf/internal/theme"
)

const searchPageSize = 20

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithAltScreen()).Run()
}

type page int

const (
	pageHome page = iota
	pageSearch
	pageDetail
)

// viewsMsg wakes the program after an orchestrator published a new view
// or the theme changed.
type viewsMsg struct{}

type docItem struct {
	doc openlibrary.Doc
}

func (i docItem) Title() string       { return i.doc.Title }
func (i docItem) FilterValue() string { return i.doc.Title }

func (i docItem) Description() string {
	parts := []string{}
	if len(i.doc.AuthorNames) > 0 {
		parts = append(parts, strings.Join(i.doc.AuthorNames, ", "))
	}
	if i.doc.FirstPublishYear > 0 {
		parts = append(parts, fmt.Sprintf("%d", i.doc.FirstPublishYear))
	}
	if i.doc.EditionCount > 0 {
		parts = append(parts, fmt.Sprintf("%d editions", i.doc.EditionCount))
	}
	if len(parts) == 0 {
		return "—"
	}
	return strings.Join(parts, " · ")
}

type docDelegate struct {
	styles styles
}

func (d docDelegate) Height() int                         { return 2 }
func (d docDelegate) Spacing() int                        { return 1 }
func (d docDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }
func (d docDelegate) Render(w io.Writer, m list.Model, idx int, item list.Item) {
	di, ok := item.(docItem)
	if !ok {
		return
	}

	title := d.styles.text.Render(di.Title())
	meta := d.styles.dim.Render(di.Description())
	if idx == m.Index() {
		title = d.styles.selected.Render("> " + di.Title())
	} else {
		title = "  " + title
		meta = "  " + meta
	}
	fmt.Fprintf(w, "%s\n  %s", title, meta)
}

// Model is the browser's bubbletea model.
type Model struct {
	ctx        context.Context
	themeStore *theme.Store
	styles     styles

	searcher *browse.Searcher
	detail   *browse.DetailLoader
	recent   *browse.RecentLoader
	updates  chan struct{}

	page     page
	criteria openlibrary.SearchCriteria

	input    textinput.Model
	results  list.Model
	home     list.Model
	detailVP viewport.Model
	spin     spinner.Model

	width  int
	height int
	err    error
}

// New assembles the browser around the given data sources and theme
// store.
func New(ctx context.Context, catalog browse.Catalog, enc browse.Encyclopedia, store *theme.Store) *Model {
	updates := make(chan struct{}, 1)
	notify := func() {
		select {
		case updates <- struct{}{}:
		default:
		}
	}

	st := newStyles(store.Current())
	// Theme side effect is a subscriber of the preference cell.
	store.Subscribe(func(string) { notify() })

	input := textinput.New()
	input.Placeholder = "title, author, keywords..."
	input.CharLimit = 120

	delegate := docDelegate{styles: st}
	results := list.New(nil, delegate, 0, 0)
	results.Title = "Results"
	results.SetShowHelp(false)
	results.SetFilteringEnabled(false)

	home := list.New(nil, delegate, 0, 0)
	home.Title = "Recently added"
	home.SetShowHelp(false)
	home.SetFilteringEnabled(false)

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := &Model{
		ctx:        ctx,
		themeStore: store,
		styles:     st,
		searcher:   browse.NewSearcher(catalog, notify),
		detail:     browse.NewDetailLoader(catalog, enc, notify),
		recent:     browse.NewRecentLoader(catalog, notify),
		updates:    updates,
		page:       pageHome,
		input:      input,
		results:    results,
		home:       home,
		detailVP:   viewport.New(0, 0),
		spin:       spin,
	}
	return m
}

// Run starts the interactive browser and blocks until the user quits.
func Run(ctx context.Context, catalog browse.Catalog, enc browse.Encyclopedia, store *theme.Store) error {
	m := New(ctx, catalog, enc, store)
	_, err := runProgram(m)
	return err
}

func (m *Model) Init() tea.Cmd {
	m.recent.Refresh(m.ctx)
	return tea.Batch(m.waitForUpdate(), m.spin.Tick)
}

func (m *Model) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		<-m.updates
		return viewsMsg{}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		listHeight := m.height - 8
		if listHeight < 4 {
			listHeight = 4
		}
		m.results.SetSize(m.width-4, listHeight)
		m.home.SetSize(m.width-4, listHeight)
		m.detailVP.Width = m.width - 4
		m.detailVP.Height = m.height - 6
		return m, nil

	case viewsMsg:
		m.syncViews()
		return m, m.waitForUpdate()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The search input swallows most keys while focused.
	if m.page == pageSearch && m.input.Focused() {
		switch msg.String() {
		case "enter":
			m.input.Blur()
			m.criteria = openlibrary.SearchCriteria{Query: strings.TrimSpace(m.input.Value()), Page: 1}
			m.searcher.SetCriteria(m.ctx, m.criteria)
			return m, nil
		case "esc":
			m.input.Blur()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "t":
		if err := m.themeStore.Toggle(); err != nil {
			m.err = err
		}
		return m, nil

	case "/", "s":
		m.page = pageSearch
		return m, m.input.Focus()

	case "h":
		m.page = pageHome
		return m, nil

	case "r":
		if m.page == pageHome {
			m.recent.Refresh(m.ctx)
		}
		return m, nil

	case "esc":
		switch m.page {
		case pageDetail:
			m.page = pageSearch
		case pageSearch:
			m.page = pageHome
		}
		return m, nil

	case "n", "right":
		if m.page == pageSearch && m.criteria.HasFilter() {
			view := m.searcher.View()
			if m.criteriaPage()*searchPageSize < view.TotalCount {
				m.criteria.Page = m.criteriaPage() + 1
				m.searcher.SetCriteria(m.ctx, m.criteria)
			}
		}
		return m, nil

	case "p", "left":
		if m.page == pageSearch && m.criteriaPage() > 1 {
			m.criteria.Page = m.criteriaPage() - 1
			m.searcher.SetCriteria(m.ctx, m.criteria)
		}
		return m, nil

	case "enter":
		if item, ok := m.selectedItem(); ok {
			m.page = pageDetail
			m.detail.SetKey(m.ctx, item.doc.Key)
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.page {
	case pageHome:
		m.home, cmd = m.home.Update(msg)
	case pageSearch:
		m.results, cmd = m.results.Update(msg)
	case pageDetail:
		m.detailVP, cmd = m.detailVP.Update(msg)
	}
	return m, cmd
}

func (m *Model) criteriaPage() int {
	if m.criteria.Page < 1 {
		return 1
	}
	return m.criteria.Page
}

func (m *Model) selectedItem() (docItem, bool) {
	var l *list.Model
	switch m.page {
	case pageHome:
		l = &m.home
	case pageSearch:
		l = &m.results
	default:
		return docItem{}, false
	}
	item, ok := l.SelectedItem().(docItem)
	return item, ok
}

// syncViews pulls fresh orchestrator views into the widgets.
func (m *Model) syncViews() {
	m.styles = newStyles(m.themeStore.Current())
	delegate := docDelegate{styles: m.styles}
	m.results.SetDelegate(delegate)
	m.home.SetDelegate(delegate)

	recent := m.recent.View()
	m.home.SetItems(toItems(recent.Books))

	search := m.searcher.View()
	m.results.SetItems(toItems(search.Results))

	detail := m.detail.View()
	if detail.Book != nil {
		m.detailVP.SetContent(m.renderDetail(detail))
	}
}

func toItems(docs []openlibrary.Doc) []list.Item {
	items := make([]list.Item, len(docs))
	for i, d := range docs {
		items[i] = docItem{doc: d}
	}
	return items
}

func (m *Model) renderDetail(view browse.DetailView) string {
	var b strings.Builder
	book := view.Book

	b.WriteString(m.styles.header.Render(book.Title))
	b.WriteString("\n\n")

	if len(view.Authors) > 0 {
		names := make([]string, len(view.Authors))
		for i, a := range view.Authors {
			names[i] = a.Name
		}
		b.WriteString(m.styles.text.Render("by " + strings.Join(names, ", ")))
		b.WriteString("\n\n")
	}

	if desc := book.Description.String(); desc != "" {
		b.WriteString(m.styles.text.Render(strings.TrimSpace(desc)))
		b.WriteString("\n\n")
	}

	meta := []string{}
	if book.PublishDate != "" {
		meta = append(meta, "Published "+book.PublishDate)
	}
	if book.NumberOfPages > 0 {
		meta = append(meta, fmt.Sprintf("%d pages", book.NumberOfPages))
	}
	if len(book.Subjects) > 0 {
		limit := len(book.Subjects)
		if limit > 6 {
			limit = 6
		}
		meta = append(meta, strings.Join(book.Subjects[:limit], ", "))
	}
	if len(meta) > 0 {
		b.WriteString(m.styles.dim.Render(strings.Join(meta, " · ")))
		b.WriteString("\n\n")
	}

	if view.Summary != nil && view.Summary.Extract != "" {
		b.WriteString(m.styles.header.Render("From Wikipedia"))
		b.WriteString("\n")
		b.WriteString(m.styles.text.Render(strings.TrimSpace(view.Summary.Extract)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m *Model) View() string {
	title := m.styles.title.Render("openshelf")

	var body string
	switch m.page {
	case pageHome:
		recent := m.recent.View()
		switch {
		case recent.Loading:
			body = fmt.Sprintf("%s fetching recent additions...", m.spin.View())
		case recent.Err != nil:
			body = m.styles.errText.Render(recent.Err.Error()) +
				m.styles.dim.Render("\npress r to retry")
		case len(recent.Books) == 0:
			body = m.styles.dim.Render("no recent additions")
		default:
			body = m.home.View()
		}

	case pageSearch:
		search := m.searcher.View()
		header := m.input.View()
		switch {
		case search.Loading:
			body = fmt.Sprintf("%s\n\n%s searching...", header, m.spin.View())
		case search.Err != nil:
			body = header + "\n\n" + m.styles.errText.Render(search.Err.Error()) +
				m.styles.dim.Render("\npress enter to retry")
		case m.criteria.HasFilter() && search.TotalCount == 0:
			body = header + "\n\n" + m.styles.dim.Render("no books matched")
		default:
			counter := ""
			if search.TotalCount > 0 {
				counter = m.styles.dim.Render(
					fmt.Sprintf("page %d · %d results", m.criteriaPage(), search.TotalCount))
			}
			body = lipgloss.JoinVertical(lipgloss.Left, header, counter, m.results.View())
		}

	case pageDetail:
		detail := m.detail.View()
		switch {
		case detail.Loading:
			body = fmt.Sprintf("%s loading book...", m.spin.View())
		case detail.Err != nil:
			body = m.styles.errText.Render(detailErrorText(detail.Err))
		default:
			body = m.detailVP.View()
		}
	}

	help := m.styles.help.Render("/ search · h home · enter open · n/p page · t theme · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, title, body, help)
}

func detailErrorText(err error) string {
	if openlibrary.IsNotFound(err) {
		return "book not found"
	}
	return err.Error()
}
