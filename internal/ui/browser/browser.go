// Package browser is the interactive terminal catalog browser: a search box, category
// and sort cycling, paging, a detail pane and download registration.
package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/list"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dataidea/dataidea-cli/internal/browse"
	"github.com/dataidea/dataidea-cli/internal/catalog"
	"github.com/dataidea/dataidea-cli/internal/ui"
)

type mode int

const (
	modeList mode = iota
	modeDetail
	modeConfirm
)

type datasetItem struct {
	d catalog.Dataset
}

func (i datasetItem) Title() string { return i.d.Title }

func (i datasetItem) Description() string {
	parts := []string{}
	if i.d.FileType != "" {
		parts = append(parts, strings.ToUpper(i.d.FileType))
	}
	parts = append(parts, catalog.FormatFileSize(i.d.FileSize), ui.FormatNumber(i.d.DownloadCount)+" downloads")
	return ui.Dim.Render(strings.Join(parts, " · "))
}

func (i datasetItem) FilterValue() string { return i.d.Title }

type loadedMsg struct {
	gen uint64
	err error
}

type detailMsg struct {
	view *browse.DetailView
	err  error
}

type downloadMsg struct {
	slug  string
	count int
	ok    bool
}

// Model is the Bubble Tea model of the browser.
type Model struct {
	ctx     context.Context
	session *browse.Session
	loads   browse.Generations

	input textinput.Model
	list  list.Model
	mode  mode

	loading       bool
	loadErr       string
	result        catalog.Result
	catIdx        int // 0 = all categories
	detail        *browse.DetailView
	detailLoading bool
	status        string
	quitting      bool
}

// New creates a browser over session. The catalog is loaded by Init.
func New(ctx context.Context, session *browse.Session) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search datasets..."
	ti.CharLimit = 120
	ti.SetWidth(50)

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(ui.ColorSecondary).
		BorderForeground(ui.ColorPrimary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(ui.ColorTextDim).
		BorderForeground(ui.ColorPrimary)

	l := list.New([]list.Item{}, delegate, 80, 20)
	l.Title = "Datasets"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.Styles.Title = lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true)

	return &Model{ctx: ctx, session: session, input: ti, list: l}
}

func (m *Model) Init() tea.Cmd {
	return m.load()
}

func (m *Model) load() tea.Cmd {
	m.loading = true
	m.loadErr = ""
	gen := m.loads.Next()
	return func() tea.Msg {
		return loadedMsg{gen: gen, err: m.session.Load(m.ctx)}
	}
}

func (m *Model) openDetail(slug string) tea.Cmd {
	m.detailLoading = true
	m.status = ""
	return func() tea.Msg {
		view, err := m.session.Detail(m.ctx, slug)
		return detailMsg{view: view, err: err}
	}
}

func (m *Model) download(slug string) tea.Cmd {
	return func() tea.Msg {
		n, ok := m.session.Download(m.ctx, slug)
		return downloadMsg{slug: slug, count: n, ok: ok}
	}
}

// refresh reruns the query pipeline and replaces the list items.
func (m *Model) refresh() {
	m.result = m.session.Page()
	items := make([]list.Item, len(m.result.Page))
	for i, d := range m.result.Page {
		items[i] = datasetItem{d: d}
	}
	m.list.SetItems(items)
	m.list.Select(0)
}

func (m *Model) cycleCategory() {
	cats := m.session.Categories()
	m.catIdx = (m.catIdx + 1) % (len(cats) + 1)
	slug := ""
	if m.catIdx > 0 {
		slug = cats[m.catIdx-1].Slug
	}
	m.session.SetCategory(slug)
	m.refresh()
}

func (m *Model) cycleSort() {
	cur := m.session.Params().Sort
	next := catalog.SortKeys[0]
	for i, k := range catalog.SortKeys {
		if k == cur {
			next = catalog.SortKeys[(i+1)%len(catalog.SortKeys)]
		}
	}
	m.session.SetSort(next)
	m.refresh()
}

func (m *Model) movePage(delta int) {
	p := m.session.Params().Page + delta
	if p < 1 || p > m.result.TotalPages {
		return
	}
	m.session.SetPage(p)
	m.refresh()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case loadedMsg:
		if !m.loads.Current(msg.gen) {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.loadErr = m.session.Err()
		}
		m.refresh()
		return m, nil

	case detailMsg:
		if errors.Is(msg.err, browse.ErrStale) {
			return m, nil
		}
		m.detailLoading = false
		if msg.err != nil {
			m.status = "Failed to load dataset: " + msg.err.Error()
			return m, nil
		}
		m.detail = msg.view
		m.mode = modeDetail
		return m, nil

	case downloadMsg:
		if !msg.ok {
			m.status = "Could not register the download"
			return m, nil
		}
		if m.detail != nil && m.detail.Dataset != nil && m.detail.Dataset.Slug == msg.slug {
			m.detail.Dataset.DownloadCount = msg.count
		}
		m.status = fmt.Sprintf("Download registered (%s downloads)", ui.FormatNumber(msg.count))
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case modeConfirm:
		switch key {
		case "y", "enter":
			m.mode = modeDetail
			return m, m.download(m.detail.Dataset.Slug)
		case "n", "esc":
			m.mode = modeDetail
			m.status = "Download cancelled"
		}
		return m, nil

	case modeDetail:
		switch key {
		case "esc", "backspace", "left":
			m.mode = modeList
			m.detail = nil
			m.status = ""
		case "d":
			if m.detail == nil || m.detail.Dataset == nil {
				return m, nil
			}
			if m.detail.External {
				m.mode = modeConfirm
				return m, nil
			}
			return m, m.download(m.detail.Dataset.Slug)
		case "q":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.input.Focused() {
		switch key {
		case "esc", "enter", "down":
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.session.SetQuery(m.input.Value())
		m.refresh()
		return m, cmd
	}

	switch key {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "/":
		return m, m.input.Focus()
	case "c":
		m.cycleCategory()
	case "s":
		m.cycleSort()
	case "n", "right":
		m.movePage(1)
	case "p", "left":
		m.movePage(-1)
	case "x":
		m.session.ClearFilters()
		m.input.SetValue("")
		m.catIdx = 0
		m.refresh()
	case "r":
		return m, m.load()
	case "enter":
		if it, ok := m.list.SelectedItem().(datasetItem); ok {
			return m, m.openDetail(it.d.Slug)
		}
	default:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) View() tea.View {
	return tea.NewView(m.render())
}

func (m *Model) render() string {
	if m.quitting {
		return ""
	}
	switch m.mode {
	case modeDetail, modeConfirm:
		return m.detailView()
	}

	var b strings.Builder
	b.WriteString(ui.Title.Render("DataIdea datasets"))
	b.WriteString("\n\n")
	b.WriteString(ui.Dim.Render("Search: "))
	b.WriteString(m.input.View())
	b.WriteString("\n")

	p := m.session.Params()
	category := p.Category
	if category == "" {
		category = "all"
	}
	b.WriteString(ui.FormatKeyValue("category", category) + "  " + ui.FormatKeyValue("sort", string(p.Sort)))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(ui.Dim.Render("Loading datasets..."))
	case m.loadErr != "":
		b.WriteString(ui.Error.Render(m.loadErr))
		b.WriteString("\n" + ui.Dim.Render("r: retry"))
	case m.result.TotalMatched == 0:
		b.WriteString(ui.Dim.Render("No datasets found. Try adjusting your search or filters."))
	default:
		b.WriteString(m.list.View())
		b.WriteString("\n")
		b.WriteString(ui.Dim.Render(fmt.Sprintf("Page %d of %d · %d dataset(s)", p.Page, m.result.TotalPages, m.result.TotalMatched)))
	}
	if m.detailLoading {
		b.WriteString("\n" + ui.Dim.Render("Loading dataset..."))
	}
	if m.status != "" {
		b.WriteString("\n" + ui.Warning.Render(m.status))
	}

	b.WriteString("\n\n")
	if m.input.Focused() {
		b.WriteString(ui.Dim.Render("type to filter · enter/esc: back to list · ctrl+c: quit"))
	} else {
		b.WriteString(ui.Dim.Render("enter: open · /: search · c: category · s: sort · n/p: page · x: clear · r: reload · q: quit"))
	}
	return b.String()
}

func (m *Model) detailView() string {
	var b strings.Builder
	v := m.detail
	if v == nil || v.NotFound || v.Dataset == nil {
		b.WriteString(ui.Error.Render("Dataset not found"))
		b.WriteString("\n\n" + ui.Dim.Render("esc: back"))
		return b.String()
	}

	d := v.Dataset
	b.WriteString(ui.DatasetCard(*d))
	b.WriteString("\n\n")
	if v.External && v.Source != nil {
		b.WriteString(ui.FormatKeyValue("Source", ui.Badge(v.Source.Name, v.Source.Color)))
		b.WriteString("\n")
	}
	if len(v.Related) > 0 {
		b.WriteString(ui.SectionHeader.Render("Related datasets"))
		for _, r := range v.Related {
			b.WriteString("\n  " + ui.GetBullet() + " " + r.Title)
		}
		b.WriteString("\n")
	}

	if m.mode == modeConfirm {
		b.WriteString("\n" + ui.ExternalNotice(d.Title, d.File))
		b.WriteString("\n\n" + ui.Warning.Render("Continue to download? y/n"))
		return b.String()
	}
	if m.status != "" {
		b.WriteString("\n" + ui.Success.Render(m.status) + "\n")
	}
	b.WriteString("\n" + ui.Dim.Render("d: download · esc: back · q: quit"))
	return b.String()
}

// Run starts the browser and blocks until the user quits.
func Run(ctx context.Context, session *browse.Session) error {
	_, err := tea.NewProgram(New(ctx, session), tea.WithContext(ctx)).Run()
	return err
}
