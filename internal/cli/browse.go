package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/nuclides/internal/catalog"
	"github.com/alexanderramin/nuclides/internal/cli/formatter"
	"github.com/alexanderramin/nuclides/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type browseKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Select key.Binding
	Filter key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func defaultBrowseKeys() browseKeyMap {
	return browseKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "show")),
		Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// browseModel is an interactive element list with a detail card per element.
type browseModel struct {
	rows   []catalog.NuclideSummary
	lang   string
	keys   browseKeyMap
	width  int
	height int

	nameWidth int

	cursor    int
	offset    int
	filtering bool
	filter    string
	visible   []int

	// detail is the row index shown as a card, or -1 for the list.
	detail   int
	quitting bool
}

func newBrowseModel(rows []catalog.NuclideSummary, lang string) *browseModel {
	m := &browseModel{
		rows:   rows,
		lang:   lang,
		keys:   defaultBrowseKeys(),
		height: 24,
		detail: -1,
	}
	for _, r := range rows {
		m.nameWidth = max(m.nameWidth, lipgloss.Width(r.Name))
	}
	m.applyFilter()
	return m
}

func (m *browseModel) Init() tea.Cmd { return nil }

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scroll()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		switch {
		case m.filtering:
			m.updateFilter(msg)
			return m, nil
		case m.detail >= 0:
			return m.updateDetail(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m *browseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.move(1)
	case key.Matches(msg, m.keys.Top):
		m.move(-len(m.visible))
	case key.Matches(msg, m.keys.Bottom):
		m.move(len(m.visible))
	case key.Matches(msg, m.keys.Select):
		if m.cursor < len(m.visible) {
			m.detail = m.visible[m.cursor]
		}
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
	case key.Matches(msg, m.keys.Back):
		if m.filter != "" {
			m.filter = ""
			m.applyFilter()
		}
	}
	return m, nil
}

func (m *browseModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Select):
		m.detail = -1
	case key.Matches(msg, m.keys.Up):
		m.move(-1)
		m.detail = m.visible[m.cursor]
	case key.Matches(msg, m.keys.Down):
		m.move(1)
		m.detail = m.visible[m.cursor]
	}
	return m, nil
}

func (m *browseModel) updateFilter(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter = ""
	case tea.KeyEnter:
		m.filtering = false
		return
	case tea.KeyBackspace:
		if r := []rune(m.filter); len(r) > 0 {
			m.filter = string(r[:len(r)-1])
		}
	case tea.KeyRunes:
		m.filter += string(msg.Runes)
	default:
		return
	}
	m.applyFilter()
}

// applyFilter recomputes the visible rows. A filter matches a symbol
// exactly (ignoring case) or a prefix of the localized name.
func (m *browseModel) applyFilter() {
	m.visible = m.visible[:0]
	want := strings.ToLower(m.filter)
	for i, r := range m.rows {
		if want == "" ||
			strings.ToLower(r.Symbol) == want ||
			strings.HasPrefix(strings.ToLower(r.Name), want) {
			m.visible = append(m.visible, i)
		}
	}
	m.cursor = 0
	m.offset = 0
}

func (m *browseModel) move(delta int) {
	if len(m.visible) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.visible)-1)
	m.scroll()
}

// listHeight is the number of rows that fit between header and help line.
func (m *browseModel) listHeight() int {
	return max(m.height-4, 1)
}

func (m *browseModel) scroll() {
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

// Selected returns the row under the cursor.
func (m *browseModel) Selected() (catalog.NuclideSummary, bool) {
	if m.cursor >= len(m.visible) {
		return catalog.NuclideSummary{}, false
	}
	return m.rows[m.visible[m.cursor]], true
}

func (m *browseModel) View() string {
	if m.quitting {
		return ""
	}
	if m.detail >= 0 {
		return formatter.FormatNuclide(m.rows[m.detail], m.lang) + "\n" +
			m.help(m.keys.Up, m.keys.Down, m.keys.Back, m.keys.Quit)
	}

	var b strings.Builder
	b.WriteString(formatter.Header(fmt.Sprintf("Elements (%d)", len(m.visible))))
	b.WriteString("\n")
	if m.filtering || m.filter != "" {
		cursor := ""
		if m.filtering {
			cursor = "█"
		}
		b.WriteString(formatter.StyleYellow.Render("/") + " " + m.filter + cursor)
	}
	b.WriteString("\n")

	if len(m.visible) == 0 {
		b.WriteString(formatter.Dim("No elements match.") + "\n")
	}
	end := min(m.offset+m.listHeight(), len(m.visible))
	nameStyle := lipgloss.NewStyle().Width(m.nameWidth)
	for i := m.offset; i < end; i++ {
		r := m.rows[m.visible[i]]
		marker := "  "
		style := formatter.StyleFg
		if i == m.cursor {
			marker = formatter.StyleGreen.Render("▸ ")
			style = formatter.StyleBold
		}
		fmt.Fprintf(&b, "%s%3d %-3s %s %s\n",
			marker,
			r.Z,
			r.Symbol,
			style.Render(nameStyle.Render(r.Name)),
			formatter.CategoryColor(domain.Category(r.Category)).Render(r.CategoryName),
		)
	}

	b.WriteString(m.help(m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Filter, m.keys.Quit))
	return b.String()
}

func (m *browseModel) help(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, k := range bindings {
		h := k.Help()
		parts = append(parts, formatter.Bold(h.Key)+" "+formatter.Dim(h.Desc))
	}
	return strings.Join(parts, formatter.Dim(" • "))
}
