package view

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/backoffice/internal/dashboard"
)

// SearchModel runs document searches against the knowledge graph.
type SearchModel struct {
	CommonModel

	input     textinput.Model
	results   table.Model
	spinner   spinner.Model
	searching bool
}

func NewSearchModel(ctrl *dashboard.Controller) SearchModel {
	ti := textinput.New()
	ti.Placeholder = "payment terms, vendor, invoice number..."
	ti.Prompt = "Search: "
	ti.Width = 60

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(activeColor)

	m := SearchModel{
		CommonModel: CommonModel{ctrl: ctrl},
		input:       ti,
		results: newTable([]table.Column{
			{Title: "Doc", Width: 6},
			{Title: "Score", Width: 6},
			{Title: "File", Width: 24},
			{Title: "Excerpt", Width: 60},
		}, 12),
		spinner: s,
	}
	m.setView(ctrl.View())
	m.input.SetValue(m.dash.SearchQuery)
	m.input.Focus()

	return m
}

func (m SearchModel) Title() string { return "Document Search" }

func (m SearchModel) ShortHelp() string {
	return "Esc: back | Enter: search | Tab: focus results"
}

func (m SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case DashboardMsg:
		m.setView(msg.View)
		return m, nil

	case actionDoneMsg:
		if msg.action == "search" {
			m.searching = false
		}

		return m, nil

	case spinner.TickMsg:
		if !m.searching {
			return m, nil
		}

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return m, Back
		case tea.KeyTab:
			if m.input.Focused() {
				m.input.Blur()
				m.results.Focus()

				return m, nil
			}

			m.results.Blur()
			m.input.Focus()

			return m, textinput.Blink
		case tea.KeyEnter:
			if m.input.Focused() && !m.searching {
				m.searching = true
				return m, tea.Batch(m.spinner.Tick, m.searchCmd(m.input.Value()))
			}
		}
	}

	if !m.input.Focused() {
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}

	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)

	if after := m.input.Value(); after != before {
		return m, tea.Batch(cmd, m.queryCmd(after))
	}

	return m, cmd
}

func (m *SearchModel) setView(v dashboard.View) {
	m.dash = v

	rows := make([]table.Row, 0, len(v.Documents))
	for _, d := range v.Documents {
		rows = append(rows, table.Row{
			strconv.FormatInt(d.ID, 10),
			fmt.Sprintf("%.2f", d.Score),
			truncate(d.Filename, 24),
			truncate(d.Excerpt, 60),
		})
	}

	m.results.SetRows(rows)
}

func (m SearchModel) View() string {
	status := faintStyle.Render("Search the knowledge graph")

	switch {
	case m.searching || m.dash.IsSearching:
		status = m.spinner.View() + " Searching..."
	case m.dash.LastSearched != "":
		status = faintStyle.Render(fmt.Sprintf("%d results for %q", len(m.dash.Documents), m.dash.LastSearched))
	}

	return lipgloss.NewStyle().Padding(1).Render(
		errorLine(m.dash) + lipgloss.JoinVertical(lipgloss.Left,
			m.input.View(),
			"",
			status,
			boxStyle.Render(m.results.View()),
		),
	)
}

func (m SearchModel) searchCmd(term string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestCtx()
		defer cancel()

		return actionDoneMsg{action: "search", err: m.ctrl.Search(ctx, term)}
	}
}

// queryCmd records the query off the update loop; a cleared box drops the
// previous results.
func (m SearchModel) queryCmd(query string) tea.Cmd {
	return func() tea.Msg {
		m.ctrl.SetQuery(query)
		return nil
	}
}
