package view

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/backoffice/internal/backoffice"
	"github.com/MrJamesThe3rd/backoffice/internal/dashboard"
)

// SuggestionsModel lists agent suggestions and approves the selected one.
type SuggestionsModel struct {
	CommonModel

	table        table.Model
	showResolved bool
	rows         []backoffice.Suggestion
	status       string
}

func NewSuggestionsModel(ctrl *dashboard.Controller) SuggestionsModel {
	m := SuggestionsModel{
		CommonModel: CommonModel{ctrl: ctrl},
		table: newTable([]table.Column{
			{Title: "ID", Width: 6},
			{Title: "Agent", Width: 16},
			{Title: "Type", Width: 16},
			{Title: "Message", Width: 48},
			{Title: "State", Width: 12},
		}, 15),
	}
	m.setView(ctrl.View())

	return m
}

func (m SuggestionsModel) Title() string { return "Agent Suggestions" }

func (m SuggestionsModel) ShortHelp() string {
	return "Esc: back | a: approve | Tab: open/resolved | r: refresh"
}

func (m SuggestionsModel) Init() tea.Cmd {
	return nil
}

func (m SuggestionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DashboardMsg:
		m.setView(msg.View)
		return m, nil

	case actionDoneMsg:
		if msg.action != "approve" {
			return m, nil
		}

		m.status = "Suggestion approved."
		if msg.err != nil {
			m.status = ""
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			return m, RefreshCmd(m.ctrl)
		case "tab":
			m.showResolved = !m.showResolved
			m.setView(m.dash)

			return m, nil
		case "a", "enter":
			return m.approveSelected()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m SuggestionsModel) approveSelected() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if m.showResolved || idx < 0 || idx >= len(m.rows) {
		return m, nil
	}

	s := m.rows[idx]
	if s.Approved || m.dash.IsPending(s.ID) {
		return m, nil
	}

	m.status = fmt.Sprintf("Approving suggestion #%d...", s.ID)

	return m, m.approveCmd(s.ID)
}

func (m *SuggestionsModel) setView(v dashboard.View) {
	m.dash = v

	m.rows = v.OpenSuggestions
	if m.showResolved {
		m.rows = v.ResolvedSuggestions
	}

	rows := make([]table.Row, 0, len(m.rows))
	for _, s := range m.rows {
		state := "open"

		switch {
		case s.Approved:
			state = "approved"
		case v.IsPending(s.ID):
			state = "approving..."
		}

		rows = append(rows, table.Row{
			strconv.FormatInt(s.ID, 10),
			truncate(s.Agent, 16),
			truncate(s.Type, 16),
			truncate(s.Message, 48),
			state,
		})
	}

	m.table.SetRows(rows)
}

func (m SuggestionsModel) View() string {
	open := fmt.Sprintf("Open (%d)", len(m.dash.OpenSuggestions))
	resolved := fmt.Sprintf("Resolved (%d)", len(m.dash.ResolvedSuggestions))

	if m.showResolved {
		resolved = activeStyle(resolved)
	} else {
		open = activeStyle(open)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(open+" | "+resolved),
		boxStyle.Render(m.table.View()),
	)

	if m.status != "" {
		content = faintStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(errorLine(m.dash) + content)
}

func (m SuggestionsModel) approveCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestCtx()
		defer cancel()

		return actionDoneMsg{action: "approve", err: m.ctrl.Approve(ctx, id)}
	}
}
