package view

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/backoffice/internal/dashboard"
)

// EventsModel is the ingestion timeline, newest first.
type EventsModel struct {
	CommonModel

	table     table.Model
	timeframe Timeframe
	now       func() time.Time
}

func NewEventsModel(ctrl *dashboard.Controller) EventsModel {
	m := EventsModel{
		CommonModel: CommonModel{ctrl: ctrl},
		table: newTable([]table.Column{
			{Title: "When", Width: 16},
			{Title: "Event", Width: 28},
			{Title: "Details", Width: 50},
			{Title: "ID", Width: 6},
		}, 18),
		now: time.Now,
	}
	m.setView(ctrl.View())

	return m
}

func (m EventsModel) Title() string { return "Event Timeline" }

func (m EventsModel) ShortHelp() string {
	return "Esc: back | t: timeframe | r: refresh"
}

func (m EventsModel) Init() tea.Cmd {
	return nil
}

func (m EventsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DashboardMsg:
		m.setView(msg.View)
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(max(5, msg.Height-10))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			return m, RefreshCmd(m.ctrl)
		case "t":
			m.timeframe = m.timeframe.Next()
			m.setView(m.dash)

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *EventsModel) setView(v dashboard.View) {
	m.dash = v
	now := m.now()

	rows := make([]table.Row, 0, len(v.Events))
	for _, e := range v.Events {
		if !m.timeframe.Contains(e.CreatedAt.Time, e.CreatedAt.Valid, now) {
			continue
		}

		rows = append(rows, table.Row{
			FormatTimestamp(e.CreatedAt),
			truncate(e.Title(), 28),
			truncate(e.Summary(), 50),
			strconv.FormatInt(e.ID, 10),
		})
	}

	m.table.SetRows(rows)
}

func (m EventsModel) View() string {
	header := "Timeframe: [t] " + activeStyle(m.timeframe.String())

	return lipgloss.NewStyle().Padding(1).Render(
		errorLine(m.dash) + lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().PaddingBottom(1).Render(header),
			boxStyle.Render(m.table.View()),
		),
	)
}
