package view

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/backoffice/internal/dashboard"
	"github.com/MrJamesThe3rd/backoffice/internal/insight"
)

const requestTimeout = 30 * time.Second

// CommonModel is embedded by all views.
type CommonModel struct {
	ctrl *dashboard.Controller
	dash dashboard.View
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// DashboardMsg carries a fresh dashboard view published by the controller.
type DashboardMsg struct {
	View dashboard.View
}

// actionDoneMsg reports the end of a controller operation started by a view.
type actionDoneMsg struct {
	action string
	err    error
}

func requestCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// RefreshCmd refreshes every collection on the dashboard.
func RefreshCmd(ctrl *dashboard.Controller) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestCtx()
		defer cancel()

		return actionDoneMsg{action: "refresh", err: ctrl.Refresh(ctx)}
	}
}

// LoadCmd performs the initial dashboard load.
func LoadCmd(ctrl *dashboard.Controller) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestCtx()
		defer cancel()

		return actionDoneMsg{action: "load", err: ctrl.Load(ctx)}
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	boxStyle    = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	activeColor = lipgloss.Color("205")
)

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(activeColor).Render(s)
}

func toneStyle(t insight.Tone) lipgloss.Style {
	switch t {
	case insight.ToneSuccess:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	case insight.ToneWarning:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	}
}

func riskStyle(r insight.Risk) lipgloss.Style {
	switch r {
	case insight.RiskAttention:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	case insight.RiskWatch:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	}
}

// errorLine renders the dashboard error slot, or nothing when it is empty.
func errorLine(v dashboard.View) string {
	if v.Error == "" {
		return ""
	}

	return errorStyle.Render("Error: "+v.Error) + "\n"
}

// Broadcast reports whether msg concerns every screen rather than only the
// active one.
func Broadcast(msg tea.Msg) bool {
	switch msg.(type) {
	case DashboardMsg, actionDoneMsg, uploadResultMsg:
		return true
	}

	return false
}
