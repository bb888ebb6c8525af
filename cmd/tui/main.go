package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/backoffice/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/backoffice/internal/client"
	"github.com/MrJamesThe3rd/backoffice/internal/config"
	"github.com/MrJamesThe3rd/backoffice/internal/dashboard"
	"github.com/MrJamesThe3rd/backoffice/internal/logging"
)

type model struct {
	appName string
	ctrl    *dashboard.Controller

	currentView View
	version     uint64
	dash        dashboard.View

	overviewView    view.OverviewModel
	eventsView      view.EventsModel
	suggestionsView view.SuggestionsModel
	searchView      view.SearchModel
	uploadView      view.UploadModel
}

type View int

const (
	ViewMenu        View = 0
	ViewOverview    View = 1
	ViewEvents      View = 2
	ViewSuggestions View = 3
	ViewSearch      View = 4
	ViewUpload      View = 5
)

func initialModel(cfg *config.Config, ctrl *dashboard.Controller) model {
	return model{
		appName:         cfg.App.Name,
		ctrl:            ctrl,
		currentView:     ViewMenu,
		dash:            ctrl.View(),
		overviewView:    view.NewOverviewModel(ctrl),
		eventsView:      view.NewEventsModel(ctrl),
		suggestionsView: view.NewSuggestionsModel(ctrl),
		searchView:      view.NewSearchModel(ctrl),
		uploadView:      view.NewUploadModel(ctrl),
	}
}

func (m model) Init() tea.Cmd {
	return view.LoadCmd(m.ctrl)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case view.DashboardMsg:
		// Views are published from several goroutines; keep the newest.
		if msg.View.Version < m.version {
			return m, nil
		}

		m.version = msg.View.Version
		m.dash = msg.View

	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewOverview
				return m, m.overviewView.Init()
			case "2":
				m.currentView = ViewEvents
				return m, m.eventsView.Init()
			case "3":
				m.currentView = ViewSuggestions
				return m, m.suggestionsView.Init()
			case "4":
				m.currentView = ViewSearch
				return m, m.searchView.Init()
			case "5":
				m.currentView = ViewUpload
				m.uploadView = view.NewUploadModel(m.ctrl)

				return m, m.uploadView.Init()
			case "r":
				return m, view.RefreshCmd(m.ctrl)
			}
		}

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	if view.Broadcast(msg) {
		return m, m.broadcast(msg)
	}

	return m, m.updateCurrent(msg)
}

func (m *model) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, 5)
	current := m.currentView

	for _, v := range []View{ViewOverview, ViewEvents, ViewSuggestions, ViewSearch, ViewUpload} {
		m.currentView = v
		cmds = append(cmds, m.updateCurrent(msg))
	}

	m.currentView = current

	return tea.Batch(cmds...)
}

func (m *model) updateCurrent(msg tea.Msg) tea.Cmd {
	var (
		newModel tea.Model
		cmd      tea.Cmd
	)

	switch m.currentView {
	case ViewOverview:
		newModel, cmd = m.overviewView.Update(msg)
		m.overviewView = newModel.(view.OverviewModel)
	case ViewEvents:
		newModel, cmd = m.eventsView.Update(msg)
		m.eventsView = newModel.(view.EventsModel)
	case ViewSuggestions:
		newModel, cmd = m.suggestionsView.Update(msg)
		m.suggestionsView = newModel.(view.SuggestionsModel)
	case ViewSearch:
		newModel, cmd = m.searchView.Update(msg)
		m.searchView = newModel.(view.SearchModel)
	case ViewUpload:
		newModel, cmd = m.uploadView.Update(msg)
		m.uploadView = newModel.(view.UploadModel)
	}

	return cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			m.appName + "\n\n" +
				m.menuStatus() + "\n\n" +
				"1. Overview\n" +
				"2. Event Timeline\n" +
				"3. Agent Suggestions\n" +
				"4. Document Search\n" +
				"5. Upload Documents\n\n" +
				"r. Refresh\n" +
				"q. Quit",
		)
	case ViewOverview:
		return m.overviewView.View()
	case ViewEvents:
		return m.eventsView.View()
	case ViewSuggestions:
		return m.suggestionsView.View()
	case ViewSearch:
		return m.searchView.View()
	case ViewUpload:
		return m.uploadView.View()
	}

	return "Unknown View"
}

func (m model) menuStatus() string {
	if m.dash.IsLoading {
		return "Loading dashboard..."
	}

	status := fmt.Sprintf("%d purchase orders | %d events | %d open suggestions",
		len(m.dash.Purchases), len(m.dash.Events), len(m.dash.OpenSuggestions))

	if m.dash.Error != "" {
		status += "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("Error: "+m.dash.Error)
	}

	return status
}

func main() {
	_ = godotenv.Load()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logFile := logging.RotatingFile(cfg.Log.File)
	defer logFile.Close()

	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format, logFile); err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}

	backend := client.New(cfg.Backend.URL,
		client.WithToken(cfg.Backend.Token),
		client.WithTimeout(cfg.Backend.Timeout),
	)

	ctrl := dashboard.NewController(backend,
		dashboard.WithLLC(cfg.Dashboard.LLCName),
		dashboard.WithSuggestionLimit(cfg.Dashboard.SuggestionLimit),
		dashboard.WithUploadLogSize(cfg.Dashboard.UploadLogSize),
		dashboard.WithUploadTimeout(cfg.Backend.Timeout),
	)
	defer ctrl.Close()

	p := tea.NewProgram(initialModel(cfg, ctrl), tea.WithAltScreen())

	// Send blocks until the event loop reads the message, and mutations may
	// run on the event loop's own goroutine.
	ctrl.Subscribe(func(v dashboard.View) {
		go p.Send(view.DashboardMsg{View: v})
	})

	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		return fmt.Errorf("running tui: %w", err)
	}

	return nil
}
