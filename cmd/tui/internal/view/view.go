package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// View is the interface that all TUI screens implement.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

var (
	_ View = OverviewModel{}
	_ View = EventsModel{}
	_ View = SuggestionsModel{}
	_ View = SearchModel{}
	_ View = UploadModel{}
)
