package view

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/backoffice/internal/dashboard"
	"github.com/MrJamesThe3rd/backoffice/internal/insight"
)

type overviewFocus int

const (
	focusPurchases overviewFocus = iota
	focusVendors
)

// OverviewModel shows the metric tiles, vendor risk and purchase orders.
type OverviewModel struct {
	CommonModel

	focus     overviewFocus
	purchases table.Model
	vendors   table.Model
	status    string
}

func NewOverviewModel(ctrl *dashboard.Controller) OverviewModel {
	purchases := newTable([]table.Column{
		{Title: "PO", Width: 6},
		{Title: "Vendor", Width: 24},
		{Title: "Amount", Width: 14},
		{Title: "Status", Width: 12},
		{Title: "Created", Width: 16},
		{Title: "Doc", Width: 5},
	}, 10)

	vendors := newTable([]table.Column{
		{Title: "Vendor", Width: 24},
		{Title: "Spend", Width: 14},
		{Title: "Open", Width: 6},
		{Title: "Last Purchase", Width: 14},
		{Title: "Risk", Width: 10},
	}, 8)
	vendors.Blur()

	m := OverviewModel{
		CommonModel: CommonModel{ctrl: ctrl},
		purchases:   purchases,
		vendors:     vendors,
	}
	m.setView(ctrl.View())

	return m
}

func (m OverviewModel) Title() string { return "Overview" }

func (m OverviewModel) ShortHelp() string {
	return "Esc: back | Tab: switch table | r: refresh"
}

func (m OverviewModel) Init() tea.Cmd {
	return nil
}

func (m OverviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DashboardMsg:
		m.setView(msg.View)
		return m, nil

	case actionDoneMsg:
		if msg.action == "refresh" {
			m.status = ""
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.purchases.SetHeight(max(5, msg.Height-24))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.status = "Refreshing..."
			return m, RefreshCmd(m.ctrl)
		case "tab":
			m.toggleFocus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == focusVendors {
		m.vendors, cmd = m.vendors.Update(msg)
	} else {
		m.purchases, cmd = m.purchases.Update(msg)
	}

	return m, cmd
}

func (m *OverviewModel) toggleFocus() {
	if m.focus == focusPurchases {
		m.focus = focusVendors
		m.purchases.Blur()
		m.vendors.Focus()

		return
	}

	m.focus = focusPurchases
	m.vendors.Blur()
	m.purchases.Focus()
}

func (m *OverviewModel) setView(v dashboard.View) {
	m.dash = v

	rows := make([]table.Row, 0, len(v.Purchases))
	for _, po := range v.Purchases {
		doc := ""
		if po.Document != nil {
			doc = "yes"
		}

		rows = append(rows, table.Row{
			strconv.FormatInt(po.ID, 10),
			truncate(po.VendorName(insight.UnknownVendor), 24),
			FormatAmount(po),
			po.Status,
			FormatTimestamp(po.CreatedAt),
			doc,
		})
	}

	m.purchases.SetRows(rows)

	code := insight.DefaultCurrency
	if len(v.Purchases) > 0 && v.Purchases[0].Currency != "" {
		code = v.Purchases[0].Currency
	}

	vendorRows := make([]table.Row, 0, len(v.Vendors))
	for _, s := range v.Vendors {
		last := "-"
		if s.LastPurchaseAt != nil {
			last = FormatDate(*s.LastPurchaseAt)
		}

		vendorRows = append(vendorRows, table.Row{
			truncate(s.Name, 24),
			insight.FormatCurrency(s.TotalSpend, code),
			strconv.Itoa(s.OpenOrders),
			last,
			string(s.Risk),
		})
	}

	m.vendors.SetRows(vendorRows)
}

func (m OverviewModel) View() string {
	if m.dash.IsLoading && len(m.dash.Purchases) == 0 {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	tiles := make([]string, 0, len(m.dash.Metrics))
	for _, tile := range m.dash.Metrics {
		tiles = append(tiles, lipgloss.NewStyle().
			Padding(0, 1).
			MarginRight(1).
			Width(26).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Render(fmt.Sprintf("%s\n%s\n%s",
				faintStyle.Render(tile.Label),
				lipgloss.NewStyle().Bold(true).Render(tile.Value),
				toneStyle(tile.Tone).Render(tile.Delta),
			)))
	}

	attention := 0
	for _, v := range m.dash.Vendors {
		if v.Risk == insight.RiskAttention {
			attention++
		}
	}

	vendorTitle := "Vendors"
	if attention > 0 {
		vendorTitle += " " + riskStyle(insight.RiskAttention).Render(fmt.Sprintf("(%d need attention)", attention))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, tiles...),
		"",
		titleStyle.Render(vendorTitle),
		boxStyle.Render(m.vendors.View()),
		titleStyle.Render("Purchase Orders"),
		boxStyle.Render(m.purchases.View()),
	)

	if m.status != "" {
		content = faintStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(errorLine(m.dash) + content)
}
