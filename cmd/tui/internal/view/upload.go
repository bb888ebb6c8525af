package view

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/backoffice/internal/dashboard"
	"github.com/MrJamesThe3rd/backoffice/internal/upload"
)

// DocTypes are the document kinds an operator can upload.
var DocTypes = []string{"Purchase Order", "Contract", "Invoice", "Statement of Work"}

type uploadState int

const (
	uploadStateDocType uploadState = iota
	uploadStateFilePick
	uploadStateUploading
	uploadStateResult
)

// UploadModel queues documents and ingests them as one batch.
type UploadModel struct {
	CommonModel

	state      uploadState
	form       *huh.Form
	docType    string
	filePicker filepicker.Model
	queue      []string
	spinner    spinner.Model
	log        table.Model

	summary upload.Summary
	err     error
}

func NewUploadModel(ctrl *dashboard.Controller) UploadModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(12)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(activeColor)

	log := newTable([]table.Column{
		{Title: "File", Width: 24},
		{Title: "Type", Width: 16},
		{Title: "Status", Width: 10},
		{Title: "Message", Width: 50},
	}, 10)
	log.Blur()

	m := UploadModel{
		CommonModel: CommonModel{ctrl: ctrl},
		docType:     DocTypes[0],
		filePicker:  fp,
		spinner:     s,
		log:         log,
	}
	m.form = m.buildDocTypeForm()
	m.setView(ctrl.View())

	return m
}

func (m UploadModel) Title() string { return "Upload Documents" }

func (m UploadModel) ShortHelp() string {
	switch m.state {
	case uploadStateFilePick:
		return "Enter: add file | u: upload queue | Backspace: drop last | Esc: back"
	case uploadStateUploading:
		return "Uploading..."
	case uploadStateResult:
		return "Enter: upload more | Esc: back to menu"
	}

	return "Esc: back | Enter: confirm"
}

func (m UploadModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m UploadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DashboardMsg:
		m.setView(msg.View)
		return m, nil

	case uploadResultMsg:
		m.state = uploadStateResult
		m.summary = msg.summary
		m.err = msg.err
		m.queue = nil

		return m, nil
	}

	switch m.state {
	case uploadStateDocType:
		return m.updateDocType(msg)
	case uploadStateFilePick:
		return m.updateFilePick(msg)
	case uploadStateUploading:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	case uploadStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m UploadModel) updateDocType(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if docType := m.form.GetString("doc_type"); docType != "" {
		m.docType = docType
	}

	m.state = uploadStateFilePick

	return m, m.filePicker.Init()
}

func (m UploadModel) updateFilePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.state = uploadStateDocType
			m.form = m.buildDocTypeForm()

			return m, m.form.Init()
		case "u":
			if len(m.queue) == 0 || m.dash.IsUploading {
				return m, nil
			}

			m.state = uploadStateUploading

			return m, tea.Batch(m.spinner.Tick, m.uploadCmd(slices.Clone(m.queue), m.docType))
		case "backspace":
			if len(m.queue) > 0 {
				m.queue = m.queue[:len(m.queue)-1]
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect && !slices.Contains(m.queue, path) {
		m.queue = append(m.queue, path)
	}

	return m, cmd
}

func (m UploadModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyEsc:
		m.state = uploadStateDocType
		m.form = m.buildDocTypeForm()

		return m, Back
	case tea.KeyEnter:
		m.state = uploadStateFilePick
		m.err = nil

		return m, m.filePicker.Init()
	}

	return m, nil
}

func (m UploadModel) buildDocTypeForm() *huh.Form {
	docType := m.docType

	options := make([]huh.Option[string], 0, len(DocTypes))
	for _, t := range DocTypes {
		options = append(options, huh.NewOption(t, t))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("doc_type").
				Title("Document Type").
				Description("Applied to every file in the batch").
				Options(options...).
				Value(&docType),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m *UploadModel) setView(v dashboard.View) {
	m.dash = v

	rows := make([]table.Row, 0, len(v.Uploads))
	for _, rec := range v.Uploads {
		rows = append(rows, table.Row{
			truncate(rec.Name, 24),
			rec.DocType,
			string(rec.Status),
			truncate(rec.Message, 50),
		})
	}

	m.log.SetRows(rows)
}

func (m UploadModel) View() string {
	var body string

	switch m.state {
	case uploadStateDocType:
		body = m.form.View()

	case uploadStateFilePick:
		queued := faintStyle.Render("No files queued")
		if len(m.queue) > 0 {
			names := make([]string, 0, len(m.queue))
			for _, p := range m.queue {
				names = append(names, filepath.Base(p))
			}

			queued = fmt.Sprintf("Queued (%d): %s", len(m.queue), activeStyle(truncate(fmt.Sprint(names), 70)))
		}

		body = lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Pick files for: "+m.docType),
			m.filePicker.View(),
			"",
			queued,
		)

	case uploadStateUploading:
		body = fmt.Sprintf("%s Uploading %d file(s)...", m.spinner.View(), len(m.queue))

	case uploadStateResult:
		summary := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")).
			Render(fmt.Sprintf("Uploaded %d, failed %d.", m.summary.Completed, m.summary.Failed))
		if m.err != nil {
			summary += "\n" + errorStyle.Render(fmt.Sprintf("Refresh failed: %v", m.err))
		}

		body = summary
	}

	return lipgloss.NewStyle().Padding(1).Render(
		errorLine(m.dash) + lipgloss.JoinVertical(lipgloss.Left,
			body,
			"",
			titleStyle.Render("Recent Uploads"),
			boxStyle.Render(m.log.View()),
		),
	)
}

type uploadResultMsg struct {
	summary upload.Summary
	err     error
}

func (m UploadModel) uploadCmd(paths []string, docType string) tea.Cmd {
	return func() tea.Msg {
		files := make([]upload.File, 0, len(paths))
		for _, p := range paths {
			files = append(files, upload.FromPath(p))
		}

		summary, err := m.ctrl.Upload(context.Background(), files, docType)

		return uploadResultMsg{summary: summary, err: err}
	}
}
