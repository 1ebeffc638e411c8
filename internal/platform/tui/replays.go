package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkovalev/tui-runner/internal/replay"
	"github.com/mkovalev/tui-runner/internal/storage"
)

// Browser layout constants
const (
	browserMinWidth = 44  // Minimum usable width for the table
	maxRecordings   = 100 // Max recordings to load
)

// BrowserKeyMap defines the key bindings for the replay browser.
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Watch  key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Watch, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Watch},
		{k.Delete, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Watch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "watch"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowserModel is the Bubble Tea model for the replay browser screen.
type BrowserModel struct {
	store      *storage.Store
	recordings []replay.Recording
	table      table.Model
	help       help.Model
	keys       BrowserKeyMap
	width      int
	height     int
	quitting   bool
	selectedID int64 // Recording chosen for playback, 0 if none
}

// NewBrowserModel creates a new replay browser model.
func NewBrowserModel(store *storage.Store, width, height int) BrowserModel {
	h := help.New()
	h.ShowAll = false

	m := BrowserModel{
		store:  store,
		keys:   DefaultBrowserKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadRecordings()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Frames", Width: 8},
		{Title: "Date", Width: 16},
	}

	tableWidth := m.width - 4 // Margins
	if tableWidth > browserMinWidth {
		columns[3].Width = tableWidth - 26
		if columns[3].Width > 20 {
			columns[3].Width = 20
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRecordings refreshes the list of stored sessions.
func (m *BrowserModel) loadRecordings() {
	if m.store == nil {
		m.recordings = nil
		m.updateTableRows()
		return
	}

	recordings, err := m.store.Recordings(maxRecordings)
	if err != nil {
		m.recordings = nil
	} else {
		m.recordings = recordings
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current recordings.
func (m *BrowserModel) updateTableRows() {
	rows := make([]table.Row, len(m.recordings))
	for i, r := range m.recordings {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Frames),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)

	m.table.GotoTop()
}

// selected returns the recording under the cursor, or nil.
func (m *BrowserModel) selected() *replay.Recording {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.recordings) {
		return nil
	}
	return &m.recordings[idx]
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Watch):
			if r := m.selected(); r != nil {
				m.selectedID = r.ID
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if r := m.selected(); r != nil && m.store != nil {
				//nolint:errcheck // Refresh below shows the actual state
				m.store.DeleteRecording(r.ID)
				m.loadRecordings()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting || m.selectedID != 0 {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText("RECORDED RUNS", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m BrowserModel) renderTableContent() string {
	if len(m.recordings) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nPlay with recording enabled to save one!")
	}

	return m.table.View()
}

// SelectedID returns the ID of the recording chosen for playback, 0 if none.
func (m BrowserModel) SelectedID() int64 {
	return m.selectedID
}

// centerText centers a block of text within the given width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	centered := make([]string, len(lines))
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad < 0 {
			pad = 0
		}
		centered[i] = strings.Repeat(" ", pad) + line
	}
	return strings.Join(centered, "\n")
}

// RunBrowser runs the replay browser screen.
// Returns the selected recording ID, or 0 if the user quit without choosing.
func RunBrowser(store *storage.Store, width, height int) (int64, error) {
	model := NewBrowserModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	m, ok := finalModel.(BrowserModel)
	if !ok {
		return 0, nil
	}

	return m.SelectedID(), nil
}
