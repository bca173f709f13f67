package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/floorlie/floorlie/internal/levels"
	"github.com/floorlie/floorlie/internal/storage"
)

// ProgressKeyMap defines the key bindings for the progress board.
type ProgressKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ProgressKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ProgressKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultProgressKeyMap returns default key bindings.
func DefaultProgressKeyMap() ProgressKeyMap {
	return ProgressKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ProgressModel is the Bubble Tea model for the level progress board.
type ProgressModel struct {
	levels    []levels.Level
	store     *storage.Store
	table     table.Model
	help      help.Model
	keys      ProgressKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewProgressModel creates a progress board over the given levels.
func NewProgressModel(lvls []levels.Level, store *storage.Store, width, height int) ProgressModel {
	keys := DefaultProgressKeyMap()
	h := help.New()
	h.ShowAll = false

	m := ProgressModel{
		levels: lvls,
		store:  store,
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadRows()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ProgressModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Level", Width: 24},
		{Title: "Attempts", Width: 9},
		{Title: "Done", Width: 5},
		{Title: "Last Played", Width: 18},
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

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

// loadRows fills the table from the progress store.
func (m *ProgressModel) loadRows() {
	byID := map[string]storage.ProgressEntry{}
	if m.store != nil {
		if entries, err := m.store.AllProgress(); err == nil {
			for _, e := range entries {
				byID[e.LevelID] = e
			}
		}
	}

	rows := make([]table.Row, 0, len(m.levels))
	for _, lvl := range m.levels {
		e, played := byID[lvl.ID]

		attempts := "-"
		done := ""
		last := "never"
		if played {
			attempts = fmt.Sprintf("%d", e.Attempts)
			if e.Completed {
				done = "✓"
			}
			if !e.LastPlayed.IsZero() {
				last = e.LastPlayed.Format("2006-01-02 15:04")
			}
		}

		rows = append(rows, table.Row{lvl.Name, attempts, done, last})
	}
	m.table.SetRows(rows)
}

// Init initializes the progress model.
func (m ProgressModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the progress board.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the progress board.
func (m ProgressModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("LEVEL PROGRESS", m.width))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// GoingBack returns true if the user backed out rather than quit.
func (m ProgressModel) GoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user requested to quit.
func (m ProgressModel) IsQuitting() bool {
	return m.quitting
}

// RunProgressBoard runs the progress board as a standalone program.
// Returns true if the user wants to go back to the menu.
func RunProgressBoard(lvls []levels.Level, store *storage.Store, width, height int) (bool, error) {
	model := NewProgressModel(lvls, store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	if m, ok := finalModel.(ProgressModel); ok {
		return m.GoingBack(), nil
	}
	return false, nil
}
