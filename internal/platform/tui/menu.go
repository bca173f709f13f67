package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/floorlie/floorlie/internal/core"
	"github.com/floorlie/floorlie/internal/levels"
	"github.com/floorlie/floorlie/internal/storage"
)

// MenuItem represents a selectable level in the menu.
type MenuItem struct {
	Level     levels.Level
	Completed bool
}

// MenuModel is the Bubble Tea model for the level picker menu.
type MenuModel struct {
	items        []MenuItem
	cursor       int
	width        int
	height       int
	config       core.RuntimeConfig
	keyMapper    *KeyMapper
	quitting     bool
	selected     *levels.Level // Set when user selects a level to play
	editTarget   *levels.Level // Set when user wants the editor
	openProgress bool          // True if user pressed Tab for the progress board
}

// NewMenuModel creates a new menu model.
func NewMenuModel(lvls []levels.Level, store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	completed := map[string]bool{}
	if store != nil {
		if ids, err := store.CompletedIDs(); err == nil {
			completed = ids
		}
	}

	items := make([]MenuItem, 0, len(lvls))
	for _, lvl := range lvls {
		items = append(items, MenuItem{
			Level:     lvl,
			Completed: completed[lvl.ID],
		})
	}

	return MenuModel{
		items:     items,
		cursor:    0,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor].Level
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the level
		}

	case MenuActionEdit:
		if len(m.items) > 0 {
			target := m.items[m.cursor].Level
			m.editTarget = &target
			return m, tea.Quit // Exit menu to open the editor
		}

	case MenuActionProgress:
		m.openProgress = true
		return m, tea.Quit // Exit menu to show the progress board
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "  T H E   F L O O R   I S   A   L I E  "
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	subtitle := "Select a level"
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		mark := "   "
		if item.Completed {
			mark = " ✓ "
		}

		line := fmt.Sprintf("%s%s%s(%dx%d)", cursor, item.Level.Name, mark, item.Level.Width, item.Level.Height)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  E: Edit  |  Tab: Progress  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected level, or nil if none selected.
func (m MenuModel) Selected() *levels.Level {
	return m.selected
}

// EditTarget returns the level to edit, or nil.
func (m MenuModel) EditTarget() *levels.Level {
	return m.editTarget
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsProgress returns true if user requested the progress board.
func (m MenuModel) WantsProgress() bool {
	return m.openProgress
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Level         *levels.Level
	EditTarget    *levels.Level
	Config        core.RuntimeConfig
	WantsProgress bool
	Quit          bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(lvls []levels.Level, store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(lvls, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsProgress() {
		result.WantsProgress = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.EditTarget() != nil {
		result.EditTarget = m.EditTarget()
		return result, nil
	}

	if m.Selected() != nil {
		result.Level = m.Selected()
	} else {
		result.Quit = true
	}

	return result, nil
}
