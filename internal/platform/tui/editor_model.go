package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/floorlie/floorlie/internal/core"
	"github.com/floorlie/floorlie/internal/editor"
	"github.com/floorlie/floorlie/internal/game"
)

// paletteKeys maps number keys to placeable tiles.
var paletteKeys = map[string]game.Kind{
	"1": game.KindEmpty,
	"2": game.KindReal,
	"3": game.KindFake,
	"4": game.KindStart,
	"5": game.KindExit,
}

// EditorModel is the Bubble Tea model for the level editor.
type EditorModel struct {
	editor   *editor.Editor
	savePath string
	screen   *core.Screen
	config   core.RuntimeConfig

	nameInput textinput.Model
	renaming  bool

	status     string
	standalone bool
	quitting   bool
	backToMenu bool
}

// NewEditorModel creates an editor model. savePath is where ctrl+s
// writes the level.
func NewEditorModel(ed *editor.Editor, savePath string, cfg core.RuntimeConfig) EditorModel {
	ti := textinput.New()
	ti.Placeholder = "level name"
	ti.CharLimit = 40
	ti.Width = 30

	return EditorModel{
		editor:     ed,
		savePath:   savePath,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		nameInput:  ti,
		standalone: true,
	}
}

// Init initializes the editor model.
func (m EditorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the editor.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.renaming {
			return m.handleRenameKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// handleRenameKey routes input to the name field until confirmed.
func (m EditorModel) handleRenameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.editor.SetName(m.nameInput.Value())
		m.renaming = false
		m.nameInput.Blur()
		return m, nil
	case "esc":
		m.renaming = false
		m.nameInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handleKey processes editor key bindings.
func (m EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "b", "esc":
		m.backToMenu = true
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case "w", "up":
		m.editor.MoveCursor(game.DirUp)
	case "s", "down":
		m.editor.MoveCursor(game.DirDown)
	case "a", "left":
		m.editor.MoveCursor(game.DirLeft)
	case "d", "right":
		m.editor.MoveCursor(game.DirRight)

	case "n":
		m.renaming = true
		m.nameInput.SetValue(m.editor.Name())
		m.nameInput.Focus()
		return m, textinput.Blink

	case "ctrl+s":
		if err := m.editor.Save(m.savePath); err != nil {
			m.status = fmt.Sprintf("save failed: %v", err)
		} else {
			m.status = fmt.Sprintf("saved to %s", m.savePath)
		}

	default:
		if k, ok := paletteKeys[key]; ok {
			m.editor.Place(k)
		}
	}

	return m, nil
}

// View renders the editor.
func (m EditorModel) View() string {
	if m.quitting {
		return ""
	}

	m.render(m.screen)
	return RenderScreen(m.screen)
}

// render draws the grid under construction, cursor and status lines.
func (m EditorModel) render(s *core.Screen) {
	s.Clear()

	ox := (s.Width() - m.editor.Width()) / 2
	oy := (s.Height() - m.editor.Height()) / 2
	if ox < 1 {
		ox = 1
	}
	if oy < 2 {
		oy = 2
	}

	dirty := ""
	if m.editor.Dirty() {
		dirty = " *"
	}
	s.DrawTextColored(ox, oy-2, fmt.Sprintf("EDIT: %s%s", m.editor.Name(), dirty), core.ColorBrightWhite)

	// The editor always shows the truth; disguises are a play-time concern.
	for y := 0; y < m.editor.Height(); y++ {
		for x := 0; x < m.editor.Width(); x++ {
			r, c := tileGlyph(m.editor.TileAt(x, y), true)
			s.SetColored(ox+x, oy+y, r, c)
		}
	}

	cur := m.editor.Cursor()
	cell := s.GetCell(ox+cur.X, oy+cur.Y)
	s.SetColored(ox+cur.X, oy+cur.Y, cell.Rune, core.ColorBrightWhite)

	if m.renaming {
		s.DrawTextColored(1, s.Height()-3, "Name: "+m.nameInput.View(), core.ColorWhite)
	} else if m.status != "" {
		s.DrawTextColored(1, s.Height()-3, m.status, core.ColorCyan)
	}

	palette := "1 empty | 2 real | 3 fake | 4 start | 5 exit"
	s.DrawTextColored(1, s.Height()-2, palette, core.ColorGray)
	controls := "WASD move | N name | Ctrl+S save | Esc back | Q quit"
	s.DrawTextColored(1, s.Height()-1, controls, core.ColorGray)
}

// IsQuitting returns true if user requested to quit entirely.
func (m EditorModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m EditorModel) BackToMenu() bool {
	return m.backToMenu
}

// RunEditor starts a standalone Bubble Tea program for the editor.
func RunEditor(ed *editor.Editor, savePath string, cfg core.RuntimeConfig) error {
	model := NewEditorModel(ed, savePath, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
