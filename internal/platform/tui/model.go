package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/floorlie/floorlie/internal/core"
	"github.com/floorlie/floorlie/internal/game"
	"github.com/floorlie/floorlie/internal/levels"
	"github.com/floorlie/floorlie/internal/storage"
)

// PlayModel is the Bubble Tea model for playing a single level.
type PlayModel struct {
	level  levels.Level
	run    *game.Run
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig

	inputFrame core.InputFrame
	keyMapper  *KeyMapper

	standalone      bool // Quit the program on back instead of flagging
	quitting        bool
	backToMenu      bool
	wantsEditor     bool
	completionSaved bool
}

// NewPlayModel creates a play model for the given level.
// gameCfg is the globally configured game config; the level's own
// overrides are applied on top of it.
func NewPlayModel(level levels.Level, gameCfg game.Config, store *storage.Store, cfg core.RuntimeConfig) (PlayModel, error) {
	grid, err := level.ToGrid()
	if err != nil {
		return PlayModel{}, fmt.Errorf("level %s: %w", level.ID, err)
	}

	return PlayModel{
		level:      level,
		run:        game.NewRun(grid, level.GameConfig(gameCfg)),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		standalone: true,
	}, nil
}

// Init starts the tick loop and records the first attempt.
func (m PlayModel) Init() tea.Cmd {
	if m.store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.RecordAttempt(m.level.ID)
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.backToMenu = true
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.inputFrame.Has(core.ActionEnterEditor) {
		m.wantsEditor = true
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// handleTick runs one simulation step.
func (m PlayModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.run.Start()
		m.completionSaved = false
		if m.store != nil {
			//nolint:errcheck // Best-effort save
			m.store.RecordAttempt(m.level.ID)
		}
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if m.inputFrame.Has(core.ActionToggleMask) {
		m.run.HandleMaskToggle()
	}
	for action, dir := range moveActions {
		if m.inputFrame.Has(action) {
			m.run.HandleMove(dir)
		}
	}

	m.run.Tick(m.config.TickInterval())

	if m.run.Outcome() == game.OutcomeWon && !m.completionSaved {
		if m.store != nil {
			//nolint:errcheck // Best-effort save
			m.store.MarkCompleted(m.level.ID)
		}
		m.completionSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// moveActions maps input actions to grid directions.
var moveActions = map[core.Action]game.Dir{
	core.ActionMoveUp:    game.DirUp,
	core.ActionMoveDown:  game.DirDown,
	core.ActionMoveLeft:  game.DirLeft,
	core.ActionMoveRight: game.DirRight,
}

// View renders the current state to a string for display.
func (m PlayModel) View() string {
	if m.quitting && m.run.Outcome() == game.OutcomeInProgress {
		return ""
	}

	m.render(m.screen)
	return RenderScreen(m.screen)
}

// render draws the level, player and HUD into the screen buffer.
func (m PlayModel) render(s *core.Screen) {
	s.Clear()

	snap := m.run.Snapshot()
	grid := m.run.Grid()

	// Center the level on screen, leaving room for the HUD.
	ox := (s.Width() - grid.Width()) / 2
	oy := (s.Height() - grid.Height()) / 2
	if ox < 1 {
		ox = 1
	}
	if oy < 2 {
		oy = 2
	}

	s.DrawTextColored(ox, oy-2, m.level.Name, core.ColorBrightWhite)

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			k, err := grid.TileAt(x, y)
			if err != nil {
				continue
			}
			r, c := tileGlyph(k, snap.MaskActive)
			s.SetColored(ox+x, oy+y, r, c)
		}
	}

	s.SetColored(ox+snap.PlayerX, oy+snap.PlayerY, '@', core.ColorWhite)

	m.renderHUD(s, snap)

	if snap.Outcome != game.OutcomeInProgress {
		m.renderOverlay(s, snap)
	}
}

// tileGlyph returns the rune and color a tile shows on screen.
// Without the mask a fake tile is indistinguishable from a real one.
func tileGlyph(k game.Kind, maskActive bool) (rune, core.Color) {
	switch k {
	case game.KindReal:
		return '#', core.ColorGreen
	case game.KindFake:
		if maskActive {
			return '~', core.ColorRed
		}
		return '#', core.ColorGreen
	case game.KindStart:
		return 'S', core.ColorBlue
	case game.KindExit:
		return 'E', core.ColorYellow
	default:
		return '.', core.ColorGray
	}
}

// renderHUD draws the status line at the bottom of the screen.
func (m PlayModel) renderHUD(s *core.Screen, snap game.Snapshot) {
	y := s.Height() - 2

	elapsed := fmt.Sprintf("Time %5.1fs", snap.Elapsed.Seconds())
	s.DrawTextColored(1, y, elapsed, core.ColorWhite)

	var mask string
	var maskColor core.Color
	switch snap.MaskState {
	case game.MaskActive:
		mask = fmt.Sprintf("Mask ACTIVE %.1fs", snap.TimeRemaining.Seconds())
		maskColor = core.ColorCyan
	case game.MaskCooling:
		mask = fmt.Sprintf("Mask COOLDOWN %.1fs", snap.CooldownRemaining.Seconds())
		maskColor = core.ColorGray
	default:
		mask = "Mask READY"
		maskColor = core.ColorCyan
	}
	s.DrawTextColored(16, y, mask, maskColor)

	s.DrawTextColored(38, y, fmt.Sprintf("Uses %d", snap.UsageCount), core.ColorWhite)

	controls := "WASD move | M mask | R restart | Esc menu | Q quit"
	s.DrawTextColored(1, s.Height()-1, controls, core.ColorGray)
}

// renderOverlay draws the end-of-run box with the star rating.
func (m PlayModel) renderOverlay(s *core.Screen, snap game.Snapshot) {
	boxW, boxH := 30, 6
	bx := (s.Width() - boxW) / 2
	by := (s.Height() - boxH) / 2

	s.FillRect(bx, by, boxW, boxH, ' ', core.ColorDefault)
	s.DrawBox(bx, by, boxW, boxH, core.ColorBrightWhite)

	var title string
	var titleColor core.Color
	if snap.Outcome == game.OutcomeWon {
		title = "LEVEL COMPLETE"
		titleColor = core.ColorGreen
	} else {
		title = "THE FLOOR WAS A LIE"
		titleColor = core.ColorRed
	}
	s.DrawTextColored(bx+(boxW-len(title))/2, by+1, title, titleColor)

	if snap.Result != nil {
		stars := starRow(snap.Result.Stars)
		s.DrawTextColored(bx+(boxW-len([]rune(stars)))/2, by+2, stars, core.ColorYellow)

		detail := fmt.Sprintf("%.1fs, %d mask uses", snap.Result.Elapsed.Seconds(), snap.Result.MaskUsages)
		s.DrawTextColored(bx+(boxW-len(detail))/2, by+3, detail, core.ColorWhite)
	}

	hint := "R retry | Esc menu"
	s.DrawTextColored(bx+(boxW-len(hint))/2, by+4, hint, core.ColorGray)
}

// starRow renders a 0-3 star rating as filled and hollow stars.
func starRow(stars int) string {
	row := make([]rune, 0, 3)
	for i := 0; i < 3; i++ {
		if i < stars {
			row = append(row, '★')
		} else {
			row = append(row, '☆')
		}
	}
	return string(row)
}

// Outcome exposes the run outcome for session orchestration.
func (m PlayModel) Outcome() game.Outcome {
	return m.run.Outcome()
}

// Result exposes the final result, or nil while in progress.
func (m PlayModel) Result() *game.Result {
	return m.run.Result()
}

// IsQuitting returns true if user requested to quit entirely.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m PlayModel) BackToMenu() bool {
	return m.backToMenu
}

// WantsEditor returns true if user requested the editor for this level.
func (m PlayModel) WantsEditor() bool {
	return m.wantsEditor
}

// Level returns the level being played.
func (m PlayModel) Level() levels.Level {
	return m.level
}

// RunPlay starts a standalone Bubble Tea program playing one level.
func RunPlay(level levels.Level, gameCfg game.Config, store *storage.Store, cfg core.RuntimeConfig) (*game.Result, error) {
	model, err := NewPlayModel(level, gameCfg, store, cfg)
	if err != nil {
		return nil, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	if m, ok := finalModel.(PlayModel); ok {
		return m.Result(), nil
	}
	return nil, nil
}

// sessionPlayModel returns a play model wired for in-session use,
// where back and editor requests are flags instead of quits.
func sessionPlayModel(level levels.Level, gameCfg game.Config, store *storage.Store, cfg core.RuntimeConfig) (PlayModel, error) {
	m, err := NewPlayModel(level, gameCfg, store, cfg)
	if err != nil {
		return PlayModel{}, err
	}
	m.standalone = false
	return m, nil
}
