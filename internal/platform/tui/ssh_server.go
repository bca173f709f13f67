package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/floorlie/floorlie/internal/core"
	"github.com/floorlie/floorlie/internal/editor"
	"github.com/floorlie/floorlie/internal/game"
	"github.com/floorlie/floorlie/internal/levels"
	"github.com/floorlie/floorlie/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.floorlie/host_key.
	HostKeyPath string

	// DBPath is the path to the progress database.
	DBPath string

	// LevelsDir is an optional directory of extra levels.
	LevelsDir string

	// GameConfig is the globally configured game config.
	GameConfig game.Config

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.floorlie/progress.db",
		GameConfig:  game.DefaultConfig(),
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server so levels can be played remotely.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	levels []levels.Level
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "floorlie-ssh",
	})

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open progress database", "error", err)
		// Continue without storage
	}

	lvls, err := levels.NewLoader(cfg.LevelsDir).LoadAll()
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot load levels: %w", err)
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		levels: lvls,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".floorlie", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: 30,
	}

	model := NewSessionModel(s.levels, s.config.GameConfig, s.store, cfg)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "levels", len(s.levels))

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionScreen identifies which screen a session is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenPlay
	screenEditor
	screenProgress
)

// SessionModel manages the full session flow: menu -> level -> menu,
// with detours into the editor and the progress board. This is the
// top-level model used for SSH sessions and the local menu command.
type SessionModel struct {
	levels   []levels.Level
	gameCfg  game.Config
	store    *storage.Store
	config   core.RuntimeConfig
	screen   sessionScreen
	menu     MenuModel
	play     *PlayModel
	editor   *EditorModel
	progress *ProgressModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(lvls []levels.Level, gameCfg game.Config, store *storage.Store, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		levels:  lvls,
		gameCfg: gameCfg,
		store:   store,
		config:  cfg,
		screen:  screenMenu,
		menu:    NewMenuModel(lvls, store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenPlay:
		return m.updatePlay(msg)
	case screenEditor:
		return m.updateEditor(msg)
	case screenProgress:
		return m.updateProgress(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsProgress() {
		progress := NewProgressModel(m.levels, m.store, m.config.ScreenW, m.config.ScreenH)
		m.progress = &progress
		m.screen = screenProgress
		return m, m.progress.Init()
	}

	if target := m.menu.EditTarget(); target != nil {
		ed, err := editor.FromLevel(*target)
		if err != nil {
			// Level was listed, so it loaded once already; back to menu.
			m.menu = NewMenuModel(m.levels, m.store, m.config)
			return m, nil
		}
		model := NewEditorModel(ed, sessionSavePath(*target), m.config)
		model.standalone = false
		m.editor = &model
		m.screen = screenEditor
		return m, m.editor.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		m.config = m.menu.Config() // Get possibly updated config from resize
		playModel, err := sessionPlayModel(*selected, m.gameCfg, m.store, m.config)
		if err != nil {
			m.menu = NewMenuModel(m.levels, m.store, m.config)
			return m, nil
		}
		m.play = &playModel
		m.screen = screenPlay
		return m, m.play.Init()
	}

	return m, cmd
}

// updatePlay handles updates when a level is running.
func (m SessionModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.play.Update(msg)
	if playModel, ok := newModel.(PlayModel); ok {
		m.play = &playModel
	}

	if m.play.WantsEditor() {
		level := m.play.Level()
		ed, err := editor.FromLevel(level)
		if err == nil {
			model := NewEditorModel(ed, sessionSavePath(level), m.config)
			model.standalone = false
			m.editor = &model
			m.play = nil
			m.screen = screenEditor
			return m, m.editor.Init()
		}
		return m.backToMenu()
	}

	if m.play.BackToMenu() {
		return m.backToMenu()
	}

	if m.play.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateEditor handles updates when the editor is open.
func (m SessionModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.editor.Update(msg)
	if editorModel, ok := newModel.(EditorModel); ok {
		m.editor = &editorModel
	}

	if m.editor.BackToMenu() {
		m.editor = nil
		return m.backToMenu()
	}

	if m.editor.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateProgress handles updates when the progress board is open.
func (m SessionModel) updateProgress(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.progress.Update(msg)
	if progressModel, ok := newModel.(ProgressModel); ok {
		m.progress = &progressModel
	}

	if m.progress.GoingBack() {
		m.progress = nil
		return m.backToMenu()
	}

	if m.progress.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// backToMenu resets the session to a fresh menu.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.play = nil
	m.screen = screenMenu
	m.menu = NewMenuModel(m.levels, m.store, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenPlay:
		if m.play != nil {
			return m.play.View()
		}
	case screenEditor:
		if m.editor != nil {
			return m.editor.View()
		}
	case screenProgress:
		if m.progress != nil {
			return m.progress.View()
		}
	}
	return m.menu.View()
}

// sessionSavePath picks where in-session edits of a level are written.
// Builtin levels have no file path, so they go to the user's level dir.
func sessionSavePath(lvl levels.Level) string {
	if lvl.FilePath != "" {
		return lvl.FilePath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return lvl.ID + ".yaml"
	}
	return filepath.Join(home, ".floorlie", "levels", lvl.ID+".yaml")
}

// RunSession runs the full menu/play/editor flow as a local program.
func RunSession(lvls []levels.Level, gameCfg game.Config, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewSessionModel(lvls, gameCfg, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
