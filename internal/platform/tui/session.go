package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-klotski/internal/core"
	"github.com/vovakirdan/tui-klotski/internal/games/klotski"
	"github.com/vovakirdan/tui-klotski/internal/registry"
	"github.com/vovakirdan/tui-klotski/internal/storage"
)

// GameOptions configures how boards are drawn.
type GameOptions struct {
	Theme     klotski.Theme
	CellWidth int
	ShowHelp  bool
}

// DefaultGameOptions returns the default look.
func DefaultGameOptions() GameOptions {
	return GameOptions{
		Theme:     klotski.DefaultTheme(),
		CellWidth: 2,
		ShowHelp:  true,
	}
}

// NewGame opens a fresh copy of a registered pack and wraps it in a game.
func (o GameOptions) NewGame(packID string) (*klotski.Game, error) {
	pack, err := registry.Open(packID)
	if err != nil {
		return nil, err
	}
	g := klotski.New(pack, o.Theme)
	g.SetLayout(o.CellWidth, o.ShowHelp)
	return g, nil
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full flow: menu -> game -> menu, with the solve table.
// It is used for local menus and for SSH sessions.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	options    GameOptions
	username   string
	packID     string
	screen     sessionScreen
	menu       MenuModel
	gameModel  *GameModel
	scoreboard *ScoreboardModel
	loops      int
	err        error
	quitting   bool
}

// NewSessionModel creates a session starting on the chooser for packID.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, opts GameOptions, packID, username string) SessionModel {
	return SessionModel{
		store:    store,
		config:   cfg,
		options:  opts,
		username: username,
		packID:   packID,
		menu:     NewMenuModel(store, cfg, packID),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
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
	m.packID = m.menu.PackID()

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH, m.packID)
		m.scoreboard = &sb
		m.screen = screenScores
		return m, sb.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		game, err := m.options.NewGame(m.packID)
		if err != nil {
			m.err = err
			m.menu = NewMenuModel(m.store, m.config, m.packID)
			return m, nil
		}

		m.err = nil
		m.loops++
		cfg := m.config
		cfg.Board = selected.Index
		gm := NewGameModel(game, m.store, cfg, m.loops)
		m.gameModel = &gm
		m.screen = screenGame
		return m, gm.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.toMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates when the solve table is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		m.toMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// toMenu rebuilds the chooser so fresh solves show up.
func (m *SessionModel) toMenu() {
	m.gameModel = nil
	m.scoreboard = nil
	m.screen = screenMenu
	m.menu = NewMenuModel(m.store, m.config, m.packID)
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.gameModel.View()
	case screenScores:
		return m.scoreboard.View()
	}

	view := m.menu.View()
	if m.err != nil {
		view += "\n" + centerText(menuErrorStyle.Render(m.err.Error()), m.config.ScreenW)
	}
	return view
}

// Username returns the name the session was opened for.
func (m SessionModel) Username() string {
	return m.username
}

// RunSession runs the chooser, games and solve table in the local terminal.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, opts GameOptions, packID string) error {
	p := tea.NewProgram(
		NewSessionModel(store, cfg, opts, packID, ""),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
