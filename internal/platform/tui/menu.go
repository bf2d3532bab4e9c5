package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-klotski/internal/core"
	"github.com/vovakirdan/tui-klotski/internal/registry"
	"github.com/vovakirdan/tui-klotski/internal/storage"
)

// MenuItem represents a selectable board in the chooser.
type MenuItem struct {
	Index     int // Position of the board in its pack
	Name      string
	Size      string
	BestMoves int // 0 when never solved
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuPackStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSolvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

const (
	menuChromeLines    = 10 // Title, pack line, footer and spacing
	menuMinVisibleRows = 3
)

// MenuModel is the Bubble Tea model for the pack and board chooser.
type MenuModel struct {
	packs          []registry.PackInfo
	packCursor     int
	items          []MenuItem
	cursor         int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	err            error
	quitting       bool
	selected       *MenuItem // Set when user selects a board
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a chooser positioned on packID, or the first pack.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, packID string) MenuModel {
	m := MenuModel{
		packs:     registry.List(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}

	for i, p := range m.packs {
		if p.ID == packID {
			m.packCursor = i
			break
		}
	}
	m.loadPack()
	return m
}

// loadPack reads the boards of the current pack and their best solves.
func (m *MenuModel) loadPack() {
	m.items = nil
	m.cursor = 0
	m.err = nil
	if len(m.packs) == 0 {
		return
	}

	id := m.packs[m.packCursor].ID
	pack, err := registry.Open(id)
	if err != nil {
		m.err = err
		return
	}

	var solved map[string]int
	if m.store != nil {
		solved, err = m.store.SolvedBoards(id)
		if err != nil {
			m.err = err
		}
	}

	for i, b := range pack.Boards {
		if !b.Playable() {
			continue
		}
		m.items = append(m.items, MenuItem{
			Index:     i,
			Name:      b.Name(),
			Size:      fmt.Sprintf("%dx%d", b.Width(), b.Height()),
			BestMoves: solved[b.Name()],
		})
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
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
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

	case MenuActionPrevPack:
		if len(m.packs) > 1 {
			m.packCursor = (m.packCursor - 1 + len(m.packs)) % len(m.packs)
			m.loadPack()
		}

	case MenuActionNextPack:
		if len(m.packs) > 1 {
			m.packCursor = (m.packCursor + 1) % len(m.packs)
			m.loadPack()
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// visibleRange returns the slice of items that fits the screen around the cursor.
func (m MenuModel) visibleRange() (int, int) {
	rows := core.Max(menuMinVisibleRows, m.height-menuChromeLines)
	if len(m.items) <= rows {
		return 0, len(m.items)
	}
	start := core.Clamp(m.cursor-rows/2, 0, len(m.items)-rows)
	return start, start + rows
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  K L O T S K I  "), m.width))
	b.WriteString("\n\n")

	if len(m.packs) == 0 {
		b.WriteString(centerText("No level packs registered", m.width))
		b.WriteString("\n")
		return b.String()
	}

	pack := m.packs[m.packCursor]
	packLine := fmt.Sprintf("%s (%d/%d)", pack.Title, m.packCursor+1, len(m.packs))
	if len(m.packs) > 1 {
		packLine = "< " + packLine + " >"
	}
	b.WriteString(centerText(menuPackStyle.Render(packLine), m.width))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(centerText(menuErrorStyle.Render(m.err.Error()), m.width))
		b.WriteString("\n\n")
	}

	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		b.WriteString(centerText(m.renderItem(i), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Board  |  Left/Right: Pack  |  Enter: Play  |  Tab: Solves  |  Q: Quit"
	b.WriteString(centerText(menuHintStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// renderItem formats one board line of the chooser.
func (m MenuModel) renderItem(i int) string {
	item := m.items[i]

	line := fmt.Sprintf("%-14s %7s", item.Name, item.Size)
	mark := "        "
	if item.BestMoves > 0 {
		mark = menuSolvedStyle.Render(fmt.Sprintf(" ✓ %4d", item.BestMoves))
	}

	if i == m.cursor {
		return menuCursorStyle.Render("> "+line) + mark
	}
	return "  " + line + mark
}

// Items returns the boards listed for the current pack.
func (m MenuModel) Items() []MenuItem {
	return m.items
}

// PackID returns the pack under the cursor, or "" when none is registered.
func (m MenuModel) PackID() string {
	if len(m.packs) == 0 {
		return ""
	}
	return m.packs[m.packCursor].ID
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
