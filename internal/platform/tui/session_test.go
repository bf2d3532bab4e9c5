package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sendSession(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = sm
	}
	return m
}

func TestSessionFlow(t *testing.T) {
	store := openTestStore(t)
	id := registerTinyPack(t)
	m := NewSessionModel(store, testConfig(), DefaultGameOptions(), id, "alice")
	if m.Username() != "alice" {
		t.Errorf("unexpected username %q", m.Username())
	}

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("enter should start a game, screen is %d", m.screen)
	}

	down := tea.KeyMsg{Type: tea.KeyDown}
	m = sendSession(t, m, down, TickMsg{Loop: 1}, down, TickMsg{Loop: 1})
	if !m.gameModel.State().Solved {
		t.Fatal("board should be solved")
	}

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.screen != screenMenu {
		t.Fatalf("esc should return to the menu, screen is %d", m.screen)
	}
	if best := m.menu.Items()[0].BestMoves; best != 1 {
		t.Errorf("menu should show the new solve, got best %d", best)
	}

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("tab should open the solve table, screen is %d", m.screen)
	}
	if len(m.scoreboard.Stats()) != 1 {
		t.Errorf("expected 1 solved board, got %d", len(m.scoreboard.Stats()))
	}

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.screen != screenMenu {
		t.Fatalf("esc should leave the solve table, screen is %d", m.screen)
	}

	next, cmd := m.Update(runeKey('q'))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}

func TestSessionNewGameUsesFreshTickLoop(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), DefaultGameOptions(), registerTinyPack(t), "")

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEscape}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("expected a game, screen is %d", m.screen)
	}

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyDown}, TickMsg{Loop: 1})
	if moves := m.gameModel.State().Moves; moves != 0 {
		t.Errorf("ticks of the first game must not drive the second, got %d moves", moves)
	}

	m = sendSession(t, m, TickMsg{Loop: 2})
	if moves := m.gameModel.State().Moves; moves != 1 {
		t.Errorf("expected 1 move, got %d", moves)
	}
}

func TestSessionResizeReachesGame(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), DefaultGameOptions(), registerTinyPack(t), "")
	m = sendSession(t, m, tea.WindowSizeMsg{Width: 100, Height: 40}, tea.KeyMsg{Type: tea.KeyEnter})

	if m.config.ScreenW != 100 || m.gameModel.config.ScreenH != 40 {
		t.Errorf("game should start at the resized size, got %dx%d", m.gameModel.config.ScreenW, m.gameModel.config.ScreenH)
	}
}

func TestSessionUnknownPack(t *testing.T) {
	opts := DefaultGameOptions()
	if _, err := opts.NewGame("no-such-pack"); err == nil {
		t.Error("expected error for unknown pack")
	}
}
