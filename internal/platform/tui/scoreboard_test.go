package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestScoreboardShowsPackStats(t *testing.T) {
	store := openTestStore(t)
	id := registerTinyPack(t)
	for _, moves := range []int{5, 2, 9} {
		if _, err := store.SaveSolve(id, "Shaft", moves, time.Duration(moves)*time.Second); err != nil {
			t.Fatalf("SaveSolve failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30, id)
	if m.PackID() != id {
		t.Fatalf("expected pack %s, got %s", id, m.PackID())
	}

	stats := m.Stats()
	if len(stats) != 1 {
		t.Fatalf("expected 1 board row, got %d", len(stats))
	}
	if stats[0].Solves != 3 || stats[0].BestMoves != 2 {
		t.Errorf("unexpected stats: %+v", stats[0])
	}

	view := ansi.Strip(m.View())
	for _, want := range []string{"SOLVES - Tiny", "Shaft", "Best runs on Shaft", "Packs"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q:\n%s", want, view)
		}
	}
}

func TestScoreboardNarrowLayout(t *testing.T) {
	m := NewScoreboardModel(openTestStore(t), 60, 30, registerTinyPack(t))

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "< Tiny >") {
		t.Errorf("narrow layout should show the pack between arrows:\n%s", view)
	}
	if !strings.Contains(view, "No boards solved yet") {
		t.Errorf("empty pack should say so:\n%s", view)
	}
}

func TestScoreboardIncludesStoredOnlyPacks(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveSolve("vanished", "Gone", 4, time.Second); err != nil {
		t.Fatalf("SaveSolve failed: %v", err)
	}

	m := NewScoreboardModel(store, 100, 30, "vanished")
	if m.PackID() != "vanished" {
		t.Fatalf("a pack known only to the database should be listed, got %q", m.PackID())
	}
	if len(m.Stats()) != 1 {
		t.Errorf("expected 1 row, got %d", len(m.Stats()))
	}
}

func TestScoreboardNavigation(t *testing.T) {
	id := registerTinyPack(t)
	m := NewScoreboardModel(openTestStore(t), 100, 30, id)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	moved := next.(ScoreboardModel)
	if moved.PackID() == id {
		t.Error("tab should switch pack")
	}

	next, _ = moved.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if back := next.(ScoreboardModel); back.PackID() != id {
		t.Errorf("shift+tab should return to %s, got %s", id, back.PackID())
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if !next.(ScoreboardModel).IsGoingBack() || cmd == nil {
		t.Error("esc should leave the table")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Classic", 10); got != "Classic" {
		t.Errorf("short names are kept, got %q", got)
	}
	if got := truncate("Forget-me-not", 6); got != "Forge." {
		t.Errorf("expected %q, got %q", "Forge.", got)
	}
}
