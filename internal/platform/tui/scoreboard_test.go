package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilt-arcade/internal/storage"
)

func tabIndex(t *testing.T, m ScoreboardModel, id string) int {
	t.Helper()
	for i, tab := range m.tabs {
		if tab.id == id {
			return i
		}
	}
	t.Fatalf("no tab %q", id)
	return -1
}

func TestScoreboardTabs(t *testing.T) {
	store := openStore(t)
	if err := store.SaveBestTime("tilt_trial_best", 42.5); err != nil {
		t.Fatalf("SaveBestTime: %v", err)
	}
	if _, err := store.SavePlacementSession(storage.PlacementSession{
		GameID: "tilt", Seed: 7, Requested: 27, Placed: 27, Fallbacks: 1,
	}); err != nil {
		t.Fatalf("SavePlacementSession: %v", err)
	}

	m := NewScoreboardModel(store, 100, 30)
	if n := len(m.tabs); n < 2 {
		t.Fatalf("got %d tabs, want at least the two record tabs", n)
	}
	last := m.tabs[len(m.tabs)-1]
	if last.id != "_layouts" {
		t.Errorf("last tab = %q, want _layouts", last.id)
	}

	m.current = tabIndex(t, m, "_best_times")
	m.load()
	if len(m.rows) != 1 || m.rows[0][1] != "00:42.50" {
		t.Errorf("best time rows = %v", m.rows)
	}

	m.current = tabIndex(t, m, "_layouts")
	m.load()
	if len(m.rows) != 1 || m.rows[0][2] != "27/27" || m.rows[0][3] != "1" {
		t.Errorf("layout rows = %v", m.rows)
	}
}

func TestScoreboardTabCycling(t *testing.T) {
	m := NewScoreboardModel(openStore(t), 100, 30)
	n := len(m.tabs)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.current != n-1 {
		t.Errorf("shift+tab from the first tab = %d, want %d", m.current, n-1)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.current != 0 {
		t.Errorf("tab from the last tab = %d, want 0", m.current)
	}
}

func TestScoreboardEmptyMessage(t *testing.T) {
	m := NewScoreboardModel(openStore(t), 100, 30)
	m.current = tabIndex(t, m, "_best_times")
	m.load()

	if !strings.Contains(m.View(), "No best times yet.") {
		t.Error("empty best times tab should say so")
	}
}

func TestScoreboardBack(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Errorf("esc: back=%v quit=%v", m.IsGoingBack(), m.IsQuitting())
	}
}

func TestFitColumns(t *testing.T) {
	cols := []table.Column{{Title: "A", Width: 6}, {Title: "B", Width: 10}}

	got := fitColumns(cols, 60)
	if got[1].Width != 20 {
		t.Errorf("last column = %d, want capped at 20", got[1].Width)
	}
	if cols[1].Width != 10 {
		t.Error("fitColumns must not modify its input")
	}
	if got := fitColumns(cols, 12); got[1].Width != 10 {
		t.Errorf("narrow width should keep the base width, got %d", got[1].Width)
	}
}
