package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilt-arcade/internal/registry"
)

func init() {
	registry.Register("zz_session", func() registry.Game { return &recordingGame{} })
}

func sessionSend(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

// pointMenuAt moves the menu cursor onto the game with the given id.
func pointMenuAt(t *testing.T, m SessionModel, id string) SessionModel {
	t.Helper()
	for i, item := range m.menu.items {
		if item.GameID == id {
			m.menu.cursor = i
			return m
		}
	}
	t.Fatalf("menu has no %q", id)
	return m
}

func TestSessionGameRoundTrip(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), "tester")
	if m.SessionID() == "" {
		t.Fatal("session should have an id")
	}

	m = pointMenuAt(t, m, "zz_session")
	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.gameModel == nil {
		t.Fatalf("enter should start the game, screen=%d", m.screen)
	}
	if m.Played() != 1 {
		t.Errorf("Played() = %d, want 1", m.Played())
	}

	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.gameModel != nil {
		t.Errorf("back should return to the menu, screen=%d", m.screen)
	}
	if m.quitting {
		t.Error("back must not end the session")
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), "tester")

	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("tab should open the scoreboard, screen=%d", m.screen)
	}

	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("back should return to the menu, screen=%d", m.screen)
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), "tester")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !next.(SessionModel).quitting {
		t.Error("q should end the session")
	}
	if cmd == nil {
		t.Error("quitting should return tea.Quit")
	}
	if next.View() != "" {
		t.Error("a finished session renders nothing")
	}
}

func TestSessionResizeTracksConfig(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), "tester")
	m = sessionSend(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.config.ScreenW != 120 || m.config.ScreenH != 40 {
		t.Errorf("config = %dx%d, want 120x40", m.config.ScreenW, m.config.ScreenH)
	}
}
