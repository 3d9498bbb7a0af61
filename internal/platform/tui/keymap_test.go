package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilt-arcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name      string
		msg       tea.KeyMsg
		action    core.Action
		quit      bool
		precision bool
	}{
		{"w", runeKey('w'), core.ActionUp, false, false},
		{"W", runeKey('W'), core.ActionUp, false, true},
		{"a", runeKey('a'), core.ActionLeft, false, false},
		{"D", runeKey('D'), core.ActionRight, false, true},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false, false},
		{"shift+left", tea.KeyMsg{Type: tea.KeyShiftLeft}, core.ActionLeft, false, true},
		{"r", runeKey('r'), core.ActionRestart, false, false},
		{"m", runeKey('m'), core.ActionToggleMode, false, false},
		{"p", runeKey('p'), core.ActionPause, false, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false, false},
		{"q", runeKey('q'), core.ActionQuit, true, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true, false},
		{"x", runeKey('x'), core.ActionNone, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
			if got := km.IsPrecision(tt.msg); got != tt.precision {
				t.Errorf("IsPrecision(%q) = %v, want %v", tt.msg.String(), got, tt.precision)
			}
		})
	}
}

func TestMapKeyToFrameSetsPrecision(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()
	km.MapKeyToFrame(runeKey('S'), &frame)
	if !frame.Has(core.ActionDown) || !frame.Has(core.ActionPrecision) {
		t.Errorf("frame = %v, want Down and Precision", frame.Actions)
	}
}

func TestMenuActions(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
