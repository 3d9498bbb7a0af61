// Package rules keeps score, timer and win/lose state for one round of the
// tilt game. A Manager is owned by the game and handed to the collaborators
// that report pickups and hazards; there is no global instance.
package rules

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
)

// Mode selects how a round is won.
type Mode int

const (
	Normal    Mode = iota // reach the target score or clear the board
	TimeTrial             // clear the board as fast as possible
)

func (m Mode) String() string {
	if m == TimeTrial {
		return "Time Trial"
	}
	return "Normal"
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == TimeTrial {
		return Normal
	}
	return TimeTrial
}

// Messages shown when a round ends.
const (
	MsgFell       = "You fell!"
	MsgHole       = "You fell into a hole!"
	MsgDepleted   = "Score depleted."
	MsgPerfect    = "Perfect Clear! Press R to play again."
	MsgTargetWon  = "You Win! Press R to play again."
	restartSuffix = " Press R to restart."
)

// Config holds the round tunables.
type Config struct {
	TargetScore          int
	WinOnClearBoard      bool
	HazardTimePenalty    float64 // seconds added per hazard in time trial
	BestTimeKey          string
	HazardInvulnerable   float64 // seconds of hazard immunity in normal mode
	GameOverAtZero       bool
	DefaultHazardPenalty int
	FallY                float64
}

// DefaultConfig returns the shipped round rules.
func DefaultConfig() Config {
	return Config{
		TargetScore:          20,
		WinOnClearBoard:      true,
		HazardTimePenalty:    2,
		BestTimeKey:          "BestTime_01",
		HazardInvulnerable:   1,
		GameOverAtZero:       false,
		DefaultHazardPenalty: 3,
		FallY:                -5,
	}
}

// BestTimeStore persists the fastest time-trial clear per key.
type BestTimeStore interface {
	BestTime(key string) (seconds float64, ok bool, err error)
	SaveBestTime(key string, seconds float64) error
}

// Shaker is notified when a hazard should shake the view.
type Shaker interface {
	TriggerShake(duration, strength, damping float64)
}

// Option configures a Manager.
type Option func(*Manager)

// WithBestTimes sets the store consulted when a time trial is won.
func WithBestTimes(s BestTimeStore) Option {
	return func(m *Manager) { m.best = s }
}

// WithShaker sets the shake target for hazard hits.
func WithShaker(s Shaker) Option {
	return func(m *Manager) { m.shaker = s }
}

// WithLogger sets the logger for store failures.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// Manager tracks one round.
type Manager struct {
	cfg    Config
	mode   Mode
	best   BestTimeStore
	shaker Shaker
	logger *log.Logger

	score        int
	totalPickups int
	remaining    int

	started      bool // first input seen, intro hidden
	timerRunning bool
	elapsed      float64
	ended        bool
	won          bool
	newBest      bool
	message      string

	hazardLocked bool
	lockTimer    float64
}

// New creates a manager for a fresh round in mode.
func New(mode Mode, cfg Config, opts ...Option) *Manager {
	m := &Manager{
		cfg:    cfg,
		mode:   mode,
		logger: log.Default().WithPrefix("rules"),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.message = m.Intro()
	return m
}

func (m *Manager) Mode() Mode            { return m.mode }
func (m *Manager) Config() Config        { return m.cfg }
func (m *Manager) Score() int            { return m.score }
func (m *Manager) Elapsed() float64      { return m.elapsed }
func (m *Manager) Ended() bool           { return m.ended }
func (m *Manager) Won() bool             { return m.won }
func (m *Manager) Started() bool         { return m.started }
func (m *Manager) NewBest() bool         { return m.newBest }
func (m *Manager) HazardLocked() bool    { return m.hazardLocked }
func (m *Manager) Remaining() (int, int) { return m.remaining, m.totalPickups }

// Message returns the panel text, or "" while the panel is hidden.
func (m *Manager) Message() string {
	if m.started && !m.ended {
		return ""
	}
	return m.message
}

// Intro is the text shown before the first input.
func (m *Manager) Intro() string {
	const controls = "WASD/Arrows to tilt. Hold Shift for precision. Press R to restart."
	if m.mode == TimeTrial {
		return "Mode: Time Trial\nClear all pickups as fast as possible!\n" + controls
	}
	return "Mode: Normal\nReach the target score or clear all pickups.\n" + controls
}

// HUD returns the status lines for the current mode.
func (m *Manager) HUD() []string {
	if m.mode == Normal {
		return []string{fmt.Sprintf("Score: %d/%d", m.score, m.cfg.TargetScore)}
	}
	remaining := "Remaining: 0/0"
	if m.totalPickups > 0 {
		remaining = fmt.Sprintf("Remaining: %d/%d", m.remaining, m.totalPickups)
	}
	return []string{"Time: " + FormatTime(m.elapsed), remaining}
}

// Tick advances the round clock by dt seconds. The intro is dismissed and the
// timer started by the first frame with input.
func (m *Manager) Tick(dt float64, anyInput bool) {
	if !m.started && anyInput {
		m.started = true
		m.timerRunning = true
	}

	if m.mode == Normal && m.hazardLocked {
		m.lockTimer -= dt
		if m.lockTimer <= 0 {
			m.hazardLocked = false
		}
	}

	if !m.ended && m.timerRunning {
		m.elapsed += dt
	}
}

// CheckFall ends the round when y drops below the fall height. It reports
// whether the round ended on this call.
func (m *Manager) CheckFall(y float64) bool {
	if m.ended || y >= m.cfg.FallY {
		return false
	}
	m.GameOver(MsgFell)
	return true
}

// RegisterTotalPickups resets the pickup counters for a new layout.
func (m *Manager) RegisterTotalPickups(count int) {
	m.totalPickups = max(0, count)
	m.remaining = m.totalPickups
}

// OnPickupConsumed counts one pickup as collected and checks for a clear board.
func (m *Manager) OnPickupConsumed() {
	if m.remaining > 0 {
		m.remaining--
	}
	if m.ended || m.remaining != 0 {
		return
	}
	switch {
	case m.mode == TimeTrial:
		m.winTimeTrial()
	case m.cfg.WinOnClearBoard:
		m.Win(MsgPerfect)
	}
}

// AddScore adds n points in normal mode. Time trials ignore score.
func (m *Manager) AddScore(n int) {
	if m.ended || m.mode == TimeTrial {
		return
	}
	m.score = max(0, m.score+n)
	if m.score >= m.cfg.TargetScore {
		m.Win(MsgTargetWon)
	}
}

// OnHazardHit applies a hazard. In time trial the clock is penalized; in
// normal mode the score drops by |penalty| (the default when zero) and
// further hits are ignored for the invulnerability window.
func (m *Manager) OnHazardHit(penalty int) {
	if m.ended {
		return
	}

	if m.mode == TimeTrial {
		m.elapsed += math.Max(0, m.cfg.HazardTimePenalty)
		m.shake(0.2, 0.15, 2.0)
		return
	}

	if m.hazardLocked {
		return
	}
	p := abs(penalty)
	if penalty == 0 {
		p = abs(m.cfg.DefaultHazardPenalty)
	}
	m.score = max(0, m.score-p)
	m.shake(0.25, 0.15, 2.5)

	m.hazardLocked = true
	m.lockTimer = math.Max(0.05, m.cfg.HazardInvulnerable)

	if m.cfg.GameOverAtZero && m.score <= 0 {
		m.GameOver(MsgDepleted)
	}
}

// GameOver ends the round as a loss. The restart hint is appended to msg.
func (m *Manager) GameOver(msg string) {
	if msg == "" {
		msg = "Game Over."
	}
	m.end(msg + restartSuffix)
}

// Win ends the round as a win with msg shown verbatim.
func (m *Manager) Win(msg string) {
	if msg == "" {
		msg = "You Win!"
	}
	m.won = true
	m.end(msg)
}

func (m *Manager) end(msg string) {
	m.ended = true
	m.timerRunning = false
	m.message = msg
}

func (m *Manager) winTimeTrial() {
	m.won = true
	m.end("")

	line := ""
	best, ok := m.lookupBest()
	if !ok || m.elapsed < best {
		m.newBest = true
		line = "New Best!"
		m.saveBest()
	} else {
		line = "Best: " + FormatTime(best)
	}
	m.message = fmt.Sprintf("Perfect Clear! Time: %s\n%s\nPress R to play again.", FormatTime(m.elapsed), line)
}

func (m *Manager) lookupBest() (float64, bool) {
	if m.best == nil {
		return 0, false
	}
	best, ok, err := m.best.BestTime(m.cfg.BestTimeKey)
	if err != nil {
		m.logger.Warn("failed to read best time", "key", m.cfg.BestTimeKey, "error", err)
		return 0, false
	}
	return best, ok && best >= 0
}

func (m *Manager) saveBest() {
	if m.best == nil {
		return
	}
	if err := m.best.SaveBestTime(m.cfg.BestTimeKey, m.elapsed); err != nil {
		m.logger.Warn("failed to save best time", "key", m.cfg.BestTimeKey, "error", err)
	}
}

func (m *Manager) shake(duration, strength, damping float64) {
	if m.shaker != nil {
		m.shaker.TriggerShake(duration, strength, damping)
	}
}

// FormatTime renders seconds as mm:ss.ss. Negative values render as zero.
func FormatTime(t float64) string {
	if t < 0 {
		t = 0
	}
	minutes := int(math.Floor(t / 60))
	seconds := t - float64(minutes)*60
	return fmt.Sprintf("%02d:%05.2f", minutes, seconds)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
