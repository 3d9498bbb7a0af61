package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tilt-arcade/internal/core"
	"github.com/vovakirdan/tilt-arcade/internal/games/tilt"
	"github.com/vovakirdan/tilt-arcade/internal/storage"
)

// localSession is what a full screen command needs before the terminal is
// handed to Bubble Tea.
type localSession struct {
	cfg    core.RuntimeConfig
	logger *log.Logger
	store  *storage.Store // nil when the database is unavailable
	closer func()
}

// openLocalSession validates the game config, opens the log file and the
// score database, and sizes the screen from the terminal. Config and log
// errors are fatal; a missing database only disables scores.
func openLocalSession() localSession {
	tilt.SetConfigPath(flagConfig)
	tilt.SetDifficultyPreset(flagDifficulty)
	if _, err := tilt.LoadConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser, err := newGameLogger("arcade")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "error", err)
		store = nil
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	return localSession{
		cfg: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		logger: logger,
		store:  store,
		closer: func() {
			if store != nil {
				store.Close()
			}
			logCloser.Close()
		},
	}
}
