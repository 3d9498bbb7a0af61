package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds the stderr logger used by commands that do not take over
// the terminal.
func newLogger(prefix string) *log.Logger {
	return buildLogger(os.Stderr, prefix)
}

// newGameLogger builds a logger for commands that run a full screen UI.
// Output would corrupt the alternate screen, so it goes to --log-file or
// nowhere. The returned closer must be called on exit.
func newGameLogger(prefix string) (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return buildLogger(io.Discard, prefix), nopCloser{}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return buildLogger(f, prefix), f, nil
}

func buildLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	log.SetDefault(logger)
	return logger
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
