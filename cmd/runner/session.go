package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// session bundles what every interactive command needs.
type session struct {
	logger  *log.Logger
	store   *storage.Store
	audio   *audio.Player
	logFile io.Closer
}

// openSession sets up logging, storage and audio. Storage and audio are
// optional: failures are logged and the game runs without them.
func openSession(withAudio bool) *session {
	s := &session{}
	s.logger, s.logFile = newLogger(flagLogPath, flagLogLevel)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		s.logger.Warn("running without storage", "db", flagDBPath, "err", err)
	} else {
		s.store = store
	}

	if withAudio {
		muted := false
		if s.store != nil {
			if m, err := s.store.Muted(); err == nil {
				muted = m
			}
		}
		s.audio = audio.NewPlayer(s.logger, muted)
		if err := s.audio.Init(); err != nil {
			s.logger.Warn("running without sound", "err", err)
		}
	}
	return s
}

func (s *session) Close() {
	if s.audio != nil {
		s.audio.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Error("cannot close database", "err", err)
		}
	}
	if s.logFile != nil {
		//nolint:errcheck // Nothing left to report to
		s.logFile.Close()
	}
}

// newLogger writes to path, or to stderr when path is empty or cannot be
// opened. The terminal belongs to the game while it runs, so a file is the
// default.
func newLogger(path, level string) (*log.Logger, io.Closer) {
	opts := log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "runner",
	}
	if lvl, err := log.ParseLevel(level); err == nil {
		opts.Level = lvl
	}

	if path == "" {
		return log.NewWithOptions(os.Stderr, opts), nil
	}
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.NewWithOptions(os.Stderr, opts), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.NewWithOptions(os.Stderr, opts), nil
	}
	opts.Formatter = log.LogfmtFormatter
	return log.NewWithOptions(f, opts), f
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// runtimeConfig builds the runtime config from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
