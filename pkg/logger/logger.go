// Package logger configures the process-wide zerolog root logger.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu    sync.Mutex
	root  zerolog.Logger
	ready bool
)

// Init builds the root logger and stores it for later Component calls.
// Subsequent calls replace the stored logger, which keeps tests simple.
// In the development environment output is rendered for humans,
// otherwise pure JSON is written to stdout.
func Init(level, env string) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	zerolog.TimeFieldFormat = time.RFC3339Nano

	var out io.Writer = os.Stdout
	if env == "development" || env == "dev" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	lvl := parseLevel(level)
	root = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	ready = true
	return root
}

// Component returns a child of the root logger tagged with a component
// name. Falls back to a plain stdout logger when Init was never called.
func Component(name string) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if !ready {
		root = zerolog.New(os.Stdout).With().Timestamp().Logger()
		ready = true
	}
	return root.With().Str("component", name).Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
