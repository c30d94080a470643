// Package logging builds the zerolog logger shared by the app.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options selects the level and destination of log output.
type Options struct {
	Level   string // debug|info|warn|error
	File    string // path, "-" for stderr, "" to discard
	Session string
}

// New returns a logger and a close function for its sink.
func New(opts Options) (zerolog.Logger, func() error, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), nop, err
	}

	var (
		w       io.Writer
		closeFn = nop
	)
	switch opts.File {
	case "":
		return zerolog.Nop(), nop, nil
	case "-":
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	default:
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), nop, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	ctx := zerolog.New(w).Level(level).With().Timestamp()
	if opts.Session != "" {
		ctx = ctx.Str("session", opts.Session)
	}
	return ctx.Logger(), closeFn, nil
}

// ParseLevel maps debug|info|warn|error (any case) to a zerolog level. An
// empty string means info.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	}
	return zerolog.NoLevel, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
}

func nop() error { return nil }
