// Package logging builds the zerolog loggers of the packed tools.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options for New.
type Options struct {
	// Level defaults to zerolog.DebugLevel when zero; use ParseLevel for flags.
	Level zerolog.Level
	// JSON writes one JSON object per line instead of the console format.
	JSON bool
	// NoTimestamp drops the time field, for output that must be reproducible.
	NoTimestamp bool
}

// ParseLevel parses a level name case-insensitively. An empty name is
// rejected rather than mapped to zerolog.NoLevel.
func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return zerolog.NoLevel, errors.New("empty log level")
	}
	return zerolog.ParseLevel(level)
}

// New returns a logger writing to w.
func New(w io.Writer, opts Options) zerolog.Logger {
	if !opts.JSON {
		w = newConsoleWriter(w)
	}
	ctx := zerolog.New(w).Level(opts.Level).With()
	if !opts.NoTimestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}

func newConsoleWriter(w io.Writer) zerolog.ConsoleWriter {
	cw := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}
	cw.FormatLevel = func(i interface{}) string {
		if i == nil {
			return "|"
		}
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	return cw
}
