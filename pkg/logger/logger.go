// Package logger holds the portal's process-wide zerolog logger.
//
// main calls Init exactly once with the level and format from configuration
// (pretty console output in development, JSON for log aggregation in
// production); everything downstream gets the same instance via Get or has it
// injected. Tokens, phone hashes and signing secrets must never be passed to
// it as fields.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options controls the one-time logger setup.
type Options struct {
	// Level is the minimum level to emit: trace, debug, info, warn, error.
	// Unrecognised or empty values fall back to info.
	Level string
	// Pretty switches to the human-readable console writer. Leave false in
	// production so lines stay machine-parseable JSON.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

var (
	root        zerolog.Logger
	setupOnce   sync.Once
	initialized bool
)

// Init builds the process logger. Only the first call has any effect; later
// calls return the already-built instance.
func Init(opts Options) zerolog.Logger {
	setupOnce.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		out := opts.Output
		if out == nil {
			out = os.Stdout
		}
		if opts.Pretty {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		}

		lvl := parseLevel(opts.Level)
		zerolog.SetGlobalLevel(lvl)

		root = zerolog.New(out).
			Level(lvl).
			With().
			Timestamp().
			Caller().
			Logger()

		initialized = true
	})
	return root
}

// Get returns the process logger. Panics when Init has not run; that is a
// wiring bug, not a runtime condition to handle.
func Get() zerolog.Logger {
	if !initialized {
		panic("logger: Get() called before Init()")
	}
	return root
}

// Reset discards the singleton so the next Init rebuilds it. Test use only.
func Reset() {
	setupOnce = sync.Once{}
	root = zerolog.Logger{}
	initialized = false
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
