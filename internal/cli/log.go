// Package cli implements the keyscope command-line interface.
//
// Commands render spectrogram payloads and decoded text into SVG, PNG, PDF,
// HTML or JSON files, preview both views in the terminal, and manage the
// artifact cache. The CLI is built on cobra and logs through
// charmbracelet/log; --verbose (-v) switches to debug level.
//
// # Commands
//
//   - spectrogram: Render a spectrogram payload (or raw power with --power)
//   - keyboard: Render the keyboard heat map of a decoded text
//   - result: Render both views from an analysis result envelope
//   - preview: Show either view in the terminal
//   - cache: Clear or locate the artifact cache
//   - config: Print the effective configuration
//
// # Logging
//
// Loggers are passed through context.Context so helpers deep in a command
// can log without threading a logger argument.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
// The returned progress should call done when the operation completes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// The duration is rounded to the nearest millisecond.
// Example output: "Rendered spectrogram (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
// The logger can be retrieved later with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
// This ensures commands always have a valid logger even if context setup fails.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// discardLogger returns a logger that drops everything. Interactive views
// use it so renderer diagnostics do not tear the screen.
func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
