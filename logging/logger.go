// Package logging builds the diagnostic logger of the bridge.
//
// Standard output is reserved for protocol frames, so diagnostics are always
// written to a separate writer, normally standard error.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Prefix is attached to every diagnostic line.
const Prefix = "sse-bridge"

// New creates a logger writing to w (stderr when nil), at debug level when debug is set.
func New(w io.Writer, debug bool) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		Level:           level,
		ReportTimestamp: true,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel + 1})
}

// OrDiscard returns logger, or a discarding logger when logger is nil.
func OrDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return Discard()
	}
	return logger
}
