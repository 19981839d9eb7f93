// FILE: sinks/console.go

// Package sinks provides ready-made record consumers for the dispatch
// engine: console and rotating-file text output, a rate-limiting wrapper,
// and a deep-dump sink for debugging.
package sinks

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/loggable-io/loggable"
)

// Console writes records as single text lines to an io.Writer. A mutex
// serializes writes since records can arrive from the dispatch worker and,
// in synchronous mode, from arbitrary producer goroutines.
type Console struct {
	mu              sync.Mutex
	w               io.Writer
	timestampFormat string
}

// ConsoleOption customizes a Console sink.
type ConsoleOption func(*Console)

// WithTimestampFormat overrides the timestamp layout (default RFC3339).
func WithTimestampFormat(layout string) ConsoleOption {
	return func(s *Console) {
		s.timestampFormat = layout
	}
}

// NewConsole creates a console sink. A nil writer defaults to stdout.
func NewConsole(w io.Writer, opts ...ConsoleOption) *Console {
	if w == nil {
		w = os.Stdout
	}
	s := &Console{
		w:               w,
		timestampFormat: time.RFC3339,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Consume implements loggable.Sink.
func (s *Console) Consume(rec loggable.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeTextLine(s.w, s.timestampFormat, rec)
}

// writeTextLine is the shared "ts [L] [tag] message" line format used by the
// text sinks. Write errors are swallowed: sinks have nowhere to report them
// and the pipeline treats delivery as best-effort.
func writeTextLine(w io.Writer, tsFormat string, rec loggable.Record) {
	if rec.Tag != "" {
		fmt.Fprintf(w, "%s [%s] [%s] %s\n", rec.Time.Format(tsFormat), rec.Level.Letter(), rec.Tag, rec.Message)
		return
	}
	fmt.Fprintf(w, "%s [%s] %s\n", rec.Time.Format(tsFormat), rec.Level.Letter(), rec.Message)
}
