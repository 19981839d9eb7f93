// FILE: compat/stdlog.go
package compat

import (
	"bytes"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/loggable-io/loggable"
)

// ansiPattern matches SGR color sequences emitted by colorized loggers.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// CaptureWriter is an io.Writer that feeds an existing native logging
// facility into the pipeline, e.g. via log.SetOutput. Writes are buffered
// until a newline completes a message; each complete line is stripped of
// ANSI color sequences, parsed for the common "L (time) TAG: message" shape,
// and dispatched as a record. Lines that do not match the shape become
// records at the default level with the whole line as the message.
type CaptureWriter struct {
	engine       *loggable.Engine
	defaultLevel loggable.Level

	mu  sync.Mutex
	buf []byte
}

// CaptureOption customizes a CaptureWriter.
type CaptureOption func(*CaptureWriter)

// WithCaptureDefaultLevel sets the level for unparseable lines (default
// Info).
func WithCaptureDefaultLevel(level loggable.Level) CaptureOption {
	return func(w *CaptureWriter) {
		w.defaultLevel = level
	}
}

// NewCaptureWriter creates a capture adapter for the given engine.
func NewCaptureWriter(engine *loggable.Engine, opts ...CaptureOption) *CaptureWriter {
	w := &CaptureWriter{
		engine:       engine,
		defaultLevel: loggable.LevelInfo,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write implements io.Writer. It never returns an error; the pipeline
// absorbs all failure modes.
func (w *CaptureWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		line := string(w.buf[:i])
		w.buf = w.buf[i+1:]
		w.dispatchLine(line)
	}
	return len(p), nil
}

// Flush dispatches any buffered partial line. Call before shutdown when the
// captured facility may not terminate its last message.
func (w *CaptureWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.dispatchLine(string(w.buf))
		w.buf = w.buf[:0]
	}
}

func (w *CaptureWriter) dispatchLine(line string) {
	line = ansiPattern.ReplaceAllString(line, "")
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return
	}

	level, tag, payload := parseNativeLine(line, w.defaultLevel)
	w.engine.Dispatch(loggable.Record{
		Time:    time.Now(),
		Level:   level,
		Tag:     tag,
		Message: payload,
	})
}

// parseNativeLine extracts level, tag, and payload from the
// "L (time) TAG: message" shape. Anything else is returned whole at the
// fallback level.
func parseNativeLine(line string, fallback loggable.Level) (loggable.Level, string, string) {
	if len(line) <= 4 || line[1] != ' ' {
		return fallback, "", line
	}

	var level loggable.Level
	switch line[0] {
	case 'E':
		level = loggable.LevelError
	case 'W':
		level = loggable.LevelWarning
	case 'I':
		level = loggable.LevelInfo
	case 'D':
		level = loggable.LevelDebug
	case 'V':
		level = loggable.LevelVerbose
	default:
		return fallback, "", line
	}

	tagStart := strings.IndexByte(line, '(')
	if tagStart < 0 {
		return level, "", line
	}
	tagEnd := strings.IndexByte(line[tagStart:], ')')
	if tagEnd < 0 {
		return level, "", line
	}
	tagEnd += tagStart

	payloadStart := strings.IndexByte(line[tagEnd:], ':')
	if payloadStart < 0 || tagEnd+1 >= len(line) || line[tagEnd+1] != ' ' {
		return level, "", line
	}
	payloadStart += tagEnd

	tag := strings.TrimSpace(line[tagEnd+2 : payloadStart])

	payload := ""
	if payloadStart+2 <= len(line) {
		payload = line[payloadStart+1:]
		payload = strings.TrimPrefix(payload, " ")
	}

	return level, tag, payload
}
