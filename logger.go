// FILE: logger.go
package loggable

import (
	"fmt"
	"time"
)

// Logger is the lightweight convenience layer: a value type holding an
// engine handle and an owner-supplied tag. It checks the severity threshold
// before building a record so suppressed messages cost neither formatting
// nor a queue slot.
type Logger struct {
	engine *Engine
	tag    string
}

// NewLogger returns a logger that stamps records with the given tag.
func NewLogger(engine *Engine, tag string) Logger {
	return Logger{engine: engine, tag: tag}
}

// Tag returns the owner-supplied tag.
func (l Logger) Tag() string { return l.tag }

// WithTag returns a copy of the logger with a different tag, sharing the
// same engine.
func (l Logger) WithTag(tag string) Logger {
	return Logger{engine: l.engine, tag: tag}
}

// Log dispatches a pre-formatted message at the given level.
func (l Logger) Log(level Level, message string) {
	if l.engine == nil || !level.Enabled(l.engine.Level()) {
		return
	}
	l.engine.Dispatch(Record{
		Time:    time.Now(),
		Level:   level,
		Tag:     l.tag,
		Message: message,
	})
}

// Logf dispatches a printf-style formatted message at the given level.
func (l Logger) Logf(level Level, format string, args ...any) {
	if l.engine == nil || !level.Enabled(l.engine.Level()) {
		return
	}
	l.Log(level, fmt.Sprintf(format, args...))
}

// Error logs a message at error level.
func (l Logger) Error(message string) { l.Log(LevelError, message) }

// Errorf logs a formatted message at error level.
func (l Logger) Errorf(format string, args ...any) { l.Logf(LevelError, format, args...) }

// Warning logs a message at warning level.
func (l Logger) Warning(message string) { l.Log(LevelWarning, message) }

// Warningf logs a formatted message at warning level.
func (l Logger) Warningf(format string, args ...any) { l.Logf(LevelWarning, format, args...) }

// Info logs a message at info level.
func (l Logger) Info(message string) { l.Log(LevelInfo, message) }

// Infof logs a formatted message at info level.
func (l Logger) Infof(format string, args ...any) { l.Logf(LevelInfo, format, args...) }

// Debug logs a message at debug level.
func (l Logger) Debug(message string) { l.Log(LevelDebug, message) }

// Debugf logs a formatted message at debug level.
func (l Logger) Debugf(format string, args ...any) { l.Logf(LevelDebug, format, args...) }

// Verbose logs a message at verbose level.
func (l Logger) Verbose(message string) { l.Log(LevelVerbose, message) }

// Verbosef logs a formatted message at verbose level.
func (l Logger) Verbosef(format string, args ...any) { l.Logf(LevelVerbose, format, args...) }
