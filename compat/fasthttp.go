// FILE: compat/fasthttp.go

// Package compat bridges external logging facilities into the dispatch
// pipeline: printf-style logger interfaces (fasthttp, gnet) and raw
// native-log output captured through an io.Writer.
package compat

import (
	"fmt"
	"strings"

	"github.com/loggable-io/loggable"
)

// FastHTTPAdapter implements fasthttp's Logger interface on top of a
// dispatch engine.
type FastHTTPAdapter struct {
	logger        loggable.Logger
	defaultLevel  loggable.Level
	levelDetector func(string) loggable.Level
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the level used when detection finds nothing.
func WithDefaultLevel(level loggable.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect the level from message
// content. Returning LevelNone falls back to the default level.
func WithLevelDetector(detector func(string) loggable.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// NewFastHTTPAdapter creates a fasthttp-compatible logger adapter tagging
// records with "fasthttp".
func NewFastHTTPAdapter(engine *loggable.Engine, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:        loggable.NewLogger(engine, "fasthttp"),
		defaultLevel:  loggable.LevelInfo,
		levelDetector: DetectLevel,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// Printf implements fasthttp's Logger interface.
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected := a.levelDetector(msg); detected != loggable.LevelNone {
			level = detected
		}
	}

	a.logger.Log(level, msg)
}

// DetectLevel guesses a severity from message content, returning LevelNone
// when nothing matches.
func DetectLevel(msg string) loggable.Level {
	msgLower := strings.ToLower(msg)

	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return loggable.LevelError
	}

	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "deprecated") {
		return loggable.LevelWarning
	}

	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return loggable.LevelDebug
	}

	return loggable.LevelNone
}
