// FILE: compat/gnet.go
package compat

import (
	"fmt"
	"os"
	"time"

	"github.com/loggable-io/loggable"
)

// GnetAdapter implements gnet's logging.Logger interface on top of a
// dispatch engine.
type GnetAdapter struct {
	engine       *loggable.Engine
	logger       loggable.Logger
	fatalHandler func(msg string) // Customizable fatal behavior
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler.
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// NewGnetAdapter creates a gnet-compatible logger adapter tagging records
// with "gnet".
func NewGnetAdapter(engine *loggable.Engine, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		engine: engine,
		logger: loggable.NewLogger(engine, "gnet"),
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// Debugf logs at debug level with printf-style formatting.
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.logger.Debugf(format, args...)
}

// Infof logs at info level with printf-style formatting.
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.logger.Infof(format, args...)
}

// Warnf logs at warning level with printf-style formatting.
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.logger.Warningf(format, args...)
}

// Errorf logs at error level with printf-style formatting.
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.logger.Errorf(format, args...)
}

// Fatalf logs at error level, drains the queue best-effort, and triggers
// the fatal handler.
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.logger.Error(msg)

	// Ensure the record is delivered before exit
	_ = a.engine.Flush(100 * time.Millisecond)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
