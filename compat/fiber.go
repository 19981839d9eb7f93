// FILE: compat/fiber.go
package compat

import (
	"fmt"
	"os"
	"time"

	"github.com/loggable-io/loggable"
)

// FiberAdapter implements Fiber's CommonLogger and AllLogger method sets on
// top of a dispatch engine, tagging records with "fiber". Fiber's Trace maps
// to the verbose level.
type FiberAdapter struct {
	engine       *loggable.Engine
	logger       loggable.Logger
	fatalHandler func(msg string) // Customizable fatal behavior
	panicHandler func(msg string) // Customizable panic behavior
}

// FiberOption allows customizing adapter behavior
type FiberOption func(*FiberAdapter)

// WithFiberFatalHandler sets a custom fatal handler.
func WithFiberFatalHandler(handler func(string)) FiberOption {
	return func(a *FiberAdapter) {
		a.fatalHandler = handler
	}
}

// WithFiberPanicHandler sets a custom panic handler.
func WithFiberPanicHandler(handler func(string)) FiberOption {
	return func(a *FiberAdapter) {
		a.panicHandler = handler
	}
}

// NewFiberAdapter creates a fiber-compatible logger adapter.
func NewFiberAdapter(engine *loggable.Engine, opts ...FiberOption) *FiberAdapter {
	adapter := &FiberAdapter{
		engine: engine,
		logger: loggable.NewLogger(engine, "fiber"),
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior
		},
		panicHandler: func(msg string) {
			panic(msg) // Default behavior
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// Trace logs at verbose level.
func (a *FiberAdapter) Trace(v ...any) {
	a.logger.Verbose(fmt.Sprint(v...))
}

// Debug logs at debug level.
func (a *FiberAdapter) Debug(v ...any) {
	a.logger.Debug(fmt.Sprint(v...))
}

// Info logs at info level.
func (a *FiberAdapter) Info(v ...any) {
	a.logger.Info(fmt.Sprint(v...))
}

// Warn logs at warning level.
func (a *FiberAdapter) Warn(v ...any) {
	a.logger.Warning(fmt.Sprint(v...))
}

// Error logs at error level.
func (a *FiberAdapter) Error(v ...any) {
	a.logger.Error(fmt.Sprint(v...))
}

// Fatal logs at error level, drains best-effort, and triggers the fatal
// handler.
func (a *FiberAdapter) Fatal(v ...any) {
	msg := fmt.Sprint(v...)
	a.logger.Error(msg)

	// Ensure the record is delivered before exit
	_ = a.engine.Flush(100 * time.Millisecond)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}

// Panic logs at error level, drains best-effort, and triggers the panic
// handler.
func (a *FiberAdapter) Panic(v ...any) {
	msg := fmt.Sprint(v...)
	a.logger.Error(msg)

	_ = a.engine.Flush(100 * time.Millisecond)

	if a.panicHandler != nil {
		a.panicHandler(msg)
	}
}

// Tracef logs at verbose level with printf-style formatting.
func (a *FiberAdapter) Tracef(format string, v ...any) {
	a.logger.Verbosef(format, v...)
}

// Debugf logs at debug level with printf-style formatting.
func (a *FiberAdapter) Debugf(format string, v ...any) {
	a.logger.Debugf(format, v...)
}

// Infof logs at info level with printf-style formatting.
func (a *FiberAdapter) Infof(format string, v ...any) {
	a.logger.Infof(format, v...)
}

// Warnf logs at warning level with printf-style formatting.
func (a *FiberAdapter) Warnf(format string, v ...any) {
	a.logger.Warningf(format, v...)
}

// Errorf logs at error level with printf-style formatting.
func (a *FiberAdapter) Errorf(format string, v ...any) {
	a.logger.Errorf(format, v...)
}

// Fatalf logs at error level and triggers the fatal handler.
func (a *FiberAdapter) Fatalf(format string, v ...any) {
	a.Fatal(fmt.Sprintf(format, v...))
}

// Panicf logs at error level and triggers the panic handler.
func (a *FiberAdapter) Panicf(format string, v ...any) {
	a.Panic(fmt.Sprintf(format, v...))
}

// Write makes FiberAdapter implement io.Writer for output redirection.
// Trailing newlines are trimmed; each write becomes one info record.
func (a *FiberAdapter) Write(p []byte) (n int, err error) {
	msg := string(p)
	if len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	a.logger.Info(msg)
	return len(p), nil
}
