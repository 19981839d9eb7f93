// FILE: builder.go
package loggable

import (
	"time"
)

// Builder provides a fluent API for constructing a dispatch engine.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg     *Config
	backend Backend
	sinks   []Sink
	err     error // Accumulate errors for deferred handling
}

// NewBuilder creates a new engine builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Engine instance with the specified configuration,
// registering any sinks added to the builder.
func (b *Builder) Build() (*Engine, error) {
	if b.err != nil {
		return nil, b.err
	}

	engine, err := NewEngine(b.backend, b.cfg)
	if err != nil {
		return nil, err
	}

	for _, s := range b.sinks {
		engine.AddSink(s)
	}

	return engine, nil
}

// Backend injects the runtime backend. Leaving it nil keeps the engine
// permanently synchronous.
func (b *Builder) Backend(backend Backend) *Builder {
	b.backend = backend
	return b
}

// Level sets the initial severity threshold.
func (b *Builder) Level(level Level) *Builder {
	b.cfg.Level = level
	return b
}

// LevelString sets the initial severity threshold from a string.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := ParseLevel(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = levelVal
	return b
}

// QueueCapacity sets the bounded queue capacity.
func (b *Builder) QueueCapacity(capacity int) *Builder {
	b.cfg.QueueCapacity = capacity
	return b
}

// PopTimeout sets the worker pop timeout.
func (b *Builder) PopTimeout(d time.Duration) *Builder {
	b.cfg.PopTimeoutMs = d.Milliseconds()
	return b
}

// ShutdownTimeout sets the best-effort drain bound used by Deactivate.
func (b *Builder) ShutdownTimeout(d time.Duration) *Builder {
	b.cfg.ShutdownTimeoutMs = d.Milliseconds()
	return b
}

// TaskName sets the worker task name.
func (b *Builder) TaskName(name string) *Builder {
	b.cfg.TaskName = name
	return b
}

// TaskStackSize sets the worker task stack size hint.
func (b *Builder) TaskStackSize(size int) *Builder {
	b.cfg.TaskStackSize = size
	return b
}

// TaskPriority sets the worker task priority hint.
func (b *Builder) TaskPriority(priority int) *Builder {
	b.cfg.TaskPriority = priority
	return b
}

// TaskCore sets the worker task core affinity hint (-1 = any core).
func (b *Builder) TaskCore(core int) *Builder {
	b.cfg.TaskCore = core
	return b
}

// HeartbeatInterval enables periodic self-reporting; zero disables it.
func (b *Builder) HeartbeatInterval(d time.Duration) *Builder {
	b.cfg.HeartbeatIntervalMs = d.Milliseconds()
	return b
}

// Sink registers a sink on the built engine, in call order.
func (b *Builder) Sink(s Sink) *Builder {
	if s != nil {
		b.sinks = append(b.sinks, s)
	}
	return b
}

// Example usage:
//
//	engine, err := loggable.NewBuilder().
//		Backend(loggable.NewGoBackend()).
//		LevelString("debug").
//		QueueCapacity(256).
//		Sink(sinks.NewConsole(os.Stdout)).
//		Build()
//
//	if err == nil {
//		engine.Activate()
//		defer engine.Deactivate()
//	}
