// FILE: engine.go
package loggable

import (
	"sync"
	"sync/atomic"
	"time"
)

// Engine is the central coordinator of the pipeline: it filters records by
// severity, fans them out to registered sinks, and optionally decouples
// producers from sink latency through a bounded drop-oldest queue drained by
// one dedicated worker task.
//
// An engine begins in synchronous mode. Activate switches it to asynchronous
// dispatch when a runtime backend was injected at construction; without a
// backend every lifecycle call is a no-op and dispatch stays synchronous
// (fail-open degradation). Callers conventionally share one engine per
// process, but nothing enforces that.
type Engine struct {
	level atomic.Int32

	// Registry lock, independent of the queue's lock so a slow sink cannot
	// block producers that are merely enqueueing.
	sinkMu sync.Mutex
	sinks  []Sink

	backend Backend
	cfg     *Config

	lifecycleMu sync.Mutex
	task        TaskHandle

	// Exit flag of the current activation's worker. A fresh flag per
	// activation so a straggling worker from a previous generation cannot
	// mark the new one exited.
	workerDone *atomic.Bool

	state State
}

// Metrics is a read-only snapshot of the engine's backpressure counters.
type Metrics struct {
	DroppedCount uint64
	QueuedCount  int
	Capacity     int
	IsRunning    bool
}

// NewEngine creates an engine in synchronous mode. backend may be nil, in
// which case the engine never leaves synchronous mode. A nil cfg means
// defaults.
func NewEngine(backend Backend, cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	} else {
		cfg = cfg.Clone()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		backend: backend,
		cfg:     cfg,
	}
	e.level.Store(int32(cfg.Level))
	e.state.StartTime = time.Now()
	return e, nil
}

// SetLevel atomically replaces the global severity threshold. Takes effect
// on the next dispatch call; already-queued records are unaffected.
func (e *Engine) SetLevel(level Level) {
	e.level.Store(int32(level))
}

// Level returns the current global severity threshold.
func (e *Engine) Level() Level {
	return Level(e.level.Load())
}

// AddSink registers a sink at the end of the delivery order. Nil or
// already-present sinks are ignored.
func (e *Engine) AddSink(s Sink) {
	if s == nil {
		return
	}
	e.sinkMu.Lock()
	defer e.sinkMu.Unlock()
	for _, existing := range e.sinks {
		if existing == s {
			return
		}
	}
	e.sinks = append(e.sinks, s)
}

// RemoveSink unregisters a sink. Once RemoveSink returns, no record
// dispatched afterwards reaches the sink; records already in flight may
// still be delivered. Absent sinks are ignored.
func (e *Engine) RemoveSink(s Sink) {
	if s == nil {
		return
	}
	e.sinkMu.Lock()
	defer e.sinkMu.Unlock()
	for i, existing := range e.sinks {
		if existing == s {
			e.sinks = append(e.sinks[:i], e.sinks[i+1:]...)
			return
		}
	}
}

// Dispatch forwards a record to all registered sinks, either through the
// queue (async mode, subject to drop-oldest shedding) or directly on the
// calling goroutine (sync mode). Records whose level does not pass the
// current threshold are discarded here so the two modes cannot diverge in
// what gets delivered. Dispatch never fails and never blocks beyond bounded
// critical sections in async mode.
func (e *Engine) Dispatch(rec Record) {
	if !rec.Level.Enabled(e.Level()) {
		return
	}

	if e.state.Running.Load() {
		if q := e.state.Queue.Load(); q != nil {
			q.Push(rec)
			return
		}
	}

	e.fanOut(rec)
}

// fanOut delivers one record to every sink in registration order, holding
// the registry lock for the whole iteration.
func (e *Engine) fanOut(rec Record) {
	e.sinkMu.Lock()
	defer e.sinkMu.Unlock()
	for _, s := range e.sinks {
		s.Consume(rec)
	}
	e.state.Processed.Add(1)
}

// Activate switches the engine to asynchronous dispatch: it allocates the
// queue and spawns the worker task using the configured stack size, priority
// and core affinity. No-op when already running or when no backend was
// injected. If the task spawn fails, the queue is released and the engine
// rolls back to synchronous mode.
func (e *Engine) Activate() {
	if e.backend == nil {
		return
	}

	e.lifecycleMu.Lock()
	defer e.lifecycleMu.Unlock()

	if !e.state.Running.CompareAndSwap(false, true) {
		return
	}
	e.state.ShutdownRequested.Store(false)

	// Each activation gets its own generation; background loops spawned
	// here capture it and exit as soon as it goes stale, so a rapid
	// deactivate/reactivate cycle cannot leave a previous generation's
	// loop running alongside the new one.
	gen := e.state.Generation.Add(1)

	q := NewRingBuffer(e.cfg.QueueCapacity, e.backend)
	e.state.Queue.Store(q)

	done := &atomic.Bool{}
	e.workerDone = done
	task := e.backend.SpawnTask(TaskConfig{
		Name:      e.cfg.TaskName,
		StackSize: e.cfg.TaskStackSize,
		Priority:  e.cfg.TaskPriority,
		Core:      e.cfg.TaskCore,
	}, func() { e.processQueue(q, gen, done) })

	if !task.Valid() {
		// Roll back: remain fully synchronous.
		e.state.Queue.Store(nil)
		q.Close()
		e.workerDone = nil
		e.state.Running.Store(false)
		return
	}

	e.task = task
	e.startHeartbeat(gen)
}

// Deactivate drains the queue best-effort within the configured shutdown
// timeout, stops the worker, and returns the engine to synchronous mode.
// Records still queued past the timeout are dropped. No-op when not running
// or when no backend was injected.
func (e *Engine) Deactivate() {
	if e.backend == nil {
		return
	}

	e.lifecycleMu.Lock()
	defer e.lifecycleMu.Unlock()

	if !e.state.Running.Load() {
		return
	}

	e.state.ShutdownRequested.Store(true)

	q := e.state.Queue.Load()
	if q == nil {
		e.state.Running.Store(false)
		return
	}

	// Wake a blocked worker promptly so it can observe the stop request.
	q.Signal()

	e.Flush(time.Duration(e.cfg.ShutdownTimeoutMs) * time.Millisecond)

	e.state.Running.Store(false)

	// Covers the race where the worker re-entered a wait after the first
	// signal.
	q.Signal()

	// Give the worker a moment to leave its loop and run the final drain.
	done := e.workerDone
	deadline := e.backend.Now().Add(stopGrace)
	for e.backend.Now().Before(deadline) {
		if done == nil || done.Load() {
			break
		}
		e.backend.Sleep(minWaitTime)
	}

	e.state.Queue.Store(nil)
	// A worker still mid-drain past the grace period keeps its own reference
	// to the queue; releasing the semaphore under it would be unsafe, so the
	// queue is abandoned to collection instead.
	if done == nil || done.Load() {
		q.Close()
	}
	e.backend.DeleteTask(e.task)
	e.task = TaskHandle{}
	e.workerDone = nil
}

// Flush polls queue emptiness until the queue drains (true) or the timeout
// elapses (false). In synchronous mode there is nothing to drain and Flush
// returns true immediately.
func (e *Engine) Flush(timeout time.Duration) bool {
	q := e.state.Queue.Load()
	if q == nil {
		return true
	}

	deadline := e.backend.Now().Add(timeout)
	for {
		if q.Empty() {
			return true
		}
		if !e.backend.Now().Before(deadline) {
			return false
		}
		e.backend.Sleep(minWaitTime)
	}
}

// IsRunning reports whether asynchronous dispatch is active.
func (e *Engine) IsRunning() bool {
	return e.state.Running.Load()
}

// GetMetrics returns a snapshot of the backpressure counters. Without a
// queue all fields are zero/false except Capacity, which reflects the
// configured value.
func (e *Engine) GetMetrics() Metrics {
	m := Metrics{
		Capacity:  e.cfg.QueueCapacity,
		IsRunning: e.state.Running.Load(),
	}
	if q := e.state.Queue.Load(); q != nil {
		m.DroppedCount = q.Dropped()
		m.QueuedCount = q.Size()
	}
	return m
}
