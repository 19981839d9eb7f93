// FILE: processor.go
package loggable

import (
	"sync/atomic"
	"time"
)

// processQueue is the dispatch worker loop, running on the task spawned by
// Activate. It pops with a short bounded timeout so a quiet queue still
// yields periodic chances to observe a shutdown request; a pop timing out
// loses no data. gen is the activation generation that spawned this worker;
// a generation change means a newer activation owns the engine and this
// worker must wind down regardless of the running flag.
func (e *Engine) processQueue(q *RingBuffer, gen uint64, done *atomic.Bool) {
	defer done.Store(true)

	popTimeout := time.Duration(e.cfg.PopTimeoutMs) * time.Millisecond

	for {
		rec, ok := q.Pop(popTimeout)
		if ok {
			e.fanOut(rec)
		}

		if e.state.ShutdownRequested.Load() && q.Empty() {
			break
		}
		if !e.state.Running.Load() || e.state.Generation.Load() != gen {
			break
		}
	}

	// Final non-blocking drain for entries pushed between the last pop and
	// the stop flag flipping.
	for {
		rec, ok := q.Pop(0)
		if !ok {
			break
		}
		e.fanOut(rec)
	}

	e.backend.DeleteTask(TaskHandle{})
}
