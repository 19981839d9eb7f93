// FILE: state.go
package loggable

import (
	"sync/atomic"
	"time"
)

// State encapsulates the runtime state of the dispatch engine.
//
// The queue pointer is non-nil if and only if Running is true, modulo the
// short teardown window inside Deactivate; Dispatch loads the pointer
// atomically so that window is race-free for producers.
type State struct {
	Running           atomic.Bool
	ShutdownRequested atomic.Bool

	// Activation counter. Background loops capture the value current at
	// their spawn and treat any change as a stop signal.
	Generation atomic.Uint64

	Queue atomic.Pointer[RingBuffer]

	// Cumulative delivery counter and heartbeat bookkeeping
	Processed         atomic.Uint64
	HeartbeatSequence atomic.Uint64
	StartTime         time.Time
}
