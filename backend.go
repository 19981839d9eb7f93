// FILE: backend.go
package loggable

import (
	"time"
)

// WaitForever is the timeout sentinel meaning "block indefinitely". All other
// timeouts are plain non-negative durations; zero means a non-blocking try.
const WaitForever time.Duration = -1

// SemaphoreHandle is an opaque handle to a backend-owned binary semaphore.
// The zero value is invalid.
type SemaphoreHandle struct {
	h any
}

// Valid reports whether the handle refers to a live semaphore.
func (s SemaphoreHandle) Valid() bool { return s.h != nil }

// TaskHandle is an opaque handle to a backend-owned task. The zero value is
// invalid; backends interpret deleting the invalid handle as "delete the
// calling task".
type TaskHandle struct {
	h any
}

// Valid reports whether the handle refers to a spawned task.
func (t TaskHandle) Valid() bool { return t.h != nil }

// TaskConfig carries caller-supplied settings for the dispatch worker task.
// Backends that have no notion of stack size, priority, or core pinning are
// free to ignore those fields.
type TaskConfig struct {
	Name      string
	StackSize int
	Priority  int
	Core      int // -1 = any core
}

// Backend supplies the scheduling and signaling primitives the asynchronous
// engine depends on. It is injected at engine construction; a nil backend is
// a legitimate, supported state in which the engine stays synchronous.
//
// Implementations must be safe for concurrent use from multiple goroutines.
type Backend interface {
	// CreateSemaphore creates a binary semaphore, returning an invalid
	// handle on failure.
	CreateSemaphore() SemaphoreHandle

	// DestroySemaphore releases a semaphore. Invalid handles are ignored.
	DestroySemaphore(sem SemaphoreHandle)

	// SignalSemaphore signals a semaphore. A binary semaphore saturates at
	// one pending signal.
	SignalSemaphore(sem SemaphoreHandle)

	// WaitSemaphore waits for a signal up to timeout (WaitForever blocks
	// indefinitely, zero is a non-blocking try). Returns false on timeout.
	WaitSemaphore(sem SemaphoreHandle, timeout time.Duration) bool

	// SpawnTask starts fn on a new task, returning an invalid handle on
	// failure.
	SpawnTask(cfg TaskConfig, fn func()) TaskHandle

	// DeleteTask releases a task handle. The invalid handle refers to the
	// calling task.
	DeleteTask(task TaskHandle)

	// Sleep suspends the calling task for the given duration.
	Sleep(d time.Duration)

	// Now returns the current time; implementations should return values
	// suitable for monotonic deadline arithmetic.
	Now() time.Time
}
