// FILE: ring.go
package loggable

import (
	"sync"
	"sync/atomic"
	"time"
)

// RingBuffer is a fixed-capacity, thread-safe queue of records with a
// drop-oldest overflow policy. Push never blocks and never fails: when the
// buffer is full the oldest entry is evicted to make room. With a backend,
// Pop blocks on a binary semaphore until data arrives or the timeout
// expires; without one, Pop returns immediately when empty.
//
// The semaphore models "at least one item available", not an exact item
// count: Pop re-arms it whenever entries remain, and the lock-guarded
// emptiness check absorbs any surplus wakeups.
type RingBuffer struct {
	mu    sync.Mutex
	buf   []Record
	head  int
	tail  int
	count int

	// Monotonic drop counter, readable without the main lock. Reporting
	// races are acceptable; it is a monitoring counter, not control state.
	dropped atomic.Uint64

	backend Backend
	sem     SemaphoreHandle
}

// NewRingBuffer creates a ring buffer with the given fixed capacity. The
// backend is optional; without one, consumption is non-blocking. A
// non-positive capacity falls back to the default.
func NewRingBuffer(capacity int, backend Backend) *RingBuffer {
	if capacity <= 0 {
		capacity = defaultQueueCapacity
	}
	r := &RingBuffer{
		buf:     make([]Record, capacity),
		backend: backend,
	}
	if backend != nil {
		r.sem = backend.CreateSemaphore()
	}
	return r
}

// Push inserts rec, evicting the oldest entry if the buffer is full. Returns
// true if space was available, false if the oldest entry was dropped.
func (r *RingBuffer) Push(rec Record) bool {
	r.mu.Lock()

	dropped := false
	if r.count == len(r.buf) {
		// Full - drop oldest by advancing tail
		r.tail = (r.tail + 1) % len(r.buf)
		r.count--
		r.dropped.Add(1)
		dropped = true
	}

	r.buf[r.head] = rec
	r.head = (r.head + 1) % len(r.buf)
	r.count++

	sem := r.sem
	r.mu.Unlock()

	if r.backend != nil && sem.Valid() {
		r.backend.SignalSemaphore(sem)
	}

	return !dropped
}

// Pop removes and returns the oldest entry. With a backend it first waits on
// the semaphore up to timeout (WaitForever blocks indefinitely, zero is a
// non-blocking try); on timeout it returns without touching the buffer.
func (r *RingBuffer) Pop(timeout time.Duration) (Record, bool) {
	if r.backend != nil && r.sem.Valid() {
		if !r.backend.WaitSemaphore(r.sem, timeout) {
			return Record{}, false
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.count == 0 {
		return Record{}, false
	}

	rec := r.buf[r.tail]
	r.buf[r.tail] = Record{}
	r.tail = (r.tail + 1) % len(r.buf)
	r.count--

	// Re-arm the semaphore so a consumer loop makes sequential progress
	// without missing entries.
	if r.count > 0 && r.backend != nil && r.sem.Valid() {
		r.backend.SignalSemaphore(r.sem)
	}

	return rec, true
}

// Empty reports whether the buffer holds no entries.
func (r *RingBuffer) Empty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count == 0
}

// Size returns the current number of entries.
func (r *RingBuffer) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Capacity returns the fixed capacity.
func (r *RingBuffer) Capacity() int {
	return len(r.buf)
}

// Dropped returns the cumulative number of evicted entries.
func (r *RingBuffer) Dropped() uint64 {
	return r.dropped.Load()
}

// Signal unconditionally wakes one blocked consumer. Used to unblock a Pop
// during shutdown even when the buffer is empty.
func (r *RingBuffer) Signal() {
	r.mu.Lock()
	sem := r.sem
	r.mu.Unlock()

	if r.backend != nil && sem.Valid() {
		r.backend.SignalSemaphore(sem)
	}
}

// Close releases the signaling primitive. Subsequent pushes fall through to
// plain inserts; the sole consumer must have stopped before Close.
func (r *RingBuffer) Close() {
	r.mu.Lock()
	sem := r.sem
	r.sem = SemaphoreHandle{}
	r.mu.Unlock()

	if r.backend != nil && sem.Valid() {
		r.backend.DestroySemaphore(sem)
	}
}
