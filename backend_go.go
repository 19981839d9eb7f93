// FILE: backend_go.go
package loggable

import (
	"time"
)

// GoBackend implements Backend on the Go runtime: binary semaphores are
// capacity-1 channels and tasks are goroutines. Stack size, priority, and
// core affinity from TaskConfig are accepted and ignored since the runtime
// manages those itself.
type GoBackend struct{}

// NewGoBackend returns a ready-to-use Go runtime backend.
func NewGoBackend() *GoBackend {
	return &GoBackend{}
}

func (b *GoBackend) CreateSemaphore() SemaphoreHandle {
	return SemaphoreHandle{h: make(chan struct{}, 1)}
}

func (b *GoBackend) DestroySemaphore(sem SemaphoreHandle) {
	// Channels are garbage collected; nothing to release.
}

func (b *GoBackend) SignalSemaphore(sem SemaphoreHandle) {
	ch, ok := sem.h.(chan struct{})
	if !ok {
		return
	}
	select {
	case ch <- struct{}{}:
	default:
		// Already signaled, binary semaphore saturates at one.
	}
}

func (b *GoBackend) WaitSemaphore(sem SemaphoreHandle, timeout time.Duration) bool {
	ch, ok := sem.h.(chan struct{})
	if !ok {
		return false
	}

	if timeout == WaitForever {
		<-ch
		return true
	}

	if timeout == 0 {
		select {
		case <-ch:
			return true
		default:
			return false
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-ch:
		return true
	case <-timer.C:
		return false
	}
}

func (b *GoBackend) SpawnTask(cfg TaskConfig, fn func()) TaskHandle {
	if fn == nil {
		return TaskHandle{}
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	return TaskHandle{h: done}
}

func (b *GoBackend) DeleteTask(task TaskHandle) {
	// Goroutines exit when their function returns; the handle carries no
	// resources to reclaim. Self-deletion (invalid handle) is likewise a
	// return in Go.
}

func (b *GoBackend) Sleep(d time.Duration) {
	time.Sleep(d)
}

func (b *GoBackend) Now() time.Time {
	return time.Now()
}
