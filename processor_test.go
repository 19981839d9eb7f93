// FILE: processor_test.go
package loggable

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waitFor polls cond until it holds or the deadline passes
func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}

// TestAsyncDelivery verifies records flow through the queue to sinks in
// submission order while the engine stays running
func TestAsyncDelivery(t *testing.T) {
	engine, sink := createTestEngine(t)
	engine.Activate()
	defer engine.Deactivate()

	const n = 20
	for i := 0; i < n; i++ {
		engine.Dispatch(NewRecord(LevelInfo, "app", fmt.Sprintf("async-%d", i)))
	}

	require.True(t, waitFor(t, 2*time.Second, func() bool {
		return len(sink.records()) == n
	}), "worker should drain the queue without a flush")

	msgs := sink.messages()
	for i := 0; i < n; i++ {
		assert.Equal(t, fmt.Sprintf("async-%d", i), msgs[i])
	}
}

// TestAsyncOverflowDropsOldest verifies load shedding under a congested
// sink: newest records survive, the dropped counter reflects the evictions
func TestAsyncOverflowDropsOldest(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = LevelVerbose
	cfg.QueueCapacity = 8
	cfg.PopTimeoutMs = 10
	cfg.ShutdownTimeoutMs = 5000

	engine, err := NewEngine(NewGoBackend(), cfg)
	require.NoError(t, err)

	slow := &slowSink{delay: 30 * time.Millisecond}
	engine.AddSink(slow)

	engine.Activate()

	const n = 40
	for i := 0; i < n; i++ {
		engine.Dispatch(NewRecord(LevelInfo, "app", fmt.Sprintf("burst-%d", i)))
	}

	m := engine.GetMetrics()
	assert.Greater(t, m.DroppedCount, uint64(0), "a burst past capacity must shed load")

	engine.Deactivate()

	delivered := slow.messages()
	assert.Less(t, len(delivered), n)
	// The final record is the newest and must never be evicted by
	// drop-oldest, and the shutdown drain delivers it.
	assert.Equal(t, fmt.Sprintf("burst-%d", n-1), delivered[len(delivered)-1])
}

// TestAsyncFilteringKeepsQueueEmpty verifies suppressed records never
// occupy queue slots
func TestAsyncFilteringKeepsQueueEmpty(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = LevelError
	cfg.QueueCapacity = 64
	cfg.PopTimeoutMs = 10
	cfg.ShutdownTimeoutMs = 2000

	engine, err := NewEngine(NewGoBackend(), cfg)
	require.NoError(t, err)
	sink := &memorySink{}
	engine.AddSink(sink)

	engine.Activate()
	defer engine.Deactivate()

	for i := 0; i < 30; i++ {
		engine.Dispatch(NewRecord(LevelDebug, "app", "below threshold"))
	}
	m := engine.GetMetrics()
	assert.Equal(t, 0, m.QueuedCount)
	assert.Equal(t, uint64(0), m.DroppedCount)

	engine.Dispatch(NewRecord(LevelError, "app", "kept"))
	require.True(t, waitFor(t, time.Second, func() bool {
		return len(sink.records()) == 1
	}))
	assert.Equal(t, "kept", sink.records()[0].Message)
}

// TestMetricsWhileRunning verifies the snapshot shape in async mode
func TestMetricsWhileRunning(t *testing.T) {
	engine, _ := createTestEngine(t)
	engine.Activate()
	defer engine.Deactivate()

	m := engine.GetMetrics()
	assert.True(t, m.IsRunning)
	assert.Equal(t, 64, m.Capacity)
	assert.Equal(t, uint64(0), m.DroppedCount)
}
