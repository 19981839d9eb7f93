// FILE: engine_test.go
package loggable

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memorySink collects consumed records for inspection
type memorySink struct {
	mu   sync.Mutex
	recs []Record
}

func (s *memorySink) Consume(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs = append(s.recs, rec)
}

func (s *memorySink) records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.recs))
	copy(out, s.recs)
	return out
}

func (s *memorySink) messages() []string {
	recs := s.records()
	out := make([]string, len(recs))
	for i, rec := range recs {
		out[i] = rec.Message
	}
	return out
}

// slowSink delays each consume to keep the queue occupied
type slowSink struct {
	memorySink
	delay time.Duration
}

func (s *slowSink) Consume(rec Record) {
	time.Sleep(s.delay)
	s.memorySink.Consume(rec)
}

// failSpawnBackend simulates a platform that cannot start tasks
type failSpawnBackend struct {
	*GoBackend
}

func (b *failSpawnBackend) SpawnTask(cfg TaskConfig, fn func()) TaskHandle {
	return TaskHandle{}
}

// createTestEngine builds an engine on the Go backend with fast test timers
func createTestEngine(t *testing.T) (*Engine, *memorySink) {
	t.Helper()

	cfg := DefaultConfig()
	cfg.Level = LevelVerbose
	cfg.QueueCapacity = 64
	cfg.PopTimeoutMs = 10
	cfg.ShutdownTimeoutMs = 2000

	engine, err := NewEngine(NewGoBackend(), cfg)
	require.NoError(t, err)

	sink := &memorySink{}
	engine.AddSink(sink)
	return engine, sink
}

// TestNewEngine verifies construction defaults and validation
func TestNewEngine(t *testing.T) {
	engine, err := NewEngine(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, LevelInfo, engine.Level())
	assert.False(t, engine.IsRunning())

	bad := DefaultConfig()
	bad.QueueCapacity = 0
	_, err = NewEngine(nil, bad)
	assert.Error(t, err)
}

// TestNewEngineClonesConfig verifies later caller mutation has no effect
func TestNewEngineClonesConfig(t *testing.T) {
	cfg := DefaultConfig()
	engine, err := NewEngine(nil, cfg)
	require.NoError(t, err)

	cfg.QueueCapacity = 1
	assert.Equal(t, defaultQueueCapacity, engine.GetMetrics().Capacity)
}

// TestDispatchSyncFanOut verifies delivery to all sinks in insertion order
func TestDispatchSyncFanOut(t *testing.T) {
	engine, err := NewEngine(nil, nil)
	require.NoError(t, err)

	var order []string
	var mu sync.Mutex
	first := &namedSink{name: "first", order: &order, mu: &mu}
	second := &namedSink{name: "second", order: &order, mu: &mu}
	engine.AddSink(first)
	engine.AddSink(second)

	rec := NewRecord(LevelInfo, "app", "hello")
	engine.Dispatch(rec)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"first", "second"}, order)
}

type namedSink struct {
	name  string
	order *[]string
	mu    *sync.Mutex
}

func (s *namedSink) Consume(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	*s.order = append(*s.order, s.name)
}

// TestDispatchLevelFilter verifies central severity filtering
func TestDispatchLevelFilter(t *testing.T) {
	engine, err := NewEngine(nil, nil)
	require.NoError(t, err)
	sink := &memorySink{}
	engine.AddSink(sink)

	engine.SetLevel(LevelWarning)

	engine.Dispatch(NewRecord(LevelInfo, "app", "suppressed"))
	engine.Dispatch(NewRecord(LevelDebug, "app", "suppressed"))
	assert.Empty(t, sink.records())

	engine.Dispatch(NewRecord(LevelError, "app", "delivered"))
	engine.Dispatch(NewRecord(LevelWarning, "app", "delivered"))
	assert.Len(t, sink.records(), 2)
}

// TestSetLevel verifies the threshold is atomic and immediate
func TestSetLevel(t *testing.T) {
	engine, err := NewEngine(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, LevelInfo, engine.Level())
	engine.SetLevel(LevelVerbose)
	assert.Equal(t, LevelVerbose, engine.Level())
	engine.SetLevel(LevelNone)
	assert.Equal(t, LevelNone, engine.Level())
}

// TestAddSinkNilAndDuplicate verifies both are no-ops
func TestAddSinkNilAndDuplicate(t *testing.T) {
	engine, err := NewEngine(nil, nil)
	require.NoError(t, err)

	sink := &memorySink{}
	engine.AddSink(nil)
	engine.AddSink(sink)
	engine.AddSink(sink)

	engine.Dispatch(NewRecord(LevelInfo, "app", "once"))
	assert.Len(t, sink.records(), 1, "duplicate registration must not double-deliver")
}

// TestRemoveSink verifies removal stops delivery and absent removal is a no-op
func TestRemoveSink(t *testing.T) {
	engine, err := NewEngine(nil, nil)
	require.NoError(t, err)

	kept := &memorySink{}
	removed := &memorySink{}
	engine.AddSink(kept)
	engine.AddSink(removed)

	engine.Dispatch(NewRecord(LevelInfo, "app", "both"))
	engine.RemoveSink(removed)
	engine.Dispatch(NewRecord(LevelInfo, "app", "kept only"))

	assert.Len(t, kept.records(), 2)
	assert.Len(t, removed.records(), 1)

	// Absent and nil removals are safe
	engine.RemoveSink(removed)
	engine.RemoveSink(nil)
}

// TestActivateWithoutBackend verifies fail-open synchronous degradation
func TestActivateWithoutBackend(t *testing.T) {
	engine, err := NewEngine(nil, nil)
	require.NoError(t, err)
	sink := &memorySink{}
	engine.AddSink(sink)

	engine.Activate()
	assert.False(t, engine.IsRunning())

	engine.Dispatch(NewRecord(LevelInfo, "app", "still delivered"))
	assert.Equal(t, []string{"still delivered"}, sink.messages())

	engine.Deactivate() // also a no-op
	assert.False(t, engine.IsRunning())
}

// TestMetricsWithoutQueue verifies the sync-mode snapshot shape
func TestMetricsWithoutQueue(t *testing.T) {
	cfg := DefaultConfig()
	cfg.QueueCapacity = 17

	engine, err := NewEngine(nil, cfg)
	require.NoError(t, err)

	m := engine.GetMetrics()
	assert.Equal(t, uint64(0), m.DroppedCount)
	assert.Equal(t, 0, m.QueuedCount)
	assert.Equal(t, 17, m.Capacity)
	assert.False(t, m.IsRunning)
}

// TestFlushSyncMode verifies Flush returns true immediately without a queue
func TestFlushSyncMode(t *testing.T) {
	engine, err := NewEngine(nil, nil)
	require.NoError(t, err)

	start := time.Now()
	assert.True(t, engine.Flush(5*time.Second))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}
