// FILE: benchmark_test.go
package loggable

import (
	"testing"
)

// discardSink consumes and drops records, isolating pipeline overhead
type discardSink struct{}

func (s *discardSink) Consume(rec Record) {}

func newBenchEngine(b *testing.B, backend Backend) *Engine {
	b.Helper()

	cfg := DefaultConfig()
	cfg.Level = LevelVerbose
	cfg.PopTimeoutMs = 10

	engine, err := NewEngine(backend, cfg)
	if err != nil {
		b.Fatal(err)
	}
	engine.AddSink(&discardSink{})
	return engine
}

// BenchmarkRingBufferPush benchmarks the producer-side hot path
func BenchmarkRingBufferPush(b *testing.B) {
	r := NewRingBuffer(1024, nil)
	rec := NewRecord(LevelInfo, "bench", "benchmark message")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Push(rec)
	}
}

// BenchmarkRingBufferPushPop benchmarks the full queue round trip
func BenchmarkRingBufferPushPop(b *testing.B) {
	r := NewRingBuffer(1024, nil)
	rec := NewRecord(LevelInfo, "bench", "benchmark message")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Push(rec)
		r.Pop(0)
	}
}

// BenchmarkDispatchSync benchmarks synchronous fan-out to one sink
func BenchmarkDispatchSync(b *testing.B) {
	engine := newBenchEngine(b, nil)
	rec := NewRecord(LevelInfo, "bench", "benchmark message")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.Dispatch(rec)
	}
}

// BenchmarkDispatchAsync benchmarks the producer side of queued dispatch
func BenchmarkDispatchAsync(b *testing.B) {
	engine := newBenchEngine(b, NewGoBackend())
	engine.Activate()
	defer engine.Deactivate()

	rec := NewRecord(LevelInfo, "bench", "benchmark message")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.Dispatch(rec)
	}
}

// BenchmarkDispatchFiltered benchmarks the cost of a suppressed record
func BenchmarkDispatchFiltered(b *testing.B) {
	engine := newBenchEngine(b, nil)
	engine.SetLevel(LevelError)
	rec := NewRecord(LevelDebug, "bench", "benchmark message")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.Dispatch(rec)
	}
}

// BenchmarkLoggerInfof benchmarks the convenience layer including
// formatting
func BenchmarkLoggerInfof(b *testing.B) {
	engine := newBenchEngine(b, nil)
	logger := NewLogger(engine, "bench")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Infof("benchmark message %d", i)
	}
}

// BenchmarkConcurrentDispatch benchmarks queued dispatch under concurrent
// producers
func BenchmarkConcurrentDispatch(b *testing.B) {
	engine := newBenchEngine(b, NewGoBackend())
	engine.Activate()
	defer engine.Deactivate()

	rec := NewRecord(LevelInfo, "bench", "benchmark message")

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			engine.Dispatch(rec)
		}
	})
}
