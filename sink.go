// FILE: sink.go
package loggable

// Sink consumes dispatched log records. Implementations must not block
// indefinitely: in synchronous mode a sink runs on the producer's goroutine,
// in asynchronous mode it runs on the single dispatch worker and stalls the
// whole drain while it executes.
//
// The engine compares sinks by interface identity for AddSink/RemoveSink, so
// implementations should be pointer types.
type Sink interface {
	Consume(rec Record)
}
