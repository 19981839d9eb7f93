// FILE: sinks/ratelimit.go
package sinks

import (
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/loggable-io/loggable"
)

// RateLimited wraps another sink and sheds records beyond a sustained
// per-second rate. Shed records are counted, not queued; the counter is the
// only signal of loss, mirroring the queue's drop accounting.
type RateLimited struct {
	inner   loggable.Sink
	limiter *rate.Limiter
	dropped atomic.Uint64
}

// NewRateLimited wraps inner with a perSecond sustained rate and a burst of
// the same size. A non-positive rate disables limiting.
func NewRateLimited(inner loggable.Sink, perSecond int) *RateLimited {
	s := &RateLimited{inner: inner}
	if perSecond > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(perSecond), perSecond)
	}
	return s
}

// Consume implements loggable.Sink.
func (s *RateLimited) Consume(rec loggable.Record) {
	if s.limiter != nil && !s.limiter.Allow() {
		s.dropped.Add(1)
		return
	}
	s.inner.Consume(rec)
}

// Dropped returns the cumulative number of rate-shed records.
func (s *RateLimited) Dropped() uint64 {
	return s.dropped.Load()
}
