// FILE: cmd/stress/main.go

// Stress drives the dispatch engine with many concurrent producers against a
// deliberately small queue and reports how much data the drop-oldest policy
// shed.
package main

import (
	"flag"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/loggable-io/loggable"
	"github.com/loggable-io/loggable/sinks"
)

func main() {
	producers := flag.Int("producers", 8, "number of producer goroutines")
	records := flag.Int("records", 10000, "records per producer")
	capacity := flag.Int("capacity", 64, "queue capacity")
	rateLimit := flag.Int("rate", 0, "sink rate limit per second (0 = unlimited)")
	flag.Parse()

	var sink loggable.Sink = sinks.NewConsole(io.Discard)
	var limited *sinks.RateLimited
	if *rateLimit > 0 {
		limited = sinks.NewRateLimited(sink, *rateLimit)
		sink = limited
	}

	engine, err := loggable.NewBuilder().
		Backend(loggable.NewGoBackend()).
		Level(loggable.LevelVerbose).
		QueueCapacity(*capacity).
		Sink(sink).
		Build()
	if err != nil {
		panic(err)
	}

	engine.Activate()

	start := time.Now()

	var wg sync.WaitGroup
	for p := 0; p < *producers; p++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger := loggable.NewLogger(engine, fmt.Sprintf("producer-%d", id))
			for i := 0; i < *records; i++ {
				logger.Infof("record %d", i)
			}
		}(p)
	}
	wg.Wait()

	drained := engine.Flush(5 * time.Second)
	m := engine.GetMetrics() // snapshot before teardown releases the queue
	engine.Deactivate()
	elapsed := time.Since(start)

	total := *producers * *records
	fmt.Printf("submitted:  %d records in %v (%.0f/s)\n", total, elapsed, float64(total)/elapsed.Seconds())
	fmt.Printf("dropped:    %d (queue, drop-oldest)\n", m.DroppedCount)
	if limited != nil {
		fmt.Printf("rate-shed:  %d (sink rate limiter)\n", limited.Dropped())
	}
	fmt.Printf("drained:    %v\n", drained)
}
