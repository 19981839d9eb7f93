// FILE: example/raw/main.go
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/loggable-io/loggable"
	"github.com/loggable-io/loggable/sinks"
)

func main() {
	fmt.Println("--- Dispatch Engine Example ---")

	engine, err := loggable.NewBuilder().
		Backend(loggable.NewGoBackend()).
		LevelString("debug").
		QueueCapacity(128).
		Sink(sinks.NewConsole(os.Stdout)).
		Build()
	if err != nil {
		fmt.Printf("Failed to build engine: %v\n", err)
		return
	}

	// Synchronous dispatch: records reach the sink on the calling goroutine.
	logger := loggable.NewLogger(engine, "example")
	logger.Info("synchronous dispatch")

	// Switch to asynchronous dispatch.
	engine.Activate()
	defer engine.Deactivate()

	for i := 0; i < 5; i++ {
		logger.Debugf("asynchronous record #%d", i+1)
	}

	if !engine.Flush(time.Second) {
		fmt.Println("queue did not drain in time")
	}

	m := engine.GetMetrics()
	fmt.Printf("metrics: queued=%d dropped=%d capacity=%d running=%v\n",
		m.QueuedCount, m.DroppedCount, m.Capacity, m.IsRunning)
}
