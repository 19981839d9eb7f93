// FILE: cmd/heartbeat/main.go

// Heartbeat demonstrates the engine's periodic self-reporting records.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/loggable-io/loggable"
	"github.com/loggable-io/loggable/sinks"
)

func main() {
	engine, err := loggable.NewBuilder().
		Backend(loggable.NewGoBackend()).
		Level(loggable.LevelInfo).
		QueueCapacity(32).
		HeartbeatInterval(time.Second).
		Sink(sinks.NewConsole(os.Stdout)).
		Build()
	if err != nil {
		panic(err)
	}

	engine.Activate()
	defer engine.Deactivate()

	logger := loggable.NewLogger(engine, "demo")

	fmt.Println("Logging for 5 seconds; heartbeat records appear once per second.")
	stop := time.After(5 * time.Second)
	tick := time.NewTicker(250 * time.Millisecond)
	defer tick.Stop()

	for i := 0; ; i++ {
		select {
		case <-tick.C:
			logger.Infof("work item %d", i)
		case <-stop:
			engine.Flush(time.Second)
			return
		}
	}
}
