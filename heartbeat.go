// FILE: heartbeat.go
package loggable

import (
	"fmt"
	"time"
)

// startHeartbeat spawns the periodic self-reporting task when a heartbeat
// interval is configured. Called from Activate with the lifecycle lock held.
// The heartbeat is best-effort: spawn failure is ignored and the loop exits
// on its own once the engine stops running.
func (e *Engine) startHeartbeat(gen uint64) {
	interval := time.Duration(e.cfg.HeartbeatIntervalMs) * time.Millisecond
	if interval <= 0 {
		return
	}

	e.backend.SpawnTask(TaskConfig{
		Name:      e.cfg.TaskName + "_hb",
		StackSize: e.cfg.TaskStackSize,
		Priority:  e.cfg.TaskPriority,
		Core:      e.cfg.TaskCore,
	}, func() { e.heartbeatLoop(interval, gen) })
}

// heartbeatLoop exits when the engine stops running or when its activation
// generation goes stale, so a reactivation within one interval cannot leave
// the previous loop alive next to the new one.
func (e *Engine) heartbeatLoop(interval time.Duration, gen uint64) {
	for {
		e.backend.Sleep(interval)
		if !e.state.Running.Load() || e.state.Generation.Load() != gen {
			e.backend.DeleteTask(TaskHandle{})
			return
		}
		e.emitHeartbeat()
	}
}

// emitHeartbeat pushes one statistics record through the pipeline itself.
// Heartbeat records are subject to the same level filtering and drop-oldest
// shedding as any other record.
func (e *Engine) emitHeartbeat() {
	seq := e.state.HeartbeatSequence.Add(1)
	m := e.GetMetrics()
	uptime := time.Since(e.state.StartTime)

	msg := fmt.Sprintf(
		"heartbeat sequence=%d uptime_s=%.0f queued=%d dropped=%d processed=%d capacity=%d",
		seq,
		uptime.Seconds(),
		m.QueuedCount,
		m.DroppedCount,
		e.state.Processed.Load(),
		m.Capacity,
	)

	e.Dispatch(Record{
		Time:    time.Now(),
		Level:   LevelInfo,
		Tag:     heartbeatTag,
		Message: msg,
	})
}
