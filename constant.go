// FILE: constant.go
package loggable

import (
	"time"
)

// Queue defaults
const (
	defaultQueueCapacity = 64
)

// Timers
const (
	// Minimum wait time used throughout the package
	minWaitTime = 10 * time.Millisecond
	// Grace period after clearing the running flag so the worker can
	// observe the stop and drain
	stopGrace = 50 * time.Millisecond
)

// Tag used by records the engine emits about itself
const heartbeatTag = "loggable"
