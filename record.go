// FILE: record.go
package loggable

import (
	"time"
)

// Record is a single immutable log entry. It is created at the producer call
// site and copied by value into the queue or directly into sink calls; it is
// never mutated after creation.
type Record struct {
	Time    time.Time
	Level   Level
	Tag     string
	Message string
}

// NewRecord builds a record stamped with the current wall-clock time.
func NewRecord(level Level, tag, message string) Record {
	return Record{
		Time:    time.Now(),
		Level:   level,
		Tag:     tag,
		Message: message,
	}
}
