// FILE: level.go
package loggable

import (
	"strconv"
	"strings"
)

// Level is the severity of a log record. Lower values are more severe;
// LevelNone is reserved and never enabled for a message.
type Level uint8

const (
	LevelNone Level = iota
	LevelError
	LevelWarning
	LevelInfo
	LevelDebug
	LevelVerbose
)

// Enabled reports whether a record at this level passes the given threshold.
func (l Level) Enabled(threshold Level) bool {
	return l != LevelNone && l <= threshold
}

// Letter returns the single-character form used in wire/text output.
func (l Level) Letter() string {
	switch l {
	case LevelError:
		return "E"
	case LevelWarning:
		return "W"
	case LevelInfo:
		return "I"
	case LevelDebug:
		return "D"
	case LevelVerbose:
		return "V"
	case LevelNone:
		return "N"
	}
	return "?"
}

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelVerbose:
		return "verbose"
	case LevelNone:
		return "none"
	}
	return "unknown"
}

// ParseLevel accepts a level name ("error", "warning", ...), a single-letter
// form ("E", "W", ...), or a numeric value.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "n":
		return LevelNone, nil
	case "error", "err", "e":
		return LevelError, nil
	case "warning", "warn", "w":
		return LevelWarning, nil
	case "info", "i":
		return LevelInfo, nil
	case "debug", "d":
		return LevelDebug, nil
	case "verbose", "trace", "v":
		return LevelVerbose, nil
	}

	if n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8); err == nil && n <= uint64(LevelVerbose) {
		return Level(n), nil
	}

	return LevelNone, fmtErrorf("unknown level '%s'", s)
}
