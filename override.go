// FILE: override.go
package loggable

import (
	"fmt"
	"strconv"
	"strings"
)

// NewConfigFromOverrides builds a configuration from defaults plus
// "key=value" overrides.
//
// Example:
//
//	cfg, err := loggable.NewConfigFromOverrides(
//	    "level=debug",
//	    "queue_capacity=256",
//	    "heartbeat_interval_ms=60000",
//	)
func NewConfigFromOverrides(overrides ...string) (*Config, error) {
	cfg := DefaultConfig()

	var errs []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return nil, combineConfigErrors(errs)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parseKeyValue splits an override of the form "key=value".
func parseKeyValue(override string) (string, string, error) {
	key, value, found := strings.Cut(override, "=")
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if !found || key == "" {
		return "", "", fmtErrorf("invalid override '%s', expected key=value", override)
	}
	return key, value, nil
}

// combineConfigErrors combines multiple configuration errors into one.
func combineConfigErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}

	var sb strings.Builder
	sb.WriteString("loggable: multiple configuration errors:")
	for i, err := range errs {
		errMsg := strings.TrimPrefix(err.Error(), "loggable: ")
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// applyConfigField applies a single key-value override to a Config.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	case "level":
		level, err := ParseLevel(value)
		if err != nil {
			return fmtErrorf("invalid level value '%s': %w", value, err)
		}
		cfg.Level = level

	case "queue_capacity":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmtErrorf("invalid integer value for queue_capacity '%s': %w", value, err)
		}
		cfg.QueueCapacity = intVal

	case "pop_timeout_ms":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for pop_timeout_ms '%s': %w", value, err)
		}
		cfg.PopTimeoutMs = intVal

	case "shutdown_timeout_ms":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for shutdown_timeout_ms '%s': %w", value, err)
		}
		cfg.ShutdownTimeoutMs = intVal

	case "task_name":
		cfg.TaskName = value

	case "task_stack_size":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmtErrorf("invalid integer value for task_stack_size '%s': %w", value, err)
		}
		cfg.TaskStackSize = intVal

	case "task_priority":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmtErrorf("invalid integer value for task_priority '%s': %w", value, err)
		}
		cfg.TaskPriority = intVal

	case "task_core":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmtErrorf("invalid integer value for task_core '%s': %w", value, err)
		}
		cfg.TaskCore = intVal

	case "heartbeat_interval_ms":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for heartbeat_interval_ms '%s': %w", value, err)
		}
		cfg.HeartbeatIntervalMs = intVal

	default:
		return fmtErrorf("unknown configuration key '%s'", key)
	}

	return nil
}
