// FILE: config.go
package loggable

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/lixenwraith/config"
)

// Config holds the construction-time settings of the dispatch engine.
type Config struct {
	// Initial severity threshold; adjustable later via Engine.SetLevel
	Level Level `toml:"level"`

	// Bounded queue
	QueueCapacity int `toml:"queue_capacity"` // fixed at activation

	// Worker timers
	PopTimeoutMs      int64 `toml:"pop_timeout_ms"`      // worker pop timeout
	ShutdownTimeoutMs int64 `toml:"shutdown_timeout_ms"` // best-effort drain bound

	// Worker task settings, forwarded to the backend
	TaskName      string `toml:"task_name"`
	TaskStackSize int    `toml:"task_stack_size"`
	TaskPriority  int    `toml:"task_priority"`
	TaskCore      int    `toml:"task_core"` // -1 = any core

	// Self-reporting; 0 disables the heartbeat
	HeartbeatIntervalMs int64 `toml:"heartbeat_interval_ms"`
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Level: LevelInfo,

	QueueCapacity: defaultQueueCapacity,

	PopTimeoutMs:      100,
	ShutdownTimeoutMs: 5000,

	TaskName:      "log_dispatch",
	TaskStackSize: 4096,
	TaskPriority:  5,
	TaskCore:      -1,

	HeartbeatIntervalMs: 0,
}

// DefaultConfig returns a copy of the default configuration.
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	copied := *c
	return &copied
}

// validate checks the configuration for internal consistency.
func (c *Config) validate() error {
	if c.Level > LevelVerbose {
		return fmtErrorf("invalid level %d", c.Level)
	}
	if c.QueueCapacity <= 0 {
		return fmtErrorf("queue_capacity must be positive, got %d", c.QueueCapacity)
	}
	if c.PopTimeoutMs <= 0 {
		return fmtErrorf("pop_timeout_ms must be positive, got %d", c.PopTimeoutMs)
	}
	if c.ShutdownTimeoutMs < 0 {
		return fmtErrorf("shutdown_timeout_ms cannot be negative, got %d", c.ShutdownTimeoutMs)
	}
	if c.TaskName == "" {
		return fmtErrorf("task_name cannot be empty")
	}
	if c.TaskStackSize <= 0 {
		return fmtErrorf("task_stack_size must be positive, got %d", c.TaskStackSize)
	}
	if c.TaskCore < -1 {
		return fmtErrorf("task_core must be -1 (any) or a core index, got %d", c.TaskCore)
	}
	if c.HeartbeatIntervalMs < 0 {
		return fmtErrorf("heartbeat_interval_ms cannot be negative, got %d", c.HeartbeatIntervalMs)
	}
	return nil
}

// NewConfigFromFile loads configuration from a TOML file and returns a
// validated Config. A missing file yields the defaults.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Use lixenwraith/config as a loader
	loader := config.New()

	// Register the struct to enable proper unmarshaling
	if err := loader.RegisterStruct("loggable.", *cfg); err != nil {
		return nil, fmtErrorf("failed to register config struct: %w", err)
	}

	// Load from file (handles file not found gracefully)
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmtErrorf("failed to load config from %s: %w", path, err)
	}

	// Extract values into our Config struct
	if err := extractConfig(loader, "loggable.", cfg); err != nil {
		return nil, fmtErrorf("failed to extract config values: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue // Use default value
		}

		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with type conversion from the loosely
// typed values the loader produces.
func setFieldValue(field reflect.Value, val any) error {
	switch field.Kind() {
	case reflect.String:
		s, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
		field.SetString(s)

	case reflect.Bool:
		b, ok := val.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", val)
		}
		field.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := toInt64(val)
		if err != nil {
			return err
		}
		if field.OverflowInt(n) {
			return fmt.Errorf("value %d overflows %s", n, field.Kind())
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := toInt64(val)
		if err != nil {
			return err
		}
		if n < 0 || field.OverflowUint(uint64(n)) {
			return fmt.Errorf("value %d out of range for %s", n, field.Kind())
		}
		field.SetUint(uint64(n))

	default:
		return fmt.Errorf("unsupported field kind %s", field.Kind())
	}
	return nil
}

// toInt64 normalizes the numeric types a TOML loader may hand back.
func toInt64(val any) (int64, error) {
	switch n := val.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		return int64(n), nil
	case string:
		return strconv.ParseInt(n, 10, 64)
	}
	return 0, fmt.Errorf("expected numeric value, got %T", val)
}
