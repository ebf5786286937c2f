package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTika(); err != nil {
		return err
	}
	if c.Batch.MaxDepth < 1 {
		return errors.New("batch.max_depth must be at least 1")
	}
	return c.validateLogging()
}

func (c *Config) validateTika() error {
	if c.Tika.Host == "" {
		return errors.New("tika.host must be set")
	}
	if c.Tika.Port < 1 || c.Tika.Port > 65535 {
		return fmt.Errorf("tika.port must be between 1 and 65535, got %d", c.Tika.Port)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
