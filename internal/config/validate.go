package config

import (
	"fmt"
)

var validThemes = map[string]struct{}{
	"light": {},
	"dark":  {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateNotifications(); err != nil {
		return err
	}
	return c.validateDefaults()
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateNotifications() error {
	if c.Notifications.RequestTimeout <= 0 {
		return fmt.Errorf("notifications.request_timeout must be positive, got %d", c.Notifications.RequestTimeout)
	}
	return nil
}

func (c *Config) validateDefaults() error {
	if c.Defaults.Speed <= 0 {
		return fmt.Errorf("defaults.speed must be positive, got %v", c.Defaults.Speed)
	}
	if _, ok := validThemes[c.Defaults.Theme]; !ok {
		return fmt.Errorf("defaults.theme must be light or dark, got %q", c.Defaults.Theme)
	}
	return nil
}
