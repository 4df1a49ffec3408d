package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeNotifications()
	c.normalizeLogging()
	c.normalizeDefaults()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	c.Paths.CatalogPath = strings.TrimSpace(c.Paths.CatalogPath)
	if c.Paths.CatalogPath != "" {
		if c.Paths.CatalogPath, err = expandPath(c.Paths.CatalogPath); err != nil {
			return fmt.Errorf("paths.catalog_path: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeNotifications() {
	c.Notifications.NtfyTopic = strings.TrimSpace(c.Notifications.NtfyTopic)
	if c.Notifications.RequestTimeout <= 0 {
		c.Notifications.RequestTimeout = defaultNotifyRequestTimeout
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeDefaults() {
	if c.Defaults.Speed <= 0 {
		c.Defaults.Speed = defaultSettingsSpeed
	}
	c.Defaults.Theme = strings.ToLower(strings.TrimSpace(c.Defaults.Theme))
	if c.Defaults.Theme == "" {
		c.Defaults.Theme = defaultSettingsTheme
	}
	c.Defaults.Language = strings.TrimSpace(c.Defaults.Language)
	if c.Defaults.Language == "" {
		c.Defaults.Language = defaultSettingsLanguage
	}
}
