package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"studytrack/internal/catalog"
	"studytrack/internal/config"
	"studytrack/internal/engine"
	"studytrack/internal/logging"
	"studytrack/internal/notifications"
	"studytrack/internal/progress"
	"studytrack/internal/store"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	catalogOnce sync.Once
	catalog     *catalog.Catalog
	catalogErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureCatalog() (*catalog.Catalog, error) {
	c.catalogOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.catalogErr = err
			return
		}
		c.catalog, c.catalogErr = catalog.Load(cfg.Paths.CatalogPath)
	})
	return c.catalog, c.catalogErr
}

// withEngine opens the store, builds an engine around it, runs fn, and closes
// the store afterwards. A locked store fails with guidance; any other open
// failure degrades to in-memory defaults with a warning on stderr.
func (c *commandContext) withEngine(cmd *cobra.Command, fn func(ctx context.Context, eng *engine.Engine) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	cat, err := c.ensureCatalog()
	if err != nil {
		return err
	}
	logger, err := logging.NewForCLI(cfg)
	if err != nil {
		return err
	}

	var backing engine.Store
	s, openErr := store.Open(cfg)
	switch {
	case openErr == nil:
		defer s.Close()
		backing = s
	case errors.Is(openErr, store.ErrLocked):
		return fmt.Errorf("progress database is locked by another studytrack process (lock file: %s)", cfg.LockPath())
	default:
		logger.Warn("store unavailable, running without persistence", "error", openErr)
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: progress database unavailable; changes made now will not be saved")
	}

	eng := engine.New(cat, backing, logger, notifications.NewService(cfg), settingsFromConfig(cfg))
	eng.RecordAccess(cmd.Context(), cmd.Name())
	return fn(cmd.Context(), eng)
}

// settingsFromConfig maps configured defaults onto learner settings. The
// stored settings blob still wins once it exists.
func settingsFromConfig(cfg *config.Config) progress.Settings {
	return progress.Settings{
		Notifications: cfg.Defaults.Notifications,
		Autoplay:      cfg.Defaults.Autoplay,
		Speed:         cfg.Defaults.Speed,
		Theme:         cfg.Defaults.Theme,
		Language:      cfg.Defaults.Language,
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
