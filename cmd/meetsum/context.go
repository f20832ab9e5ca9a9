package main

import (
	"context"
	"strings"
	"sync"

	"github.com/heartmarshall/meetsum-backend/internal/app"
	"github.com/heartmarshall/meetsum-backend/internal/config"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		if c.configFlag != nil && strings.TrimSpace(*c.configFlag) != "" {
			c.config, c.configErr = config.LoadFile(strings.TrimSpace(*c.configFlag))
			return
		}
		c.config, c.configErr = config.Load()
	})
	return c.config, c.configErr
}

// withApp loads configuration, wires the application and closes it after fn.
func (c *commandContext) withApp(ctx context.Context, fn func(*app.App) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
