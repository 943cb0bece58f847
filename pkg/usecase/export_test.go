package usecase

import (
	"context"
	"time"
)

// ConfigService exports configService for testing
type ConfigService = configService

func (c *configService) FindConfigInDirectory(dir string) string {
	return c.findConfigInDirectory(dir)
}

// NewConfigServiceWithHome replaces the home directory lookup.
func NewConfigServiceWithHome(home string) *ConfigService {
	return &configService{
		homeDir: func() (string, error) { return home, nil },
	}
}

var SleepContext = sleepContext

// NoSleep records requested durations without blocking.
type NoSleep struct {
	Calls []time.Duration
}

func (n *NoSleep) Sleep(ctx context.Context, d time.Duration) error {
	n.Calls = append(n.Calls, d)
	return ctx.Err()
}
