package backoff

import (
	"context"
	"fmt"
	"time"
)

// Config bounds a retry loop: at most Attempts tries, doubling the delay
// between them up to MaxDelay.
type Config struct {
	Attempts int           `yaml:"attempts"`
	Delay    time.Duration `yaml:"delay"`
	MaxDelay time.Duration `yaml:"max_delay"`
}

func (c *Config) Setup() {
	if c.Attempts <= 0 {
		c.Attempts = 5
	}
	if c.Delay <= 0 {
		c.Delay = 500 * time.Millisecond
	}
	if c.MaxDelay <= 0 {
		c.MaxDelay = 10 * time.Second
	}
}

// Retry runs fn until it succeeds, the attempt budget is spent, or the
// context is canceled. The last error is returned after the cutoff.
func Retry[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	var (
		result T
		err    error
	)

	delay := cfg.Delay
	for attempt := 1; ; attempt++ {
		if result, err = fn(); err == nil {
			return result, nil
		}
		if attempt >= cfg.Attempts {
			return result, fmt.Errorf("%w: gave up after %d attempts", err, attempt)
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(delay):
		}

		if delay *= 2; delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
}
