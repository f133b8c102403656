package driver

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const (
	DefaultTickLength = time.Second
)

// Ticker is called once per driver tick.
type Ticker interface {
	Tick(context.Context) error
}

// Driver runs its tickers in order, one pass per tick, on a single goroutine.
type Driver struct {
	tickLength time.Duration
	tickers    []Ticker
	ticks      uint64
}

func NewDriver(tickers []Ticker, opts ...DriverOpt) *Driver {
	d := &Driver{
		tickLength: DefaultTickLength,
		tickers:    tickers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Start ticks until ctx is cancelled or a ticker fails.
func (d *Driver) Start(ctx context.Context) error {
	slog.InfoContext(ctx, "driver started", "tick", d.tickLength, "tickers", len(d.tickers))

	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			err := d.Tick(ctx)
			if err != nil {
				return err
			}
		}
	}
}

func (d *Driver) Tick(ctx context.Context) error {
	d.ticks++
	for i, t := range d.tickers {
		if err := t.Tick(ctx); err != nil {
			return fmt.Errorf("tick %d, ticker %d: %w", d.ticks, i, err)
		}
	}
	return nil
}
