package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Loop calls fn every interval until Stop. A failing run is logged and the loop goes on.
type Loop struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
	logger   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewLoop(name string, interval time.Duration, fn func(ctx context.Context) error, logger *slog.Logger) *Loop {
	return &Loop{name: name, interval: interval, fn: fn, logger: logger}
}

func (l *Loop) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := l.fn(ctx); err != nil && ctx.Err() == nil {
					l.logger.Error("background run failed", "loop", l.name, "error", err.Error())
				}
			}
		}
	}()
}

func (l *Loop) Stop() {
	if l.cancel != nil {
		l.cancel()
	}
	l.wg.Wait()
}
