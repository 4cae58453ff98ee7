package worker

import (
	"context"
	"log/slog"
	"time"

	"session-booking/internal/pkg/clock"
	"session-booking/internal/pkg/errs"
	"session-booking/internal/usecase/shared"
)

// Janitor removes idempotency records past their retention, and placeholder holds
// left behind by flows that were never committed.
type Janitor struct {
	records shared.IdempotencyStore
	events  shared.CalendarEvents
	clock   clock.Clock
	logger  *slog.Logger
}

// Sweep counts what one janitor run removed.
type Sweep struct {
	Records int64
	Holds   int
}

func NewJanitor(records shared.IdempotencyStore, events shared.CalendarEvents, clk clock.Clock, logger *slog.Logger) *Janitor {
	return &Janitor{records: records, events: events, clock: clk, logger: logger}
}

// RunOnce runs both sweeps even when the first one fails.
func (j *Janitor) RunOnce(ctx context.Context) (Sweep, error) {
	now := j.clock.Now()

	var sweep Sweep
	n, recordsErr := j.records.DeleteExpired(ctx, now)
	sweep.Records = n
	released, holdsErr := j.releaseExpiredHolds(ctx, now)
	sweep.Holds = released

	if sweep.Records > 0 || sweep.Holds > 0 {
		j.logger.Info("janitor sweep finished", "records", sweep.Records, "holds", sweep.Holds)
	}
	if recordsErr != nil {
		if holdsErr != nil {
			j.logger.Error("hold sweep failed", "error", holdsErr.Error())
		}
		return sweep, errs.Wrap(recordsErr, "purge idempotency records")
	}
	return sweep, holdsErr
}

func (j *Janitor) releaseExpiredHolds(ctx context.Context, now time.Time) (int, error) {
	holds, err := j.events.ListHolds(ctx)
	if err != nil {
		return 0, errs.Wrap(err, "list placeholder holds")
	}

	released := 0
	for _, h := range holds {
		if h.HoldExpiresAt.After(now) {
			continue
		}
		if err := j.events.DeleteEvent(ctx, h.ID); err != nil {
			j.logger.Warn("failed to delete expired hold", "error", err.Error(), "event_id", h.ID)
			continue
		}
		released++
	}
	return released, nil
}
