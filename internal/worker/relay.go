// Package worker runs the background loops: the outbox relay and the janitor.
package worker

import (
	"context"
	"log/slog"
	"time"

	"session-booking/internal/infra/queue"
	"session-booking/internal/pkg/clock"
	"session-booking/internal/pkg/config"
	"session-booking/internal/pkg/errs"
	"session-booking/internal/usecase/shared"

	"github.com/hibiken/asynq"
)

// Relay moves queued outbox rows onto the task queue. The outbox row id doubles as the
// asynq task id, so a row relayed twice after a crash is enqueued only once.
type Relay struct {
	jobs     shared.NotificationRepository
	enqueuer queue.Enqueuer
	cfg      config.WorkerConfig
	queue    string
	clock    clock.Clock
	logger   *slog.Logger
}

func NewRelay(jobs shared.NotificationRepository, enqueuer queue.Enqueuer, cfg config.Config, clk clock.Clock, logger *slog.Logger) *Relay {
	return &Relay{
		jobs:     jobs,
		enqueuer: enqueuer,
		cfg:      cfg.Worker,
		queue:    cfg.Redis.Queue,
		clock:    clk,
		logger:   logger,
	}
}

// RunOnce relays one batch and reports how many jobs reached the queue.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	now := r.clock.Now()
	jobs, err := r.jobs.ClaimPendingJobs(ctx, now, now.Add(-r.cfg.RelayLease), r.cfg.RelayBatchSize)
	if err != nil {
		return 0, errs.Wrap(err, "claim notification jobs")
	}

	sent := 0
	for _, job := range jobs {
		if err := r.relay(ctx, job); err != nil {
			r.fail(ctx, job, err)
			continue
		}
		if err := r.jobs.MarkJobSent(ctx, job.ID); err != nil {
			r.logger.Error("failed to mark notification job sent", "job_id", job.ID.String(), "error", err.Error())
			continue
		}
		sent++
	}
	return sent, nil
}

func (r *Relay) relay(ctx context.Context, job shared.NotificationJob) error {
	task, err := queue.NewNotifyTask(job.Topic, job.Payload)
	if err != nil {
		return err
	}
	_, err = r.enqueuer.EnqueueContext(ctx, task, asynq.Queue(r.queue), asynq.TaskID(job.ID.String()))
	if errs.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	return err
}

func (r *Relay) fail(ctx context.Context, job shared.NotificationJob, cause error) {
	giveUp := job.Attempts >= r.cfg.RelayMaxAttempt
	retryAt := r.clock.Now().Add(time.Duration(job.Attempts*job.Attempts) * time.Second)
	r.logger.Warn("notification relay failed",
		"job_id", job.ID.String(), "attempts", job.Attempts, "give_up", giveUp, "error", cause.Error())

	if err := r.jobs.MarkJobFailed(ctx, job.ID, cause.Error(), retryAt, giveUp); err != nil {
		r.logger.Error("failed to record notification failure", "job_id", job.ID.String(), "error", err.Error())
	}
}
