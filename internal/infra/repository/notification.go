package repository

import (
	"context"
	"time"

	"session-booking/internal/infra"
	"session-booking/internal/infra/db"
	"session-booking/internal/pkg/errs"
	"session-booking/internal/usecase/shared"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const (
	jobStatusQueued     = "queued"
	jobStatusProcessing = "processing"
	jobStatusSent       = "sent"
	jobStatusFailed     = "failed"
)

// NotificationRepository is the outbox the relay drains into the task queue.
type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(conn db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: conn}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	query, args, err := psql.Insert("notification_jobs").
		Columns("kind", "topic", "payload", "run_at", "status").
		Values(kind, topic, payload, runAt, jobStatusQueued).
		ToSql()
	if err != nil {
		return errs.Wrap(err, "build insert notification job query")
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

// Rows are locked with SKIP LOCKED so several relays can drain the outbox at once.
// updated_at is stamped with the caller's clock so the stale cutoff compares like with like.
const claimPendingJobs = `
	UPDATE notification_jobs
	SET status = 'processing', attempts = attempts + 1, updated_at = $1
	WHERE id IN (
		SELECT id FROM notification_jobs
		WHERE (status = 'queued' AND run_at <= $1)
		   OR (status = 'processing' AND updated_at < $2)
		ORDER BY run_at
		LIMIT $3
		FOR UPDATE SKIP LOCKED
	)
	RETURNING id, kind, topic, payload, attempts
`

func (r *NotificationRepository) ClaimPendingJobs(ctx context.Context, now, staleBefore time.Time, limit int) ([]shared.NotificationJob, error) {
	rows, err := r.db.Query(ctx, claimPendingJobs, now, staleBefore, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	defer rows.Close()

	var jobs []shared.NotificationJob
	for rows.Next() {
		var job shared.NotificationJob
		if err := rows.Scan(&job.ID, &job.Kind, &job.Topic, &job.Payload, &job.Attempts); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkJobSent(ctx context.Context, id uuid.UUID) error {
	return r.updateStatus(ctx, id, psql.Update("notification_jobs").Set("status", jobStatusSent).Set("last_error", nil))
}

// MarkJobFailed requeues the job for retryAt, or parks it as failed when giveUp is set.
func (r *NotificationRepository) MarkJobFailed(ctx context.Context, id uuid.UUID, lastErr string, retryAt time.Time, giveUp bool) error {
	b := psql.Update("notification_jobs").Set("last_error", lastErr)
	if giveUp {
		b = b.Set("status", jobStatusFailed)
	} else {
		b = b.Set("status", jobStatusQueued).Set("run_at", retryAt)
	}
	return r.updateStatus(ctx, id, b)
}

func (r *NotificationRepository) updateStatus(ctx context.Context, id uuid.UUID, b sq.UpdateBuilder) error {
	query, args, err := b.Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "status": jobStatusProcessing}).
		ToSql()
	if err != nil {
		return errs.Wrap(err, "build notification job update query")
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("notification job not in processing state")
	}
	return nil
}
