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
	"github.com/jackc/pgx/v5"
)

type IdempotencyRepository struct {
	db db.DBTX
}

func NewIdempotencyRepository(conn db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: conn}
}

// A processing record whose lease ran out belongs to a caller that died mid-commit;
// it may be taken over. Completed records are never overwritten.
const claimIdempotencyKey = `
	INSERT INTO idempotency_records (key, endpoint, status, expires_at)
	VALUES ($1, $2, 'processing', $3)
	ON CONFLICT (key) DO UPDATE
	SET endpoint = EXCLUDED.endpoint,
	    expires_at = EXCLUDED.expires_at,
	    updated_at = now()
	WHERE idempotency_records.status = 'processing'
	  AND idempotency_records.expires_at <= now()
	RETURNING key
`

func (r *IdempotencyRepository) Claim(ctx context.Context, key, endpoint string, leaseUntil time.Time) (shared.ClaimResult, error) {
	var claimed string
	err := r.db.QueryRow(ctx, claimIdempotencyKey, key, endpoint, leaseUntil).Scan(&claimed)
	if err == nil {
		return shared.ClaimResult{Acquired: true}, nil
	}
	if !errs.Is(err, pgx.ErrNoRows) {
		return shared.ClaimResult{}, infra.WrapRepoErr("failed to claim idempotency key", err)
	}

	existing, err := r.Get(ctx, key)
	if err != nil {
		return shared.ClaimResult{}, err
	}
	return shared.ClaimResult{Existing: existing}, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, key string) (*shared.IdempotencyRecord, error) {
	query, args, err := psql.Select("key", "endpoint", "status", "response", "result_session_id", "expires_at").
		From("idempotency_records").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "build idempotency query")
	}

	var (
		rec    shared.IdempotencyRecord
		status string
	)
	err = r.db.QueryRow(ctx, query, args...).Scan(&rec.Key, &rec.Endpoint, &status, &rec.Response, &rec.ResultSessionID, &rec.ExpiresAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	rec.Status = shared.IdempotencyStatus(status)
	return &rec, nil
}

func (r *IdempotencyRepository) Complete(ctx context.Context, key string, response []byte, resultSessionID *uuid.UUID, retainUntil time.Time) error {
	query, args, err := psql.Update("idempotency_records").
		Set("status", shared.IdempotencyCompleted).
		Set("response", response).
		Set("result_session_id", resultSessionID).
		Set("expires_at", retainUntil).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"key": key, "status": shared.IdempotencyProcessing}).
		ToSql()
	if err != nil {
		return errs.Wrap(err, "build complete idempotency query")
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.Conflict("idempotency key is not being processed")
	}
	return nil
}

func (r *IdempotencyRepository) Release(ctx context.Context, key string) error {
	query, args, err := psql.Delete("idempotency_records").
		Where(sq.Eq{"key": key, "status": shared.IdempotencyProcessing}).
		ToSql()
	if err != nil {
		return errs.Wrap(err, "build release idempotency query")
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to release idempotency key", err)
	}
	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := psql.Delete("idempotency_records").
		Where(sq.Lt{"expires_at": before}).
		ToSql()
	if err != nil {
		return 0, errs.Wrap(err, "build delete expired idempotency query")
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return tag.RowsAffected(), nil
}
