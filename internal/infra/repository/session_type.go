package repository

import (
	"context"

	"session-booking/internal/domain/booking"
	"session-booking/internal/infra"
	"session-booking/internal/infra/db"
	"session-booking/internal/pkg/errs"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

type SessionTypeRepository struct {
	db db.DBTX
}

func NewSessionTypeRepository(conn db.DBTX) *SessionTypeRepository {
	return &SessionTypeRepository{db: conn}
}

var sessionTypeColumns = []string{
	"id", "label", "duration_minutes", "waiver_type", "allows_group_invites", "max_group_size", "active",
}

func (r *SessionTypeRepository) FindSessionType(ctx context.Context, id int64) (booking.SessionType, error) {
	query, args, err := psql.Select(sessionTypeColumns...).
		From("session_types").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return booking.SessionType{}, errs.Wrap(err, "build session type query")
	}

	st, err := scanSessionType(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return booking.SessionType{}, infra.WrapRepoErr("failed to find session type", err)
	}
	return st, nil
}

func (r *SessionTypeRepository) ListActiveSessionTypes(ctx context.Context) ([]booking.SessionType, error) {
	query, args, err := psql.Select(sessionTypeColumns...).
		From("session_types").
		Where(sq.Eq{"active": true}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "build session type list query")
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list session types", err)
	}
	defer rows.Close()

	var types []booking.SessionType
	for rows.Next() {
		st, err := scanSessionType(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan session type", err)
		}
		types = append(types, st)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list session types", err)
	}
	return types, nil
}

func (r *SessionTypeRepository) CreateSessionType(ctx context.Context, st booking.SessionType) (int64, error) {
	waiver := st.WaiverType
	if waiver == "" {
		waiver = booking.WaiverNone
	}
	maxGroup := max(st.MaxGroupSize, 1)

	query, args, err := psql.Insert("session_types").
		Columns("label", "duration_minutes", "waiver_type", "allows_group_invites", "max_group_size", "active").
		Values(st.Label, st.DurationMinutes, waiver, st.AllowsGroupInvites, maxGroup, st.Active).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, errs.Wrap(err, "build insert session type query")
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, infra.WrapRepoErr("failed to create session type", err)
	}
	return id, nil
}

func scanSessionType(row pgx.Row) (booking.SessionType, error) {
	var st booking.SessionType
	err := row.Scan(&st.ID, &st.Label, &st.DurationMinutes, &st.WaiverType, &st.AllowsGroupInvites, &st.MaxGroupSize, &st.Active)
	return st, err
}
