package readstore

import (
	"context"
	"time"

	"session-booking/internal/infra"
	"session-booking/internal/infra/db"
	"session-booking/internal/pkg/errs"
	"session-booking/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type SessionReadStore struct {
	db db.DBTX
}

func NewSessionReadStore(conn db.DBTX) *SessionReadStore {
	return &SessionReadStore{db: conn}
}

func (s *SessionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SessionView, error) {
	query, args, err := psql.Select(
		"s.id", "s.user_id", "s.session_type_id", "t.label", "s.appointment_at", "s.duration_minutes",
		"s.status", "s.calendar_event_id", "s.first_name", "s.last_name", "s.created_at", "s.updated_at",
	).
		From("sessions s").
		Join("session_types t ON t.id = s.session_type_id").
		Where(sq.Eq{"s.id": id}).
		ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "build session view query")
	}

	var v queries.SessionView
	err = s.db.QueryRow(ctx, query, args...).Scan(
		&v.ID, &v.UserID, &v.SessionTypeID, &v.SessionLabel, &v.AppointmentAt, &v.DurationMinutes,
		&v.Status, &v.CalendarEventID, &v.FirstName, &v.LastName, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get session view", err)
	}

	invites, err := s.findInvites(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Invites = invites
	return &v, nil
}

func (s *SessionReadStore) FindFirstPage(ctx context.Context, filters queries.SessionFilters, limit int32) ([]*queries.SessionListItem, error) {
	return s.list(ctx, s.listQuery(filters, limit))
}

func (s *SessionReadStore) FindKeyset(ctx context.Context, filters queries.SessionFilters, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.SessionListItem, error) {
	b := s.listQuery(filters, limit).
		Where(sq.Expr("(s.created_at, s.id) < (?, ?)", lastCreatedAt, lastID))
	return s.list(ctx, b)
}

func (s *SessionReadStore) listQuery(filters queries.SessionFilters, limit int32) sq.SelectBuilder {
	b := psql.Select("s.id", "s.user_id", "t.label", "s.appointment_at", "s.status", "s.created_at").
		From("sessions s").
		Join("session_types t ON t.id = s.session_type_id").
		OrderBy("s.created_at DESC", "s.id DESC").
		Limit(uint64(max(limit, 0)))
	if filters.Status != nil {
		b = b.Where(sq.Eq{"s.status": *filters.Status})
	}
	return b
}

func (s *SessionReadStore) list(ctx context.Context, b sq.SelectBuilder) ([]*queries.SessionListItem, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "build session list query")
	}
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sessions", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.SessionListItem, error) {
		var item queries.SessionListItem
		err := row.Scan(&item.ID, &item.UserID, &item.SessionLabel, &item.AppointmentAt, &item.Status, &item.CreatedAt)
		return &item, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan sessions", err)
	}
	return items, nil
}

func (s *SessionReadStore) findInvites(ctx context.Context, sessionID uuid.UUID) ([]queries.InviteView, error) {
	query, args, err := psql.Select(
		"token", "status", "friend_user_id",
		"NULLIF(trim(concat_ws(' ', friend_first_name, friend_last_name)), '')", "updated_at",
	).
		From("session_invites").
		Where(sq.Eq{"parent_session_id": sessionID}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "build invite view query")
	}
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invites", err)
	}

	invites, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (queries.InviteView, error) {
		var v queries.InviteView
		err := row.Scan(&v.Token, &v.Status, &v.FriendUserID, &v.FriendName, &v.UpdatedAt)
		return v, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan invites", err)
	}
	return invites, nil
}
