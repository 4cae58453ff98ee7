package repository

import (
	"context"
	"encoding/json"

	"session-booking/internal/domain/booking"
	"session-booking/internal/infra"
	"session-booking/internal/infra/db"
	"session-booking/internal/pkg/errs"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BookingRepository stores sessions and their invites.
type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(conn db.DBTX) *BookingRepository {
	return &BookingRepository{db: conn}
}

var sessionColumns = []string{
	"id", "user_id", "session_type_id", "appointment_at", "duration_minutes", "status",
	"calendar_event_id", "first_name", "last_name", "liability_form", "created_at", "updated_at",
}

var inviteColumns = []string{
	"token", "parent_session_id", "status", "friend_user_id", "friend_first_name",
	"friend_last_name", "liability_form", "created_at", "updated_at",
}

func (r *BookingRepository) CreateSession(ctx context.Context, in booking.NewSession) (booking.Session, error) {
	query, args, err := psql.Insert("sessions").
		Columns("user_id", "session_type_id", "appointment_at", "duration_minutes", "status",
			"first_name", "last_name", "liability_form").
		Values(in.UserID, in.SessionTypeID, in.AppointmentAt.UTC(), in.DurationMinutes, booking.SessionPendingEvent,
			nullString(in.FirstName), nullString(in.LastName), nullJSON(in.LiabilityForm)).
		Suffix("RETURNING " + joinColumns(sessionColumns)).
		ToSql()
	if err != nil {
		return booking.Session{}, errs.Wrap(err, "build insert session query")
	}

	s, err := scanSession(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return booking.Session{}, infra.WrapRepoErr("failed to create session", err)
	}
	return s, nil
}

func (r *BookingRepository) UpdateSession(ctx context.Context, id uuid.UUID, upd booking.SessionUpdate) error {
	b := psql.Update("sessions").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
	if upd.Status != nil {
		b = b.Set("status", *upd.Status)
	}
	if upd.CalendarEventID != nil {
		b = b.Set("calendar_event_id", *upd.CalendarEventID)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return errs.Wrap(err, "build update session query")
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update session", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("session not found")
	}
	return nil
}

func (r *BookingRepository) FindSession(ctx context.Context, id uuid.UUID) (booking.Session, error) {
	query, args, err := psql.Select(sessionColumns...).
		From("sessions").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return booking.Session{}, errs.Wrap(err, "build session query")
	}

	s, err := scanSession(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return booking.Session{}, infra.WrapRepoErr("failed to find session", err)
	}
	return s, nil
}

func (r *BookingRepository) CreateInvite(ctx context.Context, parentSessionID uuid.UUID, token string) (booking.Invite, error) {
	query, args, err := psql.Insert("session_invites").
		Columns("token", "parent_session_id", "status").
		Values(token, parentSessionID, booking.InvitePending).
		Suffix("RETURNING " + joinColumns(inviteColumns)).
		ToSql()
	if err != nil {
		return booking.Invite{}, errs.Wrap(err, "build insert invite query")
	}

	inv, err := scanInvite(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return booking.Invite{}, infra.WrapRepoErr("failed to create invite", err)
	}
	return inv, nil
}

func (r *BookingRepository) FindInvite(ctx context.Context, token string) (booking.Invite, error) {
	query, args, err := psql.Select(inviteColumns...).
		From("session_invites").
		Where(sq.Eq{"token": token}).
		ToSql()
	if err != nil {
		return booking.Invite{}, errs.Wrap(err, "build invite query")
	}

	inv, err := scanInvite(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return booking.Invite{}, infra.WrapRepoErr("failed to find invite", err)
	}
	return inv, nil
}

// UpdateInvite applies the status guard in the WHERE clause, so a concurrent writer
// that already moved the invite makes this call fail with a conflict.
func (r *BookingRepository) UpdateInvite(ctx context.Context, token string, upd booking.InviteUpdate) (booking.Invite, error) {
	b := psql.Update("session_invites").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"token": token})
	if upd.Status != nil {
		b = b.Set("status", *upd.Status)
	}
	if upd.FriendUserID != nil {
		b = b.Set("friend_user_id", *upd.FriendUserID)
	}
	if upd.FriendFirstName != nil {
		b = b.Set("friend_first_name", *upd.FriendFirstName)
	}
	if upd.FriendLastName != nil {
		b = b.Set("friend_last_name", *upd.FriendLastName)
	}
	if len(upd.LiabilityForm) > 0 {
		b = b.Set("liability_form", []byte(upd.LiabilityForm))
	}
	if len(upd.RequireStatusIn) > 0 {
		statuses := make([]string, len(upd.RequireStatusIn))
		for i, s := range upd.RequireStatusIn {
			statuses[i] = string(s)
		}
		b = b.Where(sq.Eq{"status": statuses})
	}

	query, args, err := b.Suffix("RETURNING " + joinColumns(inviteColumns)).ToSql()
	if err != nil {
		return booking.Invite{}, errs.Wrap(err, "build update invite query")
	}

	inv, err := scanInvite(r.db.QueryRow(ctx, query, args...))
	if err == nil {
		return inv, nil
	}
	if errs.Is(err, pgx.ErrNoRows) && len(upd.RequireStatusIn) > 0 {
		if _, findErr := r.FindInvite(ctx, token); findErr != nil {
			return booking.Invite{}, findErr
		}
		return booking.Invite{}, infra.Conflict("invite is not in an expected status")
	}
	return booking.Invite{}, infra.WrapRepoErr("failed to update invite", err)
}

// CountInvitesByStatus counts every invite of the session when no status is given.
func (r *BookingRepository) CountInvitesByStatus(ctx context.Context, parentSessionID uuid.UUID, statuses ...booking.InviteStatus) (int, error) {
	b := psql.Select("count(*)").
		From("session_invites").
		Where(sq.Eq{"parent_session_id": parentSessionID})
	if len(statuses) > 0 {
		values := make([]string, len(statuses))
		for i, s := range statuses {
			values[i] = string(s)
		}
		b = b.Where(sq.Eq{"status": values})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return 0, errs.Wrap(err, "build count invites query")
	}
	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count invites", err)
	}
	return n, nil
}

func scanSession(row pgx.Row) (booking.Session, error) {
	var (
		s                    booking.Session
		status               string
		eventID, first, last *string
		form                 []byte
	)
	err := row.Scan(&s.ID, &s.UserID, &s.SessionTypeID, &s.AppointmentAt, &s.DurationMinutes, &status,
		&eventID, &first, &last, &form, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return booking.Session{}, err
	}
	s.Status = booking.SessionStatus(status)
	s.CalendarEventID = deref(eventID)
	s.FirstName = deref(first)
	s.LastName = deref(last)
	if len(form) > 0 {
		s.LiabilityForm = json.RawMessage(form)
	}
	return s, nil
}

func scanInvite(row pgx.Row) (booking.Invite, error) {
	var (
		inv                   booking.Invite
		status                string
		friendID, first, last *string
		form                  []byte
	)
	err := row.Scan(&inv.Token, &inv.ParentSessionID, &status, &friendID, &first, &last, &form,
		&inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return booking.Invite{}, err
	}
	inv.Status = booking.InviteStatus(status)
	inv.FriendUserID = deref(friendID)
	inv.FriendFirstName = deref(first)
	inv.FriendLastName = deref(last)
	if len(form) > 0 {
		inv.LiabilityForm = json.RawMessage(form)
	}
	return inv, nil
}
