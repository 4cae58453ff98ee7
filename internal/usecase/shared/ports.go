package shared

import (
	"context"
	"time"

	"session-booking/internal/domain/availability"
	"session-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type RuleStore interface {
	// GetDefaultRule returns an error marked errs.ErrNotFound when no rule is configured.
	GetDefaultRule(ctx context.Context) (availability.Rule, error)
}

type SessionTypeStore interface {
	FindSessionType(ctx context.Context, id int64) (booking.SessionType, error)
	ListActiveSessionTypes(ctx context.Context) ([]booking.SessionType, error)
}

type CalendarBusyQuery interface {
	// QueryBusy issues one batched request for all calendarIDs and fails as a whole
	// if any calendar reports an error.
	QueryBusy(ctx context.Context, calendarIDs []string, timeMin, timeMax time.Time) (map[string][]TimeRange, error)
}

// CalendarEvents operates on the session calendar.
type CalendarEvents interface {
	CreateEvent(ctx context.Context, in EventInput) (string, error)
	UpdateEvent(ctx context.Context, eventID string, patch EventPatch) error
	// DeleteEvent treats an already deleted event as success.
	DeleteEvent(ctx context.Context, eventID string) error
	GetEvent(ctx context.Context, eventID string) (CalendarEvent, error)
	// ListHolds returns every placeholder hold still on the calendar, expired or not.
	ListHolds(ctx context.Context) ([]CalendarEvent, error)
}

type BookingStore interface {
	CreateSession(ctx context.Context, in booking.NewSession) (booking.Session, error)
	UpdateSession(ctx context.Context, id uuid.UUID, upd booking.SessionUpdate) error
	FindSession(ctx context.Context, id uuid.UUID) (booking.Session, error)
	CreateInvite(ctx context.Context, parentSessionID uuid.UUID, token string) (booking.Invite, error)
	FindInvite(ctx context.Context, token string) (booking.Invite, error)
	// UpdateInvite returns an error marked errs.ErrConflict when RequireStatusIn is not met.
	UpdateInvite(ctx context.Context, token string, upd booking.InviteUpdate) (booking.Invite, error)
	CountInvitesByStatus(ctx context.Context, parentSessionID uuid.UUID, statuses ...booking.InviteStatus) (int, error)
}

type IdempotencyStore interface {
	// Claim inserts a processing record, or takes over one whose lease has expired.
	Claim(ctx context.Context, key, endpoint string, leaseUntil time.Time) (ClaimResult, error)
	Complete(ctx context.Context, key string, response []byte, resultSessionID *uuid.UUID, retainUntil time.Time) error
	Release(ctx context.Context, key string) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
	// ClaimPendingJobs also takes back processing jobs untouched since staleBefore, whose
	// relay died between claiming and marking them.
	ClaimPendingJobs(ctx context.Context, now, staleBefore time.Time, limit int) ([]NotificationJob, error)
	MarkJobSent(ctx context.Context, id uuid.UUID) error
	MarkJobFailed(ctx context.Context, id uuid.UUID, lastErr string, retryAt time.Time, giveUp bool) error
}

// Notifier is best-effort: implementations log failures and never return them.
type Notifier interface {
	NotifyUser(ctx context.Context, userID, text string)
	NotifyAdmin(ctx context.Context, text string)
}
