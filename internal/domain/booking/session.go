package booking

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	// Record exists, calendar event not yet attached.
	SessionPendingEvent SessionStatus = "pending_event"
	SessionConfirmed    SessionStatus = "confirmed"
	// Terminal: record exists but the calendar event could not be created.
	SessionNeedsManualReview SessionStatus = "needs_manual_review"
)

func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionPendingEvent, SessionConfirmed, SessionNeedsManualReview:
		return true
	}
	return false
}

type Session struct {
	ID              uuid.UUID       `json:"id"`
	UserID          string          `json:"userId"`
	SessionTypeID   int64           `json:"sessionTypeId"`
	AppointmentAt   time.Time       `json:"appointmentAt"`
	DurationMinutes int             `json:"durationMinutes"`
	Status          SessionStatus   `json:"status"`
	CalendarEventID string          `json:"calendarEventId,omitempty"`
	FirstName       string          `json:"firstName,omitempty"`
	LastName        string          `json:"lastName,omitempty"`
	LiabilityForm   json.RawMessage `json:"liabilityForm,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func (s Session) EndsAt() time.Time {
	return s.AppointmentAt.Add(time.Duration(s.DurationMinutes) * time.Minute)
}

// NewSession is the input for creating a booking record.
type NewSession struct {
	UserID          string
	SessionTypeID   int64
	AppointmentAt   time.Time
	DurationMinutes int
	FirstName       string
	LastName        string
	LiabilityForm   json.RawMessage
}

// SessionUpdate applies only the non-nil fields.
type SessionUpdate struct {
	Status          *SessionStatus
	CalendarEventID *string
}
