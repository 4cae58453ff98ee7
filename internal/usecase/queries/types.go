package queries

import (
	"time"

	"github.com/google/uuid"
)

// SessionView is the admin read model of a booking with its invites.
type SessionView struct {
	ID              uuid.UUID    `json:"id"`
	UserID          string       `json:"user_id"`
	SessionTypeID   int64        `json:"session_type_id"`
	SessionLabel    string       `json:"session_label"`
	AppointmentAt   time.Time    `json:"appointment_at"`
	DurationMinutes int          `json:"duration_minutes"`
	Status          string       `json:"status"`
	CalendarEventID *string      `json:"calendar_event_id,omitempty"`
	FirstName       *string      `json:"first_name,omitempty"`
	LastName        *string      `json:"last_name,omitempty"`
	Invites         []InviteView `json:"invites"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

type SessionListItem struct {
	ID            uuid.UUID `json:"id"`
	UserID        string    `json:"user_id"`
	SessionLabel  string    `json:"session_label"`
	AppointmentAt time.Time `json:"appointment_at"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type InviteView struct {
	Token        string    `json:"invite_token"`
	Status       string    `json:"status"`
	FriendUserID *string   `json:"friend_user_id,omitempty"`
	FriendName   *string   `json:"friend_name,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type SessionFilters struct {
	Status *string
}

// SlotsView lists bookable start instants for one query.
type SlotsView struct {
	StartDate       string      `json:"start_date"`
	EndDate         string      `json:"end_date"`
	DurationMinutes int         `json:"duration_minutes"`
	Slots           []time.Time `json:"slots"`
}
