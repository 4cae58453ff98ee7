package shared

import (
	"time"

	"github.com/google/uuid"
)

type IdempotencyStatus string

const (
	IdempotencyProcessing IdempotencyStatus = "processing"
	IdempotencyCompleted  IdempotencyStatus = "completed"
)

type IdempotencyRecord struct {
	Key             string
	Endpoint        string
	Status          IdempotencyStatus
	Response        []byte
	ResultSessionID *uuid.UUID
	ExpiresAt       time.Time
}

// ClaimResult reports whether the caller now owns the key. When it does not,
// Existing holds the record that blocked the claim.
type ClaimResult struct {
	Acquired bool
	Existing *IdempotencyRecord
}

// TimeRange is one busy span as reported by the calendar provider.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

type EventInput struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Timezone    string
	// HoldExpiresAt marks the event as a placeholder hold. Zero for real bookings.
	HoldExpiresAt time.Time
}

// EventPatch changes only the non-nil fields.
type EventPatch struct {
	Summary     *string
	Description *string
}

type CalendarEvent struct {
	ID            string
	Summary       string
	Description   string
	Start         time.Time
	End           time.Time
	HoldExpiresAt time.Time
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int
}
