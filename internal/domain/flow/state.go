package flow

import (
	"encoding/json"
	"time"

	"session-booking/internal/pkg/errs"
)

type Type string

const (
	TypePrimaryBooking Type = "primary_booking"
	TypeFriendInvite   Type = "friend_invite"
)

type Step string

const (
	StepInitial               Step = "initial"
	StepAwaitingWaiver        Step = "awaiting_waiver"
	StepAwaitingFriendInvites Step = "awaiting_friend_invites"
	StepFinalizeBooking       Step = "finalize_booking"
	StepCompleted             Step = "completed"
	StepAwaitingJoinDecision  Step = "awaiting_join_decision"
	StepAwaitingFriendWaiver  Step = "awaiting_friend_waiver"
)

// State is the whole saga state. It only ever travels inside a signed token;
// every step produces a new State rather than mutating one.
type State struct {
	UserID                 string          `json:"userId"`
	FlowType               Type            `json:"flowType"`
	CurrentStep            Step            `json:"currentStep"`
	SessionTypeID          int64           `json:"sessionTypeId"`
	AppointmentDateTimeISO string          `json:"appointmentDateTimeISO"`
	PlaceholderID          string          `json:"placeholderId,omitempty"`
	InviteToken            string          `json:"inviteToken,omitempty"`
	ParentSessionID        string          `json:"parentSessionId,omitempty"`
	FirstName              string          `json:"firstName,omitempty"`
	LastName               string          `json:"lastName,omitempty"`
	LiabilityFormData      json.RawMessage `json:"liabilityFormData,omitempty"`
	ExpiresAt              time.Time       `json:"expiresAt"`
}

func (s State) Appointment() (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s.AppointmentDateTimeISO)
	if err != nil {
		return time.Time{}, errs.Mark(errs.Wrap(err, "parse appointment time"), errs.ErrValidation)
	}
	return t, nil
}

// Advance returns a copy of s positioned at step.
func (s State) Advance(step Step) State {
	next := s
	next.CurrentStep = step
	next.ExpiresAt = time.Time{}
	return next
}

// HasWaiver reports whether identity and liability fields have all been collected.
func (s State) HasWaiver() bool {
	return s.FirstName != "" && s.LastName != "" && len(s.LiabilityFormData) > 0 && string(s.LiabilityFormData) != "null"
}

func FormatAppointment(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
