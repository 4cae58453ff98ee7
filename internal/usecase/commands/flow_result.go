package commands

import (
	"encoding/json"
	"time"

	"session-booking/internal/domain/booking"
	"session-booking/internal/domain/flow"
	"session-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// FlowResult is what every saga operation hands back to the caller. Business failures
// are reported here with Action ERROR instead of as Go errors.
type FlowResult struct {
	Action            flow.ActionKind       `json:"action"`
	NextStep          flow.Step             `json:"nextStep"`
	Token             string                `json:"token,omitempty"`
	ErrorCode         ErrorCode             `json:"errorCode,omitempty"`
	Message           string                `json:"message,omitempty"`
	Success           bool                  `json:"success"`
	SessionID         *uuid.UUID            `json:"sessionId,omitempty"`
	SessionStatus     booking.SessionStatus `json:"sessionStatus,omitempty"`
	CalendarEventID   string                `json:"calendarEventId,omitempty"`
	AppointmentAt     *time.Time            `json:"appointmentAt,omitempty"`
	InviteTokens      []string              `json:"inviteTokens,omitempty"`
	NeedsManualReview bool                  `json:"needsManualReview,omitempty"`

	// Replayed is set when the result was served from the idempotency store.
	Replayed bool `json:"-"`
	// Raw holds the exact stored bytes for replays and fresh commits.
	Raw json.RawMessage `json:"-"`
}

func (r *FlowResult) IsError() bool {
	return r.Action == flow.ActionError
}

// ErrorCode classifies an ERROR result so callers need not match on Message.
type ErrorCode string

const (
	ErrorCodeValidation   ErrorCode = "VALIDATION"
	ErrorCodeBusinessRule ErrorCode = "BUSINESS_RULE_VIOLATION"
)

// errorResult builds an ERROR result. kind is errs.ErrBusinessRule or errs.ErrValidation.
func errorResult(step flow.Step, kind error, message string) *FlowResult {
	code := ErrorCodeValidation
	if errs.Is(kind, errs.ErrBusinessRule) {
		code = ErrorCodeBusinessRule
	}
	return &FlowResult{Action: flow.ActionError, NextStep: step, ErrorCode: code, Message: message}
}

func redirectResult(step flow.Step, token string) *FlowResult {
	return &FlowResult{Action: flow.ActionRedirect, NextStep: step, Token: token, Success: true}
}

func completeResult() *FlowResult {
	return &FlowResult{Action: flow.ActionComplete, NextStep: flow.StepCompleted, Success: true}
}

// Messages surfaced to users on ERROR results.
const (
	MsgSlotTaken           = "slot was taken"
	MsgSlotUnavailable     = "slot is not available"
	MsgUnknownSessionType  = "unknown session type"
	MsgInviteInvalid       = "invite invalid or already processed"
	MsgInviteNotFound      = "invite not found"
	MsgOwnInvite           = "you cannot accept your own invite"
	MsgStepMismatch        = "step does not match the flow state"
	MsgWaiverIncomplete    = "first name, last name and liability form are required"
	MsgFlowCompleted       = "flow already completed"
	MsgUseFinalize         = "this step is committed with finalize"
	MsgNotFinalizable      = "flow is not ready to finalize"
	MsgInviteLimitReached  = "invite limit reached for this session"
	MsgUnknownAction       = "unknown action"
	MsgSessionNotConfirmed = "the booking for this invite is not active"
)
