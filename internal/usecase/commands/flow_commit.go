package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"session-booking/internal/domain/booking"
	"session-booking/internal/domain/flow"
	"session-booking/internal/pkg/errs"
	"session-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	endpointFinalize = "POST /api/flows/finalize"
	endpointWaiver   = "POST /api/flows/continue:awaiting_waiver"
)

type waiverData struct {
	FirstName         string          `json:"firstName"`
	LastName          string          `json:"lastName"`
	LiabilityFormData json.RawMessage `json:"liabilityFormData"`
}

func (d waiverData) complete() bool {
	return strings.TrimSpace(d.FirstName) != "" &&
		strings.TrimSpace(d.LastName) != "" &&
		len(d.LiabilityFormData) > 0 && string(d.LiabilityFormData) != "null"
}

func (u *flowUseCaseImpl) submitPrimaryWaiver(
	ctx context.Context,
	token string,
	state flow.State,
	st booking.SessionType,
	data json.RawMessage,
) (*FlowResult, error) {
	var w waiverData
	if err := json.Unmarshal(data, &w); err != nil || !w.complete() {
		return errorResult(state.CurrentStep, errs.ErrValidation, MsgWaiverIncomplete), nil
	}
	state.FirstName = strings.TrimSpace(w.FirstName)
	state.LastName = strings.TrimSpace(w.LastName)
	state.LiabilityFormData = w.LiabilityFormData

	after := flow.DetermineNextStep(state, st)
	if after.Next == flow.StepFinalizeBooking {
		// A signed waiver is the commit point; there is no separate finalize call for it.
		after = flow.DetermineNextStep(state.Advance(flow.StepFinalizeBooking), st)
	}
	return u.commit(ctx, token, endpointWaiver, state, st, after)
}

// commit is the single write path for primary bookings. The idempotency claim keyed by
// the token hash is taken first, and the slot re-check runs before the first write.
func (u *flowUseCaseImpl) commit(
	ctx context.Context,
	token, endpoint string,
	state flow.State,
	st booking.SessionType,
	after flow.Transition,
) (*FlowResult, error) {
	key := flow.TokenKey(token)
	now := u.clock.Now()

	claim, err := u.idempotency.Claim(ctx, key, endpoint, now.Add(u.cfg.Flow.IdempotencyLease))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if !claim.Acquired {
		return u.replay(claim.Existing)
	}

	result, err := u.commitClaimed(ctx, key, state, st, after)
	if errs.Is(err, errs.ErrConsistency) {
		return nil, err
	}
	if err != nil || result.IsError() {
		if releaseErr := u.idempotency.Release(ctx, key); releaseErr != nil {
			u.logger.Error("failed to release idempotency claim", "error", releaseErr.Error(), "key", key)
		}
	}
	return result, err
}

func (u *flowUseCaseImpl) replay(existing *shared.IdempotencyRecord) (*FlowResult, error) {
	if existing == nil {
		return nil, errs.Mark(errs.New("claim refused without an existing record"), errs.ErrIdempotencyCheckFailed)
	}
	if existing.Status != shared.IdempotencyCompleted {
		return nil, errs.Mark(errs.New("finalization already in progress"), errs.ErrConflict)
	}

	var result FlowResult
	if err := json.Unmarshal(existing.Response, &result); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode stored flow result"), errs.ErrIdempotencyCheckFailed)
	}
	result.Replayed = true
	result.Raw = existing.Response
	return &result, nil
}

func (u *flowUseCaseImpl) commitClaimed(
	ctx context.Context,
	key string,
	state flow.State,
	st booking.SessionType,
	after flow.Transition,
) (*FlowResult, error) {
	appointment, err := state.Appointment()
	if err != nil {
		return errorResult(state.CurrentStep, errs.ErrValidation, err.Error()), nil
	}

	if state.PlaceholderID != "" {
		if err := u.events.DeleteEvent(ctx, state.PlaceholderID); err != nil {
			return nil, errs.Mark(errs.Wrap(err, "delete placeholder hold"), errs.ErrExternalService)
		}
	}

	verdict, err := u.slots.CheckSlot(ctx, appointment, st.DurationMinutes)
	if err != nil {
		return nil, err
	}
	if !verdict.Available() {
		u.logger.Info("slot taken before commit", "start", appointment, "reason", string(verdict.Reason))
		return errorResult(state.CurrentStep, errs.ErrBusinessRule, MsgSlotTaken), nil
	}

	session, err := u.bookings.CreateSession(ctx, booking.NewSession{
		UserID:          state.UserID,
		SessionTypeID:   st.ID,
		AppointmentAt:   appointment,
		DurationMinutes: st.DurationMinutes,
		FirstName:       state.FirstName,
		LastName:        state.LastName,
		LiabilityForm:   state.LiabilityFormData,
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "create session"), errs.ErrDatabaseOperationFailed)
	}

	status := booking.SessionConfirmed
	eventID, eventErr := u.events.CreateEvent(ctx, shared.EventInput{
		Summary:     u.eventSummary(st, state),
		Description: eventDescription(state, session.ID),
		Start:       appointment,
		End:         appointment.Add(time.Duration(st.DurationMinutes) * time.Minute),
	})
	if eventErr != nil {
		status = booking.SessionNeedsManualReview
		consistencyErr := errs.Mark(errs.Wrap(eventErr, "create calendar event"), errs.ErrConsistency)
		u.logger.Error("booking needs manual review", "error", consistencyErr.Error(), "session_id", session.ID.String())
		u.notifier.NotifyAdmin(ctx, fmt.Sprintf(
			"Session %s at %s was saved but its calendar event could not be created. Manual review required.",
			session.ID, appointment.Format(time.RFC3339)))
	}

	result, err := u.committedResult(state, after, session, status, eventID)
	if err != nil {
		return nil, err
	}

	sessionID := session.ID
	retainUntil := u.clock.Now().Add(u.cfg.Flow.IdempotencyRetention)
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		upd := booking.SessionUpdate{Status: &status}
		if eventID != "" {
			upd.CalendarEventID = &eventID
		}
		if err := tx.Bookings().UpdateSession(ctx, sessionID, upd); err != nil {
			return err
		}
		return tx.Idempotency().Complete(ctx, key, result.Raw, &sessionID, retainUntil)
	})
	if err != nil {
		u.notifier.NotifyAdmin(ctx, fmt.Sprintf("Session %s could not be confirmed locally: %v", sessionID, err))
		result, err = u.recordForReview(ctx, key, state, after, session, eventID, err)
		if err != nil {
			return nil, err
		}
		status = result.SessionStatus
	}

	if status == booking.SessionConfirmed {
		u.notifier.NotifyUser(ctx, state.UserID, fmt.Sprintf("Your %s is confirmed for %s.", st.Label, appointment.Format(time.RFC1123)))
		u.notifier.NotifyAdmin(ctx, fmt.Sprintf("New booking: %s for %s at %s.", st.Label, displayName(state), appointment.Format(time.RFC3339)))
	} else {
		u.notifier.NotifyUser(ctx, state.UserID, fmt.Sprintf("Your %s for %s is booked. An admin will confirm the calendar details shortly.", st.Label, appointment.Format(time.RFC1123)))
	}
	return result, nil
}

// recordForReview runs after the confirming transaction failed. It writes the
// needs_manual_review status and the stored result as separate statements so a retry
// replays the booking instead of colliding with its own calendar event. When even the
// status cannot be written the event is removed and the claim released, so the user
// can simply try again.
func (u *flowUseCaseImpl) recordForReview(
	ctx context.Context,
	key string,
	state flow.State,
	after flow.Transition,
	session booking.Session,
	eventID string,
	txErr error,
) (*FlowResult, error) {
	sessionID := session.ID
	status := booking.SessionNeedsManualReview
	upd := booking.SessionUpdate{Status: &status}
	if eventID != "" {
		upd.CalendarEventID = &eventID
	}

	if err := u.bookings.UpdateSession(ctx, sessionID, upd); err != nil {
		u.logger.Error("failed to flag session for review", "error", err.Error(), "session_id", sessionID.String())
		if eventID != "" {
			if delErr := u.events.DeleteEvent(ctx, eventID); delErr != nil {
				u.logger.Error("failed to remove unconfirmed event", "error", delErr.Error(), "event_id", eventID)
				return nil, errs.Mark(errs.Wrap(txErr, "confirm session"), errs.ErrConsistency)
			}
		}
		return nil, errs.Mark(errs.Wrap(txErr, "confirm session"), errs.ErrDatabaseOperationFailed)
	}

	result, err := u.committedResult(state, after, session, status, eventID)
	if err != nil {
		return nil, err
	}
	retainUntil := u.clock.Now().Add(u.cfg.Flow.IdempotencyRetention)
	if err := u.idempotency.Complete(ctx, key, result.Raw, &sessionID, retainUntil); err != nil {
		// The claim stays until its lease runs out; the session is already flagged.
		return nil, errs.Mark(errs.Wrap(err, "store flow result"), errs.ErrConsistency)
	}
	return result, nil
}

func (u *flowUseCaseImpl) committedResult(
	state flow.State,
	after flow.Transition,
	session booking.Session,
	status booking.SessionStatus,
	eventID string,
) (*FlowResult, error) {
	sessionID := session.ID
	appointment := session.AppointmentAt.UTC()
	result := &FlowResult{
		Action:            after.Action,
		NextStep:          after.Next,
		Success:           true,
		SessionID:         &sessionID,
		SessionStatus:     status,
		CalendarEventID:   eventID,
		AppointmentAt:     &appointment,
		NeedsManualReview: status == booking.SessionNeedsManualReview,
	}
	if status == booking.SessionNeedsManualReview {
		result.Message = "booking saved; an admin has been notified to finish the calendar entry"
	}

	if after.Action == flow.ActionRedirect {
		next := state.Advance(after.Next)
		next.PlaceholderID = ""
		next.ParentSessionID = sessionID.String()
		token, err := u.codec.Encode(next)
		if err != nil {
			return nil, err
		}
		result.Token = token
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return nil, errs.Wrap(err, "encode flow result")
	}
	result.Raw = raw
	return result, nil
}

func (u *flowUseCaseImpl) eventSummary(st booking.SessionType, state flow.State) string {
	return fmt.Sprintf("%s: %s (%s)", u.cfg.Calendar.EventTitlePrefix, st.Label, displayName(state))
}

func eventDescription(state flow.State, sessionID uuid.UUID) string {
	return fmt.Sprintf("Booked by %s\nSession %s", displayName(state), sessionID)
}

func displayName(state flow.State) string {
	if state.FirstName != "" || state.LastName != "" {
		return strings.TrimSpace(state.FirstName + " " + state.LastName)
	}
	return state.UserID
}
