package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"session-booking/internal/domain/booking"
	"session-booking/internal/domain/flow"
	"session-booking/internal/pkg/errs"
	"session-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	actionCreateInvites = "create_invites"
	actionDone          = "done"

	decisionAccept  = "accept"
	decisionDecline = "decline"
)

type invitesData struct {
	Action string `json:"action"`
	Count  int    `json:"count"`
}

type joinDecisionData struct {
	Decision string `json:"decision"`
}

func (u *flowUseCaseImpl) StartInviteFlow(ctx context.Context, in StartInviteInput) (*FlowResult, error) {
	step := flow.StepAwaitingJoinDecision
	if in.InviteToken == "" || in.FriendUserID == "" {
		return errorResult(step, errs.ErrValidation, "inviteToken and friendUserId are required"), nil
	}

	invite, err := u.bookings.FindInvite(ctx, in.InviteToken)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return errorResult(step, errs.ErrBusinessRule, MsgInviteNotFound), nil
		}
		return nil, errs.Mark(errs.Wrap(err, "find invite"), errs.ErrDatabaseOperationFailed)
	}
	if !invite.Status.IsPreWaiver() {
		return errorResult(step, errs.ErrBusinessRule, MsgInviteInvalid), nil
	}

	session, err := u.bookings.FindSession(ctx, invite.ParentSessionID)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "find parent session"), errs.ErrDatabaseOperationFailed)
	}
	if session.Status == booking.SessionPendingEvent {
		return errorResult(step, errs.ErrBusinessRule, MsgSessionNotConfirmed), nil
	}
	if session.UserID == in.FriendUserID {
		return errorResult(step, errs.ErrBusinessRule, MsgOwnInvite), nil
	}

	if invite.Status == booking.InvitePending {
		viewed := booking.InviteViewedByFriend
		_, err := u.bookings.UpdateInvite(ctx, invite.Token, booking.InviteUpdate{
			Status:          &viewed,
			RequireStatusIn: []booking.InviteStatus{booking.InvitePending},
		})
		if err != nil && !errs.Is(err, errs.ErrConflict) {
			u.logger.Warn("failed to mark invite viewed", "error", err.Error(), "invite", invite.Token)
		}
	}

	state := flow.State{
		UserID:                 in.FriendUserID,
		FlowType:               flow.TypeFriendInvite,
		CurrentStep:            step,
		SessionTypeID:          session.SessionTypeID,
		AppointmentDateTimeISO: flow.FormatAppointment(session.AppointmentAt),
		InviteToken:            invite.Token,
		ParentSessionID:        session.ID.String(),
	}
	token, err := u.codec.Encode(state)
	if err != nil {
		return nil, err
	}
	return redirectResult(step, token), nil
}

func (u *flowUseCaseImpl) handleInvites(ctx context.Context, state flow.State, st booking.SessionType, data json.RawMessage) (*FlowResult, error) {
	var in invitesData
	if err := json.Unmarshal(data, &in); err != nil {
		return errorResult(state.CurrentStep, errs.ErrValidation, MsgUnknownAction), nil
	}

	t := flow.DetermineNextStep(state, st)
	switch in.Action {
	case actionDone:
		return completeResult(), nil
	case actionCreateInvites:
	default:
		return errorResult(state.CurrentStep, errs.ErrValidation, MsgUnknownAction), nil
	}

	parentID, err := uuid.Parse(state.ParentSessionID)
	if err != nil {
		return errorResult(state.CurrentStep, errs.ErrBusinessRule, "flow has no booking to invite to"), nil
	}
	if in.Count <= 0 {
		return errorResult(state.CurrentStep, errs.ErrValidation, "count must be positive"), nil
	}

	existing, err := u.bookings.CountInvitesByStatus(ctx, parentID)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "count invites"), errs.ErrDatabaseOperationFailed)
	}
	if existing+in.Count > st.MaxInvites() {
		return errorResult(state.CurrentStep, errs.ErrBusinessRule, MsgInviteLimitReached), nil
	}

	tokens := make([]string, 0, in.Count)
	for range in.Count {
		invite, err := u.bookings.CreateInvite(ctx, parentID, booking.NewInviteToken())
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "create invite"), errs.ErrDatabaseOperationFailed)
		}
		tokens = append(tokens, invite.Token)
	}

	result := &FlowResult{Action: t.Action, NextStep: t.Next, Success: true, InviteTokens: tokens}
	return result, nil
}

func (u *flowUseCaseImpl) handleJoinDecision(ctx context.Context, state flow.State, st booking.SessionType, data json.RawMessage) (*FlowResult, error) {
	var in joinDecisionData
	if err := json.Unmarshal(data, &in); err != nil {
		return errorResult(state.CurrentStep, errs.ErrValidation, MsgUnknownAction), nil
	}

	switch in.Decision {
	case decisionDecline:
		declined := booking.InviteDeclined
		if _, err := u.bookings.UpdateInvite(ctx, state.InviteToken, booking.InviteUpdate{Status: &declined}); err != nil {
			return nil, errs.Mark(errs.Wrap(err, "decline invite"), errs.ErrDatabaseOperationFailed)
		}
		return completeResult(), nil
	case decisionAccept:
	default:
		return errorResult(state.CurrentStep, errs.ErrValidation, MsgUnknownAction), nil
	}

	accepted := booking.InviteAcceptedByFriend
	friend := state.UserID
	_, err := u.bookings.UpdateInvite(ctx, state.InviteToken, booking.InviteUpdate{
		Status:          &accepted,
		FriendUserID:    &friend,
		RequireStatusIn: booking.PreWaiverStatuses,
	})
	if err != nil {
		if errs.IsAny(err, errs.ErrConflict, errs.ErrNotFound) {
			return errorResult(state.CurrentStep, errs.ErrBusinessRule, MsgInviteInvalid), nil
		}
		return nil, errs.Mark(errs.Wrap(err, "accept invite"), errs.ErrDatabaseOperationFailed)
	}

	t := flow.DetermineNextStep(state, st)
	if t.Action != flow.ActionRedirect {
		return completeResult(), nil
	}
	token, err := u.codec.Encode(state.Advance(t.Next))
	if err != nil {
		return nil, err
	}
	return redirectResult(t.Next, token), nil
}

// submitFriendWaiver only succeeds from a pre-waiver invite status, so a replayed or
// stale link is rejected rather than applied twice.
func (u *flowUseCaseImpl) submitFriendWaiver(ctx context.Context, state flow.State, st booking.SessionType, data json.RawMessage) (*FlowResult, error) {
	var w waiverData
	if err := json.Unmarshal(data, &w); err != nil || !w.complete() {
		return errorResult(state.CurrentStep, errs.ErrValidation, MsgWaiverIncomplete), nil
	}
	parentID, err := uuid.Parse(state.ParentSessionID)
	if err != nil {
		return errorResult(state.CurrentStep, errs.ErrBusinessRule, MsgInviteInvalid), nil
	}

	completed := booking.InviteWaiverCompletedByFriend
	first, last := strings.TrimSpace(w.FirstName), strings.TrimSpace(w.LastName)
	friend := state.UserID

	var invite booking.Invite
	var completedCount int
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		invite, err = tx.Bookings().UpdateInvite(ctx, state.InviteToken, booking.InviteUpdate{
			Status:          &completed,
			FriendUserID:    &friend,
			FriendFirstName: &first,
			FriendLastName:  &last,
			LiabilityForm:   w.LiabilityFormData,
			RequireStatusIn: booking.PreWaiverStatuses,
		})
		if err != nil {
			return err
		}
		completedCount, err = tx.Bookings().CountInvitesByStatus(ctx, parentID, booking.InviteWaiverCompletedByFriend)
		return err
	})
	if err != nil {
		if errs.IsAny(err, errs.ErrConflict, errs.ErrNotFound) {
			return errorResult(state.CurrentStep, errs.ErrBusinessRule, MsgInviteInvalid), nil
		}
		return nil, errs.Mark(errs.Wrap(err, "complete friend waiver"), errs.ErrDatabaseOperationFailed)
	}

	session, err := u.bookings.FindSession(ctx, parentID)
	if err != nil {
		u.logger.Warn("failed to load parent session", "error", err.Error(), "session_id", parentID.String())
	} else {
		u.annotateEvent(ctx, session, st, invite, completedCount == 1)
		u.notifier.NotifyUser(ctx, session.UserID, fmt.Sprintf("%s has joined your %s.", invite.FriendName(), st.Label))
	}
	u.notifier.NotifyUser(ctx, friend, fmt.Sprintf("You're in for the %s.", st.Label))

	t := flow.DetermineNextStep(state, st)
	if t.Action == flow.ActionError {
		return errorResult(state.CurrentStep, errs.ErrValidation, t.Reason), nil
	}
	return completeResult(), nil
}

// annotateEvent adds the friend to the calendar event. The first completed waiver also
// promotes the title to a group title. Failures are logged and do not fail the flow.
func (u *flowUseCaseImpl) annotateEvent(ctx context.Context, session booking.Session, st booking.SessionType, invite booking.Invite, promote bool) {
	if session.CalendarEventID == "" {
		return
	}
	event, err := u.events.GetEvent(ctx, session.CalendarEventID)
	if err != nil {
		u.logger.Warn("failed to load session event", "error", err.Error(), "event_id", session.CalendarEventID)
		return
	}

	description := strings.TrimRight(event.Description, "\n") + "\nGuest: " + invite.FriendName()
	patch := shared.EventPatch{Description: &description}
	if promote {
		title := u.groupTitle(event.Summary, st)
		patch.Summary = &title
	}
	if err := u.events.UpdateEvent(ctx, session.CalendarEventID, patch); err != nil {
		u.logger.Warn("failed to update session event", "error", err.Error(), "event_id", session.CalendarEventID)
	}
}

func (u *flowUseCaseImpl) groupTitle(summary string, st booking.SessionType) string {
	prefix := "Group " + u.cfg.Calendar.EventTitlePrefix
	if strings.HasPrefix(summary, prefix) {
		return summary
	}
	return fmt.Sprintf("%s: %s", prefix, strings.TrimPrefix(summary, u.cfg.Calendar.EventTitlePrefix+": "))
}
