package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"session-booking/internal/domain/booking"
	"session-booking/internal/domain/flow"
	"session-booking/internal/pkg/clock"
	"session-booking/internal/pkg/config"
	"session-booking/internal/pkg/errs"
	"session-booking/internal/usecase/shared"
)

type StartPrimaryInput struct {
	UserID              string
	SessionTypeID       int64
	AppointmentDateTime time.Time
}

type StartInviteInput struct {
	InviteToken  string
	FriendUserID string
}

type ContinueInput struct {
	Token  string
	StepID flow.Step
	Data   json.RawMessage
}

type FlowCommands interface {
	StartPrimaryFlow(ctx context.Context, in StartPrimaryInput) (*FlowResult, error)
	StartInviteFlow(ctx context.Context, in StartInviteInput) (*FlowResult, error)
	ContinueFlow(ctx context.Context, in ContinueInput) (*FlowResult, error)
	Finalize(ctx context.Context, token string) (*FlowResult, error)
}

type flowUseCaseImpl struct {
	codec        FlowCodec
	slots        SlotChecker
	sessionTypes shared.SessionTypeStore
	bookings     shared.BookingStore
	idempotency  shared.IdempotencyStore
	events       shared.CalendarEvents
	notifier     shared.Notifier
	uow          shared.UnitOfWork
	clock        clock.Clock
	cfg          config.Config
	logger       *slog.Logger
}

func NewFlowUseCase(
	codec FlowCodec,
	slots SlotChecker,
	sessionTypes shared.SessionTypeStore,
	bookings shared.BookingStore,
	idempotency shared.IdempotencyStore,
	events shared.CalendarEvents,
	notifier shared.Notifier,
	uow shared.UnitOfWork,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) FlowCommands {
	return &flowUseCaseImpl{
		codec:        codec,
		slots:        slots,
		sessionTypes: sessionTypes,
		bookings:     bookings,
		idempotency:  idempotency,
		events:       events,
		notifier:     notifier,
		uow:          uow,
		clock:        clk,
		cfg:          cfg,
		logger:       logger,
	}
}

func (u *flowUseCaseImpl) StartPrimaryFlow(ctx context.Context, in StartPrimaryInput) (*FlowResult, error) {
	if in.UserID == "" || in.AppointmentDateTime.IsZero() {
		return errorResult(flow.StepInitial, errs.ErrValidation, "userId and appointmentDateTime are required"), nil
	}

	st, result, err := u.loadSessionType(ctx, in.SessionTypeID, flow.StepInitial)
	if result != nil || err != nil {
		return result, err
	}
	if !st.Active {
		return errorResult(flow.StepInitial, errs.ErrValidation, MsgUnknownSessionType), nil
	}

	verdict, err := u.slots.CheckSlot(ctx, in.AppointmentDateTime, st.DurationMinutes)
	if err != nil {
		return nil, err
	}
	if !verdict.Available() {
		return errorResult(flow.StepInitial, errs.ErrBusinessRule, MsgSlotUnavailable+": "+string(verdict.Reason)), nil
	}

	state := flow.State{
		UserID:                 in.UserID,
		FlowType:               flow.TypePrimaryBooking,
		CurrentStep:            flow.StepInitial,
		SessionTypeID:          st.ID,
		AppointmentDateTimeISO: flow.FormatAppointment(in.AppointmentDateTime),
	}
	t := flow.DetermineNextStep(state, st)
	if t.Action == flow.ActionError {
		return errorResult(state.CurrentStep, errs.ErrValidation, t.Reason), nil
	}
	state = state.Advance(t.Next)

	// A waiver step keeps the user away long enough for someone else to grab the slot.
	if st.RequiresWaiver() {
		state.PlaceholderID = u.placeHold(ctx, st, in.AppointmentDateTime)
	}

	token, err := u.codec.Encode(state)
	if err != nil {
		return nil, err
	}
	return redirectResult(state.CurrentStep, token), nil
}

func (u *flowUseCaseImpl) ContinueFlow(ctx context.Context, in ContinueInput) (*FlowResult, error) {
	state, err := u.codec.Decode(in.Token)
	if err != nil {
		return nil, err
	}
	if in.StepID != state.CurrentStep {
		return errorResult(state.CurrentStep, errs.ErrValidation, MsgStepMismatch), nil
	}

	st, result, err := u.loadSessionType(ctx, state.SessionTypeID, state.CurrentStep)
	if result != nil || err != nil {
		return result, err
	}

	switch state.FlowType {
	case flow.TypePrimaryBooking:
		switch state.CurrentStep {
		case flow.StepAwaitingWaiver:
			return u.submitPrimaryWaiver(ctx, in.Token, state, st, in.Data)
		case flow.StepAwaitingFriendInvites:
			return u.handleInvites(ctx, state, st, in.Data)
		case flow.StepFinalizeBooking:
			return errorResult(state.CurrentStep, errs.ErrValidation, MsgUseFinalize), nil
		}
	case flow.TypeFriendInvite:
		switch state.CurrentStep {
		case flow.StepAwaitingJoinDecision:
			return u.handleJoinDecision(ctx, state, st, in.Data)
		case flow.StepAwaitingFriendWaiver:
			return u.submitFriendWaiver(ctx, state, st, in.Data)
		}
	}
	if state.CurrentStep == flow.StepCompleted {
		return errorResult(state.CurrentStep, errs.ErrBusinessRule, MsgFlowCompleted), nil
	}
	return errorResult(state.CurrentStep, errs.ErrValidation, "step "+string(state.CurrentStep)+" cannot be continued"), nil
}

// Finalize commits a primary booking that has no waiver gate. Calling it again with the
// same token returns the stored result without repeating any write.
func (u *flowUseCaseImpl) Finalize(ctx context.Context, token string) (*FlowResult, error) {
	state, err := u.codec.Decode(token)
	if err != nil {
		return nil, err
	}
	if state.FlowType != flow.TypePrimaryBooking || state.CurrentStep != flow.StepFinalizeBooking {
		return errorResult(state.CurrentStep, errs.ErrValidation, MsgNotFinalizable), nil
	}

	st, result, err := u.loadSessionType(ctx, state.SessionTypeID, state.CurrentStep)
	if result != nil || err != nil {
		return result, err
	}
	return u.commit(ctx, token, endpointFinalize, state, st, flow.DetermineNextStep(state, st))
}

func (u *flowUseCaseImpl) loadSessionType(ctx context.Context, id int64, step flow.Step) (booking.SessionType, *FlowResult, error) {
	st, err := u.sessionTypes.FindSessionType(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return booking.SessionType{}, errorResult(step, errs.ErrValidation, MsgUnknownSessionType), nil
		}
		return booking.SessionType{}, nil, errs.Mark(errs.Wrap(err, "load session type"), errs.ErrDatabaseOperationFailed)
	}
	return st, nil, nil
}

func (u *flowUseCaseImpl) placeHold(ctx context.Context, st booking.SessionType, start time.Time) string {
	id, err := u.events.CreateEvent(ctx, shared.EventInput{
		Summary:     u.cfg.Calendar.HoldTitlePrefix + " " + st.Label,
		Description: "Held while the booking is being completed.",
		Start:       start,
		End:         start.Add(time.Duration(st.DurationMinutes) * time.Minute),
		// The hold never outlives the token that could still commit it.
		HoldExpiresAt: u.clock.Now().Add(flow.TokenTTL),
	})
	if err != nil {
		u.logger.Warn("failed to create placeholder hold", "error", err.Error(), "start", start)
		return ""
	}
	return id
}
