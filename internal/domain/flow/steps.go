package flow

import "session-booking/internal/domain/booking"

type ActionKind string

const (
	// The caller must render NextStep and come back with the new token.
	ActionRedirect ActionKind = "REDIRECT"
	ActionComplete ActionKind = "COMPLETE"
	ActionError    ActionKind = "ERROR"
)

type Transition struct {
	Next   Step
	Action ActionKind
	Reason string
}

type transitionFunc func(st booking.SessionType) Transition

func redirect(step Step) Transition { return Transition{Next: step, Action: ActionRedirect} }

func complete() Transition { return Transition{Next: StepCompleted, Action: ActionComplete} }

// transitions lists every step each flow type can be in. A (type, step) pair that is
// absent here is not reachable and DetermineNextStep answers it with ActionError.
var transitions = map[Type]map[Step]transitionFunc{
	TypePrimaryBooking: {
		StepInitial: func(st booking.SessionType) Transition {
			if st.RequiresWaiver() {
				return redirect(StepAwaitingWaiver)
			}
			return redirect(StepFinalizeBooking)
		},
		StepAwaitingWaiver: func(st booking.SessionType) Transition {
			if st.AllowsGroupInvites {
				return redirect(StepAwaitingFriendInvites)
			}
			return redirect(StepFinalizeBooking)
		},
		StepFinalizeBooking: func(st booking.SessionType) Transition {
			if st.AllowsGroupInvites && !st.RequiresWaiver() {
				return redirect(StepAwaitingFriendInvites)
			}
			return complete()
		},
		StepAwaitingFriendInvites: func(booking.SessionType) Transition { return complete() },
		StepCompleted:             func(booking.SessionType) Transition { return complete() },
	},
	TypeFriendInvite: {
		StepAwaitingJoinDecision: func(st booking.SessionType) Transition {
			if st.RequiresWaiver() {
				return redirect(StepAwaitingFriendWaiver)
			}
			return complete()
		},
		StepAwaitingFriendWaiver: func(booking.SessionType) Transition { return complete() },
		StepCompleted:            func(booking.SessionType) Transition { return complete() },
	},
}

// DetermineNextStep is the pure transition function of the booking saga. For
// awaiting_join_decision it answers the accept branch; a decline always completes.
func DetermineNextStep(s State, st booking.SessionType) Transition {
	steps, ok := transitions[s.FlowType]
	if !ok {
		return Transition{Next: s.CurrentStep, Action: ActionError, Reason: "unknown flow type " + string(s.FlowType)}
	}
	fn, ok := steps[s.CurrentStep]
	if !ok {
		return Transition{Next: s.CurrentStep, Action: ActionError, Reason: "step " + string(s.CurrentStep) + " is not part of " + string(s.FlowType)}
	}
	return fn(st)
}

func IsReachable(t Type, step Step) bool {
	_, ok := transitions[t][step]
	return ok
}
