package commands

import (
	"context"
	"time"

	"session-booking/internal/domain/availability"
	"session-booking/internal/domain/flow"
)

// SlotChecker is the point-in-time availability check shared with slot listing.
type SlotChecker interface {
	CheckSlot(ctx context.Context, start time.Time, durationMinutes int) (availability.Verdict, error)
}

// FlowCodec is satisfied by *flow.Codec.
type FlowCodec interface {
	Encode(s flow.State) (string, error)
	Decode(token string) (flow.State, error)
}
