package queries

import (
	"context"
	"time"

	"session-booking/internal/domain/availability"
	"session-booking/internal/domain/booking"
	"session-booking/internal/pkg/errs"

	"cloud.google.com/go/civil"
)

var ErrUnknownSessionType = errs.Mark(errs.New("unknown session type"), errs.ErrValidation)

type SlotFinder interface {
	Slots(ctx context.Context, q availability.Query) ([]time.Time, error)
}

type SessionTypeLookup interface {
	FindSessionType(ctx context.Context, id int64) (booking.SessionType, error)
}

// SlotRequest names the duration either directly or through a session type.
type SlotRequest struct {
	StartDate       civil.Date
	EndDate         civil.Date
	SessionTypeID   *int64
	DurationMinutes *int
}

type SlotQueries interface {
	ListSlots(ctx context.Context, req SlotRequest) (*SlotsView, error)
}

type slotQueriesImpl struct {
	finder       SlotFinder
	sessionTypes SessionTypeLookup
}

func NewSlotQueries(finder SlotFinder, sessionTypes SessionTypeLookup) SlotQueries {
	return &slotQueriesImpl{finder: finder, sessionTypes: sessionTypes}
}

func (q *slotQueriesImpl) ListSlots(ctx context.Context, req SlotRequest) (*SlotsView, error) {
	duration, err := q.resolveDuration(ctx, req)
	if err != nil {
		return nil, err
	}

	query := availability.Query{StartDate: req.StartDate, EndDate: req.EndDate, DurationMinutes: duration}
	slots, err := q.finder.Slots(ctx, query)
	if err != nil {
		return nil, err
	}
	return &SlotsView{
		StartDate:       req.StartDate.String(),
		EndDate:         req.EndDate.String(),
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
}

func (q *slotQueriesImpl) resolveDuration(ctx context.Context, req SlotRequest) (int, error) {
	switch {
	case req.SessionTypeID != nil:
		st, err := q.sessionTypes.FindSessionType(ctx, *req.SessionTypeID)
		if err != nil {
			if errs.Is(err, errs.ErrNotFound) {
				return 0, ErrUnknownSessionType
			}
			return 0, err
		}
		if !st.Active {
			return 0, ErrUnknownSessionType
		}
		return st.DurationMinutes, nil
	case req.DurationMinutes != nil:
		return *req.DurationMinutes, nil
	default:
		return 0, errs.Mark(errs.New("sessionTypeId or durationMinutes is required"), errs.ErrValidation)
	}
}
