package request

import (
	"session-booking/internal/pkg/errs"
	"session-booking/internal/usecase/queries"

	"cloud.google.com/go/civil"
)

// SlotsQuery takes the duration from a session type or directly, never both.
type SlotsQuery struct {
	Start           string `form:"start" binding:"required"`
	End             string `form:"end" binding:"required"`
	SessionTypeID   *int64 `form:"sessionTypeId" binding:"omitempty,min=1"`
	DurationMinutes *int   `form:"durationMinutes" binding:"omitempty,min=1,max=1440"`
}

func (q SlotsQuery) ToRequest() (queries.SlotRequest, error) {
	start, err := civil.ParseDate(q.Start)
	if err != nil {
		return queries.SlotRequest{}, errs.Mark(errs.Wrap(err, "parse start"), errs.ErrValidation)
	}
	end, err := civil.ParseDate(q.End)
	if err != nil {
		return queries.SlotRequest{}, errs.Mark(errs.Wrap(err, "parse end"), errs.ErrValidation)
	}
	if q.SessionTypeID != nil && q.DurationMinutes != nil {
		return queries.SlotRequest{}, errs.Mark(errs.New("use either sessionTypeId or durationMinutes"), errs.ErrValidation)
	}
	return queries.SlotRequest{
		StartDate:       start,
		EndDate:         end,
		SessionTypeID:   q.SessionTypeID,
		DurationMinutes: q.DurationMinutes,
	}, nil
}
