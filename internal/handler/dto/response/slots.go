package response

import (
	"time"

	"session-booking/internal/usecase/queries"
)

type SlotsResponse struct {
	StartDate       string      `json:"startDate"`
	EndDate         string      `json:"endDate"`
	DurationMinutes int         `json:"durationMinutes"`
	Slots           []time.Time `json:"slots"`
}

func FromSlotsView(v *queries.SlotsView) *SlotsResponse {
	slots := make([]time.Time, len(v.Slots))
	for i, s := range v.Slots {
		slots[i] = s.UTC()
	}
	return &SlotsResponse{
		StartDate:       v.StartDate,
		EndDate:         v.EndDate,
		DurationMinutes: v.DurationMinutes,
		Slots:           slots,
	}
}
