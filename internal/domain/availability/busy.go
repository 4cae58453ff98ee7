package availability

import (
	"time"

	"cloud.google.com/go/civil"
)

// BusyInterval is an externally reported busy span, tagged with the calendar it came from.
type BusyInterval struct {
	Start            time.Time `json:"start"`
	End              time.Time `json:"end"`
	SourceCalendarID string    `json:"sourceCalendarId"`
}

// overlaps is the half-open interval test shared by listing and point checks.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// CountBusyForDay counts intervals from sourceCalendarID that intersect the local day
// [midnight, next midnight) of day in loc.
func CountBusyForDay(busy []BusyInterval, day civil.Date, loc *time.Location, sourceCalendarID string) int {
	dayStart := day.In(loc)
	dayEnd := day.AddDays(1).In(loc)

	count := 0
	for _, b := range busy {
		if b.SourceCalendarID != sourceCalendarID {
			continue
		}
		if overlaps(b.Start, b.End, dayStart, dayEnd) {
			count++
		}
	}
	return count
}
