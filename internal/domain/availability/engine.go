package availability

import (
	"time"

	"session-booking/internal/pkg/errs"

	"cloud.google.com/go/civil"
)

// Reason explains why a candidate start was accepted or rejected.
type Reason string

const (
	ReasonAvailable     Reason = "available"
	ReasonOutsideWindow Reason = "outside_booking_window"
	ReasonClosed        Reason = "no_availability_that_day"
	ReasonCapacity      Reason = "daily_capacity_reached"
	ReasonTooSoon       Reason = "insufficient_notice"
	ReasonDoesNotFit    Reason = "does_not_fit_block"
	ReasonConflict      Reason = "conflicts_with_busy_time"
	ReasonOffGrid       Reason = "not_a_slot_start"
)

// Verdict is the result of a single-slot check.
type Verdict struct {
	Start  time.Time
	Reason Reason
}

func (v Verdict) Available() bool {
	return v.Reason == ReasonAvailable
}

// planner holds everything derived once per evaluation: the location, the booking
// window and the buffer-inflated busy intervals.
type planner struct {
	rule             Rule
	loc              *time.Location
	duration         time.Duration
	earliestBookable time.Time
	firstDay         civil.Date
	lastDay          civil.Date
	primaryID        string
	busy             []BusyInterval
	inflated         []BusyInterval
	capacity         map[civil.Date]int
}

func newPlanner(rule Rule, durationMinutes int, busy []BusyInterval, primaryCalendarID string, now time.Time) (*planner, error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	if primaryCalendarID == "" {
		return nil, errs.Mark(errs.New("primary session calendar id is not configured"), errs.ErrConfiguration)
	}
	if durationMinutes <= 0 {
		return nil, errs.Mark(errs.Newf("duration must be > 0 minutes, got %d", durationMinutes), errs.ErrValidation)
	}

	loc, _ := rule.Location()
	earliest := now.Add(time.Duration(rule.MinNoticeHours) * time.Hour).In(loc)
	today := civil.DateOf(now.In(loc))

	buffer := rule.Buffer()
	inflated := make([]BusyInterval, 0, len(busy))
	for _, b := range busy {
		inflated = append(inflated, BusyInterval{
			Start:            b.Start.Add(-buffer),
			End:              b.End.Add(buffer),
			SourceCalendarID: b.SourceCalendarID,
		})
	}

	return &planner{
		rule:             rule,
		loc:              loc,
		duration:         time.Duration(durationMinutes) * time.Minute,
		earliestBookable: earliest,
		firstDay:         civil.DateOf(earliest),
		lastDay:          today.AddDays(rule.MaxAdvanceDays),
		primaryID:        primaryCalendarID,
		busy:             busy,
		inflated:         inflated,
		capacity:         make(map[civil.Date]int),
	}, nil
}

// dayReason applies the whole-day filters: booking window, weekday blocks and daily capacity.
func (p *planner) dayReason(day civil.Date) Reason {
	if day.Before(p.firstDay) || day.After(p.lastDay) {
		return ReasonOutsideWindow
	}
	if len(p.rule.WeeklyAvailability[WeekdayOf(day.Weekday())]) == 0 {
		return ReasonClosed
	}
	count, ok := p.capacity[day]
	if !ok {
		count = CountBusyForDay(p.busy, day, p.loc, p.primaryID)
		p.capacity[day] = count
	}
	if count >= p.rule.MaxBookingsPerDay {
		return ReasonCapacity
	}
	return ReasonAvailable
}

// candidateReason evaluates one candidate start inside a block ending at blockEnd.
func (p *planner) candidateReason(start, blockEnd time.Time) Reason {
	if start.Before(p.earliestBookable) {
		return ReasonTooSoon
	}
	end := start.Add(p.duration)
	if end.After(blockEnd) {
		return ReasonDoesNotFit
	}
	for _, b := range p.inflated {
		if overlaps(start, end, b.Start, b.End) {
			return ReasonConflict
		}
	}
	return ReasonAvailable
}

// walkDay steps through every block of day at the rule's increment, in wall-clock time,
// and calls visit with each candidate instant and its reason. Stepping within a block
// stops at the first candidate that does not fit. Returning false from visit stops the walk.
func (p *planner) walkDay(day civil.Date, visit func(start time.Time, r Reason) bool) {
	inc := p.rule.SlotIncrementMinutes
	var prev time.Time
	for _, block := range p.rule.BlocksFor(day.Weekday()) {
		blockEnd := p.localTime(day, int(block.End))
		for minute := int(block.Start); minute < int(block.End); minute += inc {
			start := p.localTime(day, minute)
			// Wall-clock steps across a DST gap can normalise onto an instant already visited.
			if !prev.IsZero() && !start.After(prev) {
				continue
			}
			prev = start

			r := p.candidateReason(start, blockEnd)
			if !visit(start, r) {
				return
			}
			if r == ReasonDoesNotFit {
				break
			}
		}
	}
}

func (p *planner) localTime(day civil.Date, minute int) time.Time {
	return time.Date(day.Year, day.Month, day.Day, 0, minute, 0, 0, p.loc)
}

// FindSlots returns every bookable start in q, chronologically, as UTC instants.
// A returned error is marked ErrConfiguration or ErrValidation; the slice is never nil.
func FindSlots(q Query, rule Rule, busy []BusyInterval, primaryCalendarID string, now time.Time) ([]time.Time, error) {
	slots := []time.Time{}
	if err := q.Validate(); err != nil {
		return slots, err
	}
	p, err := newPlanner(rule, q.DurationMinutes, busy, primaryCalendarID, now)
	if err != nil {
		return slots, err
	}

	q, ok := q.Clamp(p.firstDay, p.lastDay)
	if !ok {
		return slots, nil
	}

	for day := q.StartDate; !day.After(q.EndDate); day = day.AddDays(1) {
		if p.dayReason(day) != ReasonAvailable {
			continue
		}
		p.walkDay(day, func(start time.Time, r Reason) bool {
			if r == ReasonAvailable {
				slots = append(slots, start.UTC())
			}
			return true
		})
	}
	return slots, nil
}

// CheckSlot re-evaluates a single start instant with exactly the rules FindSlots applies,
// so a start listed by FindSlots is confirmed here unless the inputs changed.
func CheckSlot(start time.Time, durationMinutes int, rule Rule, busy []BusyInterval, primaryCalendarID string, now time.Time) (Verdict, error) {
	p, err := newPlanner(rule, durationMinutes, busy, primaryCalendarID, now)
	if err != nil {
		return Verdict{Start: start}, err
	}

	day := civil.DateOf(start.In(p.loc))
	if r := p.dayReason(day); r != ReasonAvailable {
		return Verdict{Start: start, Reason: r}, nil
	}

	verdict := Verdict{Start: start, Reason: ReasonOffGrid}
	p.walkDay(day, func(candidate time.Time, r Reason) bool {
		if candidate.Equal(start) {
			verdict.Reason = r
			return false
		}
		return true
	})
	return verdict, nil
}

// IsSlotAvailable is CheckSlot reduced to a boolean.
func IsSlotAvailable(start time.Time, durationMinutes int, rule Rule, busy []BusyInterval, primaryCalendarID string, now time.Time) (bool, error) {
	v, err := CheckSlot(start, durationMinutes, rule, busy, primaryCalendarID, now)
	if err != nil {
		return false, err
	}
	return v.Available(), nil
}
