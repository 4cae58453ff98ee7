package availability

import (
	"slices"
	"time"

	"session-booking/internal/pkg/errs"

	"cloud.google.com/go/civil"
)

// Rule is the practitioner's declarative weekly schedule plus booking policy.
// It is read-only here and must be treated as one snapshot per evaluation.
type Rule struct {
	ID                   int64               `json:"id,omitempty" yaml:"id,omitempty"`
	WeeklyAvailability   map[Weekday][]Block `json:"weeklyAvailability" yaml:"weeklyAvailability"`
	Timezone             string              `json:"timezone" yaml:"timezone"`
	MaxAdvanceDays       int                 `json:"maxAdvanceDays" yaml:"maxAdvanceDays"`
	MinNoticeHours       int                 `json:"minNoticeHours" yaml:"minNoticeHours"`
	BufferMinutes        int                 `json:"bufferMinutes" yaml:"bufferMinutes"`
	MaxBookingsPerDay    int                 `json:"maxBookingsPerDay" yaml:"maxBookingsPerDay"`
	SlotIncrementMinutes int                 `json:"slotIncrementMinutes" yaml:"slotIncrementMinutes"`
}

func (r Rule) Location() (*time.Location, error) {
	if r.Timezone == "" {
		return nil, errs.Mark(errs.New("rule timezone is empty"), errs.ErrConfiguration)
	}
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "load rule timezone %q", r.Timezone), errs.ErrConfiguration)
	}
	return loc, nil
}

func (r Rule) Buffer() time.Duration {
	return time.Duration(r.BufferMinutes) * time.Minute
}

// Validate reports a ConfigurationError for a rule the engine cannot evaluate.
func (r Rule) Validate() error {
	if _, err := r.Location(); err != nil {
		return err
	}
	if r.SlotIncrementMinutes <= 0 {
		return configErrorf("slotIncrementMinutes must be > 0, got %d", r.SlotIncrementMinutes)
	}
	if r.MaxAdvanceDays < 0 || r.MinNoticeHours < 0 || r.BufferMinutes < 0 || r.MaxBookingsPerDay < 0 {
		return configErrorf("rule limits must be >= 0")
	}
	for day, blocks := range r.WeeklyAvailability {
		if !day.IsValid() {
			return configErrorf("unknown weekday code %q", day)
		}
		sorted := sortedBlocks(blocks)
		for i, b := range sorted {
			if b.Start < 0 || b.End > minutesPerDay || b.Start >= b.End {
				return configErrorf("%s block %s: start must precede end", day, b)
			}
			if i > 0 && sorted[i-1].End > b.Start {
				return configErrorf("%s blocks %s and %s overlap", day, sorted[i-1], b)
			}
		}
	}
	return nil
}

// BlocksFor returns the day's blocks ordered by start.
func (r Rule) BlocksFor(d time.Weekday) []Block {
	return sortedBlocks(r.WeeklyAvailability[WeekdayOf(d)])
}

// BookingWindow is the first and last local day that can hold a bookable start at now.
func (r Rule) BookingWindow(now time.Time) (civil.Date, civil.Date, error) {
	loc, err := r.Location()
	if err != nil {
		return civil.Date{}, civil.Date{}, err
	}
	earliest := now.Add(time.Duration(r.MinNoticeHours) * time.Hour)
	return civil.DateOf(earliest.In(loc)), civil.DateOf(now.In(loc)).AddDays(r.MaxAdvanceDays), nil
}

// QueryWindow is the free/busy range needed to evaluate every day in q:
// local midnight of StartDate to local midnight after EndDate, widened by the buffer.
func (r Rule) QueryWindow(q Query) (time.Time, time.Time, error) {
	loc, err := r.Location()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	timeMin := q.StartDate.In(loc).Add(-r.Buffer())
	timeMax := q.EndDate.AddDays(1).In(loc).Add(r.Buffer())
	return timeMin.UTC(), timeMax.UTC(), nil
}

func sortedBlocks(blocks []Block) []Block {
	out := slices.Clone(blocks)
	slices.SortFunc(out, func(a, b Block) int { return int(a.Start) - int(b.Start) })
	return out
}

func configErrorf(format string, args ...any) error {
	return errs.Mark(errs.Newf(format, args...), errs.ErrConfiguration)
}

// Query asks for slots on every calendar day in [StartDate, EndDate], in the rule's timezone.
type Query struct {
	StartDate       civil.Date
	EndDate         civil.Date
	DurationMinutes int
}

func (q Query) Duration() time.Duration {
	return time.Duration(q.DurationMinutes) * time.Minute
}

// Clamp narrows q to [first, last]. It reports false when no day of q is left.
func (q Query) Clamp(first, last civil.Date) (Query, bool) {
	if q.StartDate.Before(first) {
		q.StartDate = first
	}
	if q.EndDate.After(last) {
		q.EndDate = last
	}
	return q, !q.EndDate.Before(q.StartDate)
}

func (q Query) Validate() error {
	if !q.StartDate.IsValid() || !q.EndDate.IsValid() {
		return errs.Mark(errs.New("invalid date range"), errs.ErrValidation)
	}
	if q.EndDate.Before(q.StartDate) {
		return errs.Mark(errs.Newf("end date %s precedes start date %s", q.EndDate, q.StartDate), errs.ErrValidation)
	}
	if q.DurationMinutes <= 0 {
		return errs.Mark(errs.Newf("duration must be > 0 minutes, got %d", q.DurationMinutes), errs.ErrValidation)
	}
	return nil
}
