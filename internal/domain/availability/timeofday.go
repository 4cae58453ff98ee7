package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"session-booking/internal/pkg/errs"
)

// Weekday codes used as keys of Rule.WeeklyAvailability.
type Weekday string

const (
	Monday    Weekday = "MON"
	Tuesday   Weekday = "TUE"
	Wednesday Weekday = "WED"
	Thursday  Weekday = "THU"
	Friday    Weekday = "FRI"
	Saturday  Weekday = "SAT"
	Sunday    Weekday = "SUN"
)

var weekdayCodes = [...]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

func WeekdayOf(d time.Weekday) Weekday {
	return weekdayCodes[d]
}

func (w Weekday) IsValid() bool {
	for _, c := range weekdayCodes {
		if c == w {
			return true
		}
	}
	return false
}

const minutesPerDay = 24 * 60

// TimeOfDay is a local wall-clock time, in minutes after midnight. 24:00 is allowed as a block end.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, errs.Mark(errs.Newf("time of day %q: expected HH:MM", s), errs.ErrValidation)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, errs.Mark(errs.Wrapf(err, "time of day %q", s), errs.ErrValidation)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, errs.Mark(errs.Wrapf(err, "time of day %q", s), errs.ErrValidation)
	}
	if h < 0 || m < 0 || m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, errs.Mark(errs.Newf("time of day %q out of range", s), errs.ErrValidation)
	}
	return NewTimeOfDay(h, m), nil
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(b []byte) error {
	v, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Block is a local availability window [Start, End).
type Block struct {
	Start TimeOfDay `json:"start" yaml:"start"`
	End   TimeOfDay `json:"end" yaml:"end"`
}

func (b Block) String() string {
	return b.Start.String() + "-" + b.End.String()
}
