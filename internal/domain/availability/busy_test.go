//go:build unit

package availability_test

import (
	"testing"
	"time"

	"session-booking/internal/domain/availability"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountBusyForDay(t *testing.T) {
	loc, err := time.LoadLocation(chicago)
	require.NoError(t, err)

	busy := []availability.BusyInterval{
		// Mar 3 21:00-22:00 CST is Mar 4 in UTC but Mar 3 locally.
		{Start: utc(3, 4, 3, 0), End: utc(3, 4, 4, 0), SourceCalendarID: primaryCal},
		// Spans local midnight between Mar 3 and Mar 4.
		{Start: utc(3, 4, 5, 30), End: utc(3, 4, 6, 30), SourceCalendarID: primaryCal},
		// Ends exactly at local midnight of Mar 3.
		{Start: utc(3, 3, 5, 0), End: utc(3, 3, 6, 0), SourceCalendarID: primaryCal},
		{Start: utc(3, 3, 15, 0), End: utc(3, 3, 16, 0), SourceCalendarID: personalCal},
	}

	tests := []struct {
		name   string
		day    civil.Date
		source string
		want   int
	}{
		{name: "local day includes evening events that fall on the next UTC day", day: monday, source: primaryCal, want: 2},
		{name: "interval spanning midnight counts on both days", day: monday.AddDays(1), source: primaryCal, want: 1},
		{name: "interval ending at local midnight counts only on its own day", day: monday.AddDays(-1), source: primaryCal, want: 1},
		{name: "only the requested source calendar is counted", day: monday, source: personalCal, want: 1},
		{name: "no events", day: monday.AddDays(3), source: primaryCal, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, availability.CountBusyForDay(busy, tt.day, loc, tt.source))
		})
	}
}

func TestRule_QueryWindow(t *testing.T) {
	rule := mondayRule(func(r *availability.Rule) { r.BufferMinutes = 30 })
	q := availability.Query{StartDate: monday, EndDate: monday.AddDays(1), DurationMinutes: 60}

	timeMin, timeMax, err := rule.QueryWindow(q)

	require.NoError(t, err)
	assert.Equal(t, utc(3, 3, 5, 30), timeMin)
	assert.Equal(t, utc(3, 5, 6, 30), timeMax)
}

func TestRule_BookingWindow(t *testing.T) {
	rule := mondayRule(func(r *availability.Rule) {
		r.Timezone = "America/Chicago"
		r.MinNoticeHours = 12
		r.MaxAdvanceDays = 7
	})
	// 2025-03-01 03:00Z is still the evening of 02-28 in Chicago.
	now := utc(3, 1, 3, 0)

	first, last, err := rule.BookingWindow(now)

	require.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 2025, Month: time.March, Day: 1}, first)
	assert.Equal(t, civil.Date{Year: 2025, Month: time.March, Day: 7}, last)
}

func TestQuery_Clamp(t *testing.T) {
	first := civil.Date{Year: 2025, Month: time.March, Day: 3}
	last := first.AddDays(30)

	tests := map[string]struct {
		query  availability.Query
		want   availability.Query
		wantOK bool
	}{
		"inside is untouched": {
			query:  availability.Query{StartDate: first.AddDays(1), EndDate: first.AddDays(2), DurationMinutes: 60},
			want:   availability.Query{StartDate: first.AddDays(1), EndDate: first.AddDays(2), DurationMinutes: 60},
			wantOK: true,
		},
		"both ends narrowed": {
			query:  availability.Query{StartDate: first.AddDays(-400), EndDate: first.AddDays(4000), DurationMinutes: 30},
			want:   availability.Query{StartDate: first, EndDate: last, DurationMinutes: 30},
			wantOK: true,
		},
		"entirely after the window": {
			query:  availability.Query{StartDate: last.AddDays(1), EndDate: last.AddDays(9), DurationMinutes: 60},
			wantOK: false,
		},
		"entirely before the window": {
			query:  availability.Query{StartDate: first.AddDays(-9), EndDate: first.AddDays(-1), DurationMinutes: 60},
			wantOK: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := tt.query.Clamp(first, last)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    availability.TimeOfDay
		wantErr bool
	}{
		{in: "09:00", want: availability.NewTimeOfDay(9, 0)},
		{in: "23:59", want: availability.NewTimeOfDay(23, 59)},
		{in: "24:00", want: availability.NewTimeOfDay(24, 0)},
		{in: "24:01", wantErr: true},
		{in: "9", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "10:60", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := availability.ParseTimeOfDay(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}
