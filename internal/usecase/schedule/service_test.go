//go:build unit

package schedule_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"session-booking/internal/domain/availability"
	"session-booking/internal/pkg/clock"
	"session-booking/internal/pkg/config"
	"session-booking/internal/pkg/errs"
	"session-booking/internal/usecase/schedule"
	"session-booking/internal/usecase/shared"
	sharedmock "session-booking/tests/mock/shared"

	"cloud.google.com/go/civil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var (
	monday    = civil.Date{Year: 2025, Month: time.March, Day: 3}
	calendars = []string{"sessions@test", "personal@test"}
)

func at(hour int) time.Time {
	return time.Date(2025, time.March, 3, hour, 0, 0, 0, time.UTC)
}

func mondayMornings() availability.Rule {
	return availability.Rule{
		WeeklyAvailability: map[availability.Weekday][]availability.Block{
			availability.Monday: {{Start: availability.NewTimeOfDay(9, 0), End: availability.NewTimeOfDay(12, 0)}},
		},
		Timezone:             "UTC",
		MaxAdvanceDays:       30,
		MaxBookingsPerDay:    5,
		SlotIncrementMinutes: 60,
	}
}

type ServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	rules   *sharedmock.MockRuleStore
	busy    *sharedmock.MockCalendarBusyQuery
	service *schedule.Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.rules = sharedmock.NewMockRuleStore(s.ctrl)
	s.busy = sharedmock.NewMockCalendarBusyQuery(s.ctrl)
	clk := clock.NewMockClock(time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC))
	s.service = schedule.NewService(s.rules, s.busy, config.NewTestConfig(), clk, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) TestSlots() {
	query := availability.Query{StartDate: monday, EndDate: monday, DurationMinutes: 60}

	s.Run("success: one batched query covers every calendar", func() {
		s.rules.EXPECT().GetDefaultRule(gomock.Any()).Return(mondayMornings(), nil)
		s.busy.EXPECT().QueryBusy(gomock.Any(), calendars, at(0), at(24)).
			Return(map[string][]shared.TimeRange{
				"sessions@test": nil,
				"personal@test": {{Start: at(10), End: at(11)}},
			}, nil).Times(1)

		slots, err := s.service.Slots(context.Background(), query)

		s.Require().NoError(err)
		if diff := cmp.Diff([]time.Time{at(9), at(11)}, slots); diff != "" {
			s.T().Errorf("slots mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("success: missing rule yields no slots", func() {
		s.rules.EXPECT().GetDefaultRule(gomock.Any()).
			Return(availability.Rule{}, errs.Mark(errs.New("no rows"), errs.ErrNotFound))

		slots, err := s.service.Slots(context.Background(), query)

		s.Require().NoError(err)
		s.Empty(slots)
		s.NotNil(slots)
	})

	s.Run("success: invalid rule yields no slots", func() {
		rule := mondayMornings()
		rule.SlotIncrementMinutes = 0
		s.rules.EXPECT().GetDefaultRule(gomock.Any()).Return(rule, nil)
		s.busy.EXPECT().QueryBusy(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[string][]shared.TimeRange{"sessions@test": nil, "personal@test": nil}, nil)

		slots, err := s.service.Slots(context.Background(), query)

		s.Require().NoError(err)
		s.Empty(slots)
	})

	s.Run("error: calendar failure is not treated as free time", func() {
		s.rules.EXPECT().GetDefaultRule(gomock.Any()).Return(mondayMornings(), nil)
		s.busy.EXPECT().QueryBusy(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.New("503 backend error"))

		slots, err := s.service.Slots(context.Background(), query)

		s.True(errs.Is(err, errs.ErrExternalService))
		s.Empty(slots)
	})

	s.Run("error: response missing a calendar", func() {
		s.rules.EXPECT().GetDefaultRule(gomock.Any()).Return(mondayMornings(), nil)
		s.busy.EXPECT().QueryBusy(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[string][]shared.TimeRange{"sessions@test": nil}, nil)

		_, err := s.service.Slots(context.Background(), query)

		s.True(errs.Is(err, errs.ErrExternalService))
	})

	s.Run("success: range is narrowed to the booking window before querying", func() {
		rule := mondayMornings()
		rule.MinNoticeHours = 36
		s.rules.EXPECT().GetDefaultRule(gomock.Any()).Return(rule, nil)
		// now is 2025-03-01 12:00Z: notice pushes the first day to 03-03, advance caps it at 03-31.
		s.busy.EXPECT().QueryBusy(gomock.Any(), calendars, at(0),
			time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)).
			Return(map[string][]shared.TimeRange{"sessions@test": nil, "personal@test": nil}, nil)

		slots, err := s.service.Slots(context.Background(), availability.Query{
			StartDate:       civil.Date{Year: 2024, Month: time.January, Day: 1},
			EndDate:         civil.Date{Year: 2999, Month: time.December, Day: 31},
			DurationMinutes: 60,
		})

		s.Require().NoError(err)
		s.Len(slots, 15)
		s.Equal(at(9), slots[0])
	})

	s.Run("success: range outside the booking window skips the calendar", func() {
		s.rules.EXPECT().GetDefaultRule(gomock.Any()).Return(mondayMornings(), nil)
		s.busy.EXPECT().QueryBusy(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		slots, err := s.service.Slots(context.Background(), availability.Query{
			StartDate:       civil.Date{Year: 2025, Month: time.June, Day: 2},
			EndDate:         civil.Date{Year: 2025, Month: time.June, Day: 30},
			DurationMinutes: 60,
		})

		s.Require().NoError(err)
		s.NotNil(slots)
		s.Empty(slots)
	})

	s.Run("error: end date before start date", func() {
		_, err := s.service.Slots(context.Background(), availability.Query{
			StartDate: monday, EndDate: monday.AddDays(-1), DurationMinutes: 60,
		})

		s.True(errs.Is(err, errs.ErrValidation))
	})
}

func (s *ServiceTestSuite) TestCheckSlot() {
	busyAtTen := map[string][]shared.TimeRange{
		"sessions@test": nil,
		"personal@test": {{Start: at(10), End: at(11)}},
	}

	s.Run("success: free start is available", func() {
		s.rules.EXPECT().GetDefaultRule(gomock.Any()).Return(mondayMornings(), nil)
		s.busy.EXPECT().QueryBusy(gomock.Any(), calendars, at(0), at(24)).Return(busyAtTen, nil)

		verdict, err := s.service.CheckSlot(context.Background(), at(11), 60)

		s.Require().NoError(err)
		s.True(verdict.Available())
	})

	s.Run("success: busy start is rejected with a reason", func() {
		s.rules.EXPECT().GetDefaultRule(gomock.Any()).Return(mondayMornings(), nil)
		s.busy.EXPECT().QueryBusy(gomock.Any(), calendars, at(0), at(24)).Return(busyAtTen, nil)

		verdict, err := s.service.CheckSlot(context.Background(), at(10), 60)

		s.Require().NoError(err)
		s.Equal(availability.ReasonConflict, verdict.Reason)
	})

	s.Run("error: missing rule is a configuration error", func() {
		s.rules.EXPECT().GetDefaultRule(gomock.Any()).
			Return(availability.Rule{}, errs.Mark(errs.New("no rows"), errs.ErrNotFound))

		_, err := s.service.CheckSlot(context.Background(), at(9), 60)

		s.True(errs.Is(err, errs.ErrConfiguration))
	})
}
