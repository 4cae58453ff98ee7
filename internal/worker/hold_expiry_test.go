//go:build unit

package worker_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"session-booking/internal/domain/availability"
	"session-booking/internal/domain/booking"
	"session-booking/internal/domain/flow"
	"session-booking/internal/pkg/clock"
	"session-booking/internal/pkg/config"
	"session-booking/internal/pkg/jwt"
	"session-booking/internal/usecase/commands"
	"session-booking/internal/usecase/schedule"
	"session-booking/internal/worker"
	"session-booking/tests/common/calendartest"
	sharedmock "session-booking/tests/mock/shared"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// An abandoned waiver flow must not keep its slot once the token has expired.
func TestJanitor_AbandonedWaiverFlowFreesTheSlot(t *testing.T) {
	ctrl := gomock.NewController(t)
	clk := clock.NewMockClock(time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC))
	cfg := config.NewTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	calendar := calendartest.New(cfg.Calendar.SessionCalendarID)

	rules := sharedmock.NewMockRuleStore(ctrl)
	rules.EXPECT().GetDefaultRule(gomock.Any()).Return(availability.Rule{
		WeeklyAvailability: map[availability.Weekday][]availability.Block{
			availability.Monday: {{Start: availability.NewTimeOfDay(9, 0), End: availability.NewTimeOfDay(12, 0)}},
		},
		Timezone:             "America/Chicago",
		MaxAdvanceDays:       30,
		MaxBookingsPerDay:    1,
		SlotIncrementMinutes: 60,
	}, nil).AnyTimes()

	waivered := booking.SessionType{ID: 7, Label: "Waivered", DurationMinutes: 60, WaiverType: "STANDARD", Active: true}
	sessionTypes := sharedmock.NewMockSessionTypeStore(ctrl)
	sessionTypes.EXPECT().FindSessionType(gomock.Any(), waivered.ID).Return(waivered, nil).AnyTimes()

	records := sharedmock.NewMockIdempotencyStore(ctrl)
	records.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()

	key, err := jwt.DeriveKey("hold-expiry-secret", jwt.FlowTokenKeyLabel)
	require.NoError(t, err)
	codec := flow.NewCodec(jwt.NewSigner(key, "test", clk), clk)

	slots := schedule.NewService(rules, calendar, cfg, clk, logger)
	flows := commands.NewFlowUseCase(codec, slots, sessionTypes, nil, nil, calendar, nil, nil, clk, cfg, logger)
	janitor := worker.NewJanitor(records, calendar, clk, logger)

	monday := civil.Date{Year: 2025, Month: time.March, Day: 3}
	query := availability.Query{StartDate: monday, EndDate: monday, DurationMinutes: 60}
	nineChicago := time.Date(2025, time.March, 3, 15, 0, 0, 0, time.UTC)
	start := commands.StartPrimaryInput{UserID: "user-1", SessionTypeID: waivered.ID, AppointmentDateTime: nineChicago}

	listed, err := slots.Slots(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, listed, 3)

	result, err := flows.StartPrimaryFlow(context.Background(), start)
	require.NoError(t, err)
	require.Equal(t, flow.StepAwaitingWaiver, result.NextStep)
	require.Len(t, calendar.Events(), 1)

	// While the token is still valid the hold stays and the capped day is closed.
	clk.Add(flow.TokenTTL - time.Minute)
	_, err = janitor.RunOnce(context.Background())
	require.NoError(t, err)
	listed, err = slots.Slots(context.Background(), query)
	require.NoError(t, err)
	assert.Empty(t, listed)

	clk.Add(time.Hour)
	sweep, err := janitor.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sweep.Holds)
	assert.Empty(t, calendar.Events())

	listed, err = slots.Slots(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	for i, got := range listed {
		assert.True(t, nineChicago.Add(time.Duration(i)*time.Hour).Equal(got), "slot %d is %s", i, got)
	}

	again, err := flows.StartPrimaryFlow(context.Background(), start)
	require.NoError(t, err)
	assert.Equal(t, flow.ActionRedirect, again.Action)
	assert.Equal(t, flow.StepAwaitingWaiver, again.NextStep)
}
