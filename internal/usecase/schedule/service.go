package schedule

import (
	"context"
	"log/slog"
	"time"

	"session-booking/internal/domain/availability"
	"session-booking/internal/pkg/clock"
	"session-booking/internal/pkg/config"
	"session-booking/internal/pkg/errs"
	"session-booking/internal/usecase/shared"
)

// Service combines the rule store, the busy-interval aggregator and the availability
// engine. Slot listing and slot confirmation both go through it.
type Service struct {
	rules     shared.RuleStore
	busyQuery shared.CalendarBusyQuery
	calendars config.CalendarConfig
	clock     clock.Clock
	logger    *slog.Logger
}

func NewService(
	rules shared.RuleStore,
	busyQuery shared.CalendarBusyQuery,
	cfg config.Config,
	clk clock.Clock,
	logger *slog.Logger,
) *Service {
	return &Service{
		rules:     rules,
		busyQuery: busyQuery,
		calendars: cfg.Calendar,
		clock:     clk,
		logger:    logger,
	}
}

func (s *Service) PrimaryCalendarID() string {
	return s.calendars.SessionCalendarID
}

// FetchBusy issues a single batched query for every configured calendar over
// [timeMin, timeMax). Any calendar failure fails the whole call.
func (s *Service) FetchBusy(ctx context.Context, timeMin, timeMax time.Time) ([]availability.BusyInterval, error) {
	if s.calendars.SessionCalendarID == "" {
		return nil, errs.Mark(errs.New("session calendar id is not configured"), errs.ErrConfiguration)
	}
	ids := s.calendars.AllCalendarIDs()

	perCalendar, err := s.busyQuery.QueryBusy(ctx, ids, timeMin, timeMax)
	if err != nil {
		if errs.Is(err, errs.ErrExternalService) {
			return nil, err
		}
		return nil, errs.Mark(errs.Wrap(err, "query free/busy"), errs.ErrExternalService)
	}

	var busy []availability.BusyInterval
	for _, id := range ids {
		ranges, ok := perCalendar[id]
		if !ok {
			return nil, errs.Mark(errs.Newf("free/busy response is missing calendar %s", id), errs.ErrExternalService)
		}
		for _, r := range ranges {
			if !r.End.After(r.Start) {
				continue
			}
			busy = append(busy, availability.BusyInterval{Start: r.Start.UTC(), End: r.End.UTC(), SourceCalendarID: id})
		}
	}
	return busy, nil
}

// Slots lists bookable starts. Configuration problems are logged and produce an empty
// list; an unreachable calendar is returned as an error rather than treated as free time.
func (s *Service) Slots(ctx context.Context, q availability.Query) ([]time.Time, error) {
	empty := []time.Time{}
	if err := q.Validate(); err != nil {
		return empty, err
	}

	rule, err := s.loadRule(ctx)
	if err != nil {
		return s.configurationFallback(empty, err)
	}
	// Days outside the booking window can never produce a slot, so they are never fetched.
	first, last, err := rule.BookingWindow(s.clock.Now())
	if err != nil {
		return s.configurationFallback(empty, err)
	}
	q, ok := q.Clamp(first, last)
	if !ok {
		return empty, nil
	}
	timeMin, timeMax, err := rule.QueryWindow(q)
	if err != nil {
		return s.configurationFallback(empty, err)
	}

	busy, err := s.FetchBusy(ctx, timeMin, timeMax)
	if err != nil {
		return s.configurationFallback(empty, err)
	}

	slots, err := availability.FindSlots(q, rule, busy, s.calendars.SessionCalendarID, s.clock.Now())
	if err != nil {
		return s.configurationFallback(empty, err)
	}
	return slots, nil
}

// CheckSlot re-evaluates one start against live busy data with the same rules Slots uses.
func (s *Service) CheckSlot(ctx context.Context, start time.Time, durationMinutes int) (availability.Verdict, error) {
	rule, err := s.loadRule(ctx)
	if err != nil {
		return availability.Verdict{Start: start}, err
	}

	day := start.Add(-rule.Buffer())
	end := start.Add(time.Duration(durationMinutes)*time.Minute + rule.Buffer())
	loc, err := rule.Location()
	if err != nil {
		return availability.Verdict{Start: start}, err
	}
	// Whole local days are fetched so the daily capacity count sees every primary event.
	q := availability.Query{StartDate: civilDate(day, loc), EndDate: civilDate(end, loc), DurationMinutes: durationMinutes}
	timeMin, timeMax, err := rule.QueryWindow(q)
	if err != nil {
		return availability.Verdict{Start: start}, err
	}

	busy, err := s.FetchBusy(ctx, timeMin, timeMax)
	if err != nil {
		return availability.Verdict{Start: start}, err
	}
	return availability.CheckSlot(start, durationMinutes, rule, busy, s.calendars.SessionCalendarID, s.clock.Now())
}

func (s *Service) loadRule(ctx context.Context) (availability.Rule, error) {
	rule, err := s.rules.GetDefaultRule(ctx)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return availability.Rule{}, errs.Mark(errs.Wrap(err, "no default availability rule"), errs.ErrConfiguration)
		}
		return availability.Rule{}, errs.Mark(errs.Wrap(err, "load availability rule"), errs.ErrExternalService)
	}
	return rule, nil
}

func (s *Service) configurationFallback(empty []time.Time, err error) ([]time.Time, error) {
	if errs.Is(err, errs.ErrConfiguration) {
		s.logger.Error("availability unavailable due to configuration", "error", err.Error())
		return empty, nil
	}
	return empty, err
}
