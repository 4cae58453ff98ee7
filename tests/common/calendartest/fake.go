//go:build unit || e2e

// Package calendartest provides an in-memory calendar for tests that run the real use cases.
package calendartest

import (
	"context"
	"strconv"
	"sync"
	"time"

	"session-booking/internal/pkg/errs"
	"session-booking/internal/usecase/shared"
)

// Calendar keeps events on the session calendar and fixed busy spans on any calendar.
// Every created event is busy time on the session calendar.
type Calendar struct {
	mu                sync.Mutex
	sessionCalendarID string
	busy              map[string][]shared.TimeRange
	events            map[string]shared.CalendarEvent
	nextID            int

	FailCreate bool
}

func New(sessionCalendarID string) *Calendar {
	return &Calendar{
		sessionCalendarID: sessionCalendarID,
		busy:              map[string][]shared.TimeRange{},
		events:            map[string]shared.CalendarEvent{},
	}
}

func (c *Calendar) AddBusy(calendarID string, start, end time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy[calendarID] = append(c.busy[calendarID], shared.TimeRange{Start: start, End: end})
}

func (c *Calendar) Events() []shared.CalendarEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]shared.CalendarEvent, 0, len(c.events))
	for _, e := range c.events {
		out = append(out, e)
	}
	return out
}

func (c *Calendar) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = map[string][]shared.TimeRange{}
	c.events = map[string]shared.CalendarEvent{}
	c.FailCreate = false
}

func (c *Calendar) QueryBusy(_ context.Context, calendarIDs []string, timeMin, timeMax time.Time) (map[string][]shared.TimeRange, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string][]shared.TimeRange, len(calendarIDs))
	for _, id := range calendarIDs {
		var spans []shared.TimeRange
		for _, r := range c.busy[id] {
			if r.Start.Before(timeMax) && timeMin.Before(r.End) {
				spans = append(spans, r)
			}
		}
		if id == c.sessionCalendarID {
			for _, e := range c.events {
				if e.Start.Before(timeMax) && timeMin.Before(e.End) {
					spans = append(spans, shared.TimeRange{Start: e.Start, End: e.End})
				}
			}
		}
		out[id] = spans
	}
	return out, nil
}

func (c *Calendar) CreateEvent(_ context.Context, in shared.EventInput) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.FailCreate {
		return "", errs.Mark(errs.New("calendar unavailable"), errs.ErrExternalService)
	}
	c.nextID++
	id := "evt-" + strconv.Itoa(c.nextID)
	c.events[id] = shared.CalendarEvent{
		ID: id, Summary: in.Summary, Description: in.Description,
		Start: in.Start, End: in.End, HoldExpiresAt: in.HoldExpiresAt,
	}
	return id, nil
}

func (c *Calendar) UpdateEvent(_ context.Context, eventID string, patch shared.EventPatch) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.events[eventID]
	if !ok {
		return errs.Mark(errs.Newf("event %s not found", eventID), errs.ErrExternalService)
	}
	if patch.Summary != nil {
		e.Summary = *patch.Summary
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	c.events[eventID] = e
	return nil
}

func (c *Calendar) DeleteEvent(_ context.Context, eventID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.events, eventID)
	return nil
}

func (c *Calendar) ListHolds(_ context.Context) ([]shared.CalendarEvent, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []shared.CalendarEvent
	for _, e := range c.events {
		if !e.HoldExpiresAt.IsZero() {
			out = append(out, e)
		}
	}
	return out, nil
}

func (c *Calendar) GetEvent(_ context.Context, eventID string) (shared.CalendarEvent, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.events[eventID]
	if !ok {
		return shared.CalendarEvent{}, errs.Mark(errs.Newf("event %s not found", eventID), errs.ErrExternalService)
	}
	return e, nil
}
