// Package gcal adapts the Google Calendar v3 API to the calendar capabilities used by
// the scheduling and booking use cases.
package gcal

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"session-booking/internal/pkg/config"
	"session-booking/internal/pkg/errs"
	"session-booking/internal/usecase/shared"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

type Client struct {
	svc               *calendar.Service
	sessionCalendarID string
	timezone          string
}

// NewClient builds the API client. Extra options are appended after the credentials,
// which lets tests point the client at a local server.
func NewClient(ctx context.Context, cfg config.CalendarConfig, opts ...option.ClientOption) (*Client, error) {
	var all []option.ClientOption
	if cfg.CredentialsFile != "" {
		all = append(all, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	all = append(all, opts...)

	svc, err := calendar.NewService(ctx, all...)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "create calendar service"), errs.ErrConfiguration)
	}
	return &Client{svc: svc, sessionCalendarID: cfg.SessionCalendarID, timezone: cfg.Timezone}, nil
}

// QueryBusy sends one freebusy request for every calendar. A per-calendar error in the
// response fails the whole call rather than leaving that calendar looking free.
func (c *Client) QueryBusy(ctx context.Context, calendarIDs []string, timeMin, timeMax time.Time) (map[string][]shared.TimeRange, error) {
	items := make([]*calendar.FreeBusyRequestItem, len(calendarIDs))
	for i, id := range calendarIDs {
		items[i] = &calendar.FreeBusyRequestItem{Id: id}
	}

	resp, err := c.svc.Freebusy.Query(&calendar.FreeBusyRequest{
		TimeMin: timeMin.UTC().Format(time.RFC3339),
		TimeMax: timeMax.UTC().Format(time.RFC3339),
		Items:   items,
	}).Context(ctx).Do()
	if err != nil {
		return nil, externalErr(err, "query free/busy")
	}

	out := make(map[string][]shared.TimeRange, len(calendarIDs))
	for _, id := range calendarIDs {
		cal, ok := resp.Calendars[id]
		if !ok {
			return nil, errs.Mark(errs.Newf("calendar %s missing from free/busy response", id), errs.ErrExternalService)
		}
		if len(cal.Errors) > 0 {
			reasons := make([]string, len(cal.Errors))
			for i, e := range cal.Errors {
				reasons[i] = e.Reason
			}
			return nil, errs.Mark(errs.Newf("calendar %s: %s", id, strings.Join(reasons, ", ")), errs.ErrExternalService)
		}

		ranges := make([]shared.TimeRange, 0, len(cal.Busy))
		for _, p := range cal.Busy {
			r, err := parsePeriod(p.Start, p.End)
			if err != nil {
				return nil, errs.Mark(errs.Wrapf(err, "calendar %s", id), errs.ErrExternalService)
			}
			ranges = append(ranges, r)
		}
		out[id] = ranges
	}
	return out, nil
}

// Private extended properties that mark placeholder holds.
const (
	holdProperty        = "sessionBookingHold"
	holdExpiresProperty = "sessionBookingHoldExpiresAt"
)

func (c *Client) CreateEvent(ctx context.Context, in shared.EventInput) (string, error) {
	tz := in.Timezone
	if tz == "" {
		tz = c.timezone
	}
	ev := &calendar.Event{
		Summary:     in.Summary,
		Description: in.Description,
		Start:       &calendar.EventDateTime{DateTime: in.Start.Format(time.RFC3339), TimeZone: tz},
		End:         &calendar.EventDateTime{DateTime: in.End.Format(time.RFC3339), TimeZone: tz},
	}
	if !in.HoldExpiresAt.IsZero() {
		ev.ExtendedProperties = &calendar.EventExtendedProperties{Private: map[string]string{
			holdProperty:        "1",
			holdExpiresProperty: in.HoldExpiresAt.UTC().Format(time.RFC3339),
		}}
	}

	created, err := c.svc.Events.Insert(c.sessionCalendarID, ev).Context(ctx).Do()
	if err != nil {
		return "", externalErr(err, "create event")
	}
	return created.Id, nil
}

// ListHolds pages through the session calendar for events tagged as holds. A hold with
// an unreadable expiry is reported as already expired.
func (c *Client) ListHolds(ctx context.Context) ([]shared.CalendarEvent, error) {
	var holds []shared.CalendarEvent
	err := c.svc.Events.List(c.sessionCalendarID).
		PrivateExtendedProperty(holdProperty+"=1").
		SingleEvents(true).
		ShowDeleted(false).
		Pages(ctx, func(page *calendar.Events) error {
			for _, ev := range page.Items {
				holds = append(holds, toCalendarEvent(ev))
			}
			return nil
		})
	if err != nil {
		return nil, externalErr(err, "list holds")
	}
	return holds, nil
}

func (c *Client) UpdateEvent(ctx context.Context, eventID string, patch shared.EventPatch) error {
	ev := &calendar.Event{}
	if patch.Summary != nil {
		ev.Summary = *patch.Summary
		ev.ForceSendFields = append(ev.ForceSendFields, "Summary")
	}
	if patch.Description != nil {
		ev.Description = *patch.Description
		ev.ForceSendFields = append(ev.ForceSendFields, "Description")
	}
	if _, err := c.svc.Events.Patch(c.sessionCalendarID, eventID, ev).Context(ctx).Do(); err != nil {
		return externalErr(err, "update event")
	}
	return nil
}

func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	err := c.svc.Events.Delete(c.sessionCalendarID, eventID).Context(ctx).Do()
	if err != nil && !isGone(err) {
		return externalErr(err, "delete event")
	}
	return nil
}

func (c *Client) GetEvent(ctx context.Context, eventID string) (shared.CalendarEvent, error) {
	ev, err := c.svc.Events.Get(c.sessionCalendarID, eventID).Context(ctx).Do()
	if err != nil {
		if isGone(err) {
			return shared.CalendarEvent{}, errs.Mark(errs.Wrap(err, "get event"), errs.ErrNotFound)
		}
		return shared.CalendarEvent{}, externalErr(err, "get event")
	}

	return toCalendarEvent(ev), nil
}

func toCalendarEvent(ev *calendar.Event) shared.CalendarEvent {
	out := shared.CalendarEvent{ID: ev.Id, Summary: ev.Summary, Description: ev.Description}
	if ev.Start != nil && ev.End != nil {
		if r, err := parsePeriod(ev.Start.DateTime, ev.End.DateTime); err == nil {
			out.Start, out.End = r.Start, r.End
		}
	}
	if ev.ExtendedProperties != nil {
		if v, ok := ev.ExtendedProperties.Private[holdProperty]; ok && v == "1" {
			expires, err := time.Parse(time.RFC3339, ev.ExtendedProperties.Private[holdExpiresProperty])
			if err != nil {
				expires = time.Unix(0, 0).UTC()
			}
			out.HoldExpiresAt = expires
		}
	}
	return out
}

func parsePeriod(start, end string) (shared.TimeRange, error) {
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return shared.TimeRange{}, errs.Wrap(err, "parse busy start")
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return shared.TimeRange{}, errs.Wrap(err, "parse busy end")
	}
	return shared.TimeRange{Start: s.UTC(), End: e.UTC()}, nil
}

func isGone(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusNotFound || gerr.Code == http.StatusGone
	}
	return false
}

func externalErr(err error, op string) error {
	return errs.Mark(errs.Wrap(err, op), errs.ErrExternalService)
}
