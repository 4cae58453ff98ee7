package bootstrap

import (
	"context"

	"session-booking/internal/infra/gcal"
	"session-booking/internal/pkg/config"
	"session-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var CalendarModule = fx.Module("calendar",
	fx.Provide(
		NewCalendarClient,
		func(c *gcal.Client) shared.CalendarBusyQuery { return c },
		func(c *gcal.Client) shared.CalendarEvents { return c },
	),
)

func NewCalendarClient(cfg config.Config) (*gcal.Client, error) {
	return gcal.NewClient(context.Background(), cfg.Calendar)
}
