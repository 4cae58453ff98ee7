package cli

import (
	"io"
	"time"

	"session-booking/internal/domain/availability"
	"session-booking/internal/infra/gcal"
	"session-booking/internal/infra/repository"
	"session-booking/internal/pkg/clock"
	"session-booking/internal/pkg/errs"
	"session-booking/internal/usecase/schedule"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"
)

type SlotsOutput struct {
	Start           string      `json:"start"`
	End             string      `json:"end"`
	DurationMinutes int         `json:"durationMinutes"`
	Slots           []time.Time `json:"slots"`
}

// NewSlotsCommand runs the same engine and adapters as GET /api/slots.
func NewSlotsCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		start, end string
		duration   int
	)
	cmd := &cobra.Command{
		Use:   "slots --start YYYY-MM-DD --end YYYY-MM-DD --duration MINUTES",
		Short: "Print bookable slots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := parseSlotsQuery(start, end, duration)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			cfg, pool, cleanup, err := rootOpts.connect(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			calendar, err := gcal.NewClient(ctx, cfg.Calendar)
			if err != nil {
				return err
			}

			logger := rootOpts.logger(cmd)
			svc := schedule.NewService(repository.NewRuleRepository(pool), calendar, cfg, clock.NewRealClock(), logger)
			slots, err := svc.Slots(ctx, query)
			if err != nil {
				return err
			}

			out := SlotsOutput{Start: start, End: end, DurationMinutes: duration, Slots: slots}
			return output(cmd.OutOrStdout(), rootOpts.Format, out, func(w io.Writer) {
				if len(slots) == 0 {
					printf(w, "no slots between %s and %s\n", start, end)
					return
				}
				for _, s := range slots {
					printf(w, "%s\n", s.UTC().Format(time.RFC3339))
				}
			})
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "first day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "last day (YYYY-MM-DD), defaults to --start")
	cmd.Flags().IntVar(&duration, "duration", 60, "session length in minutes")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

func parseSlotsQuery(start, end string, duration int) (availability.Query, error) {
	if end == "" {
		end = start
	}
	s, err := civil.ParseDate(start)
	if err != nil {
		return availability.Query{}, errs.Mark(errs.Wrap(err, "--start"), errs.ErrValidation)
	}
	e, err := civil.ParseDate(end)
	if err != nil {
		return availability.Query{}, errs.Mark(errs.Wrap(err, "--end"), errs.ErrValidation)
	}
	q := availability.Query{StartDate: s, EndDate: e, DurationMinutes: duration}
	return q, q.Validate()
}
