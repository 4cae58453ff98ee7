// Package cli implements bookingctl, the operator tool for the booking service.
package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"session-booking/internal/pkg/config"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags and the dependencies shared by every command.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// LoadConfig reads the service configuration. Tests replace it.
	LoadConfig func() (config.Config, error)
}

var ValidFormats = []string{"text", "json"}

func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{LoadConfig: config.LoadConfig})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookingctl",
		Short: "Operate the session booking service",
		Long:  "Inspect availability, manage the schedule rule and run maintenance against the booking database.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewSlotsCommand(opts))
	cmd.AddCommand(NewRuleCommand(opts))
	cmd.AddCommand(NewTokenCommand(opts))
	cmd.AddCommand(NewIdempotencyCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))

	return cmd
}

// logger writes to stderr so json output on stdout stays parseable.
func (o *RootOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
