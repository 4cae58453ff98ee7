package cli

import (
	"io"
	"time"

	"session-booking/internal/infra/db"
	"session-booking/internal/infra/repository"

	"github.com/spf13/cobra"
)

func NewIdempotencyCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "idempotency",
		Short: "Maintain finalize idempotency records",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "purge",
		Short: "Delete records past their retention",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, pool, cleanup, err := rootOpts.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			n, err := repository.NewIdempotencyRepository(pool).DeleteExpired(cmd.Context(), time.Now())
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), rootOpts.Format, map[string]int64{"deleted": n}, func(w io.Writer) {
				printf(w, "%d expired record(s) deleted\n", n)
			})
		},
	})
	return cmd
}

func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, pool, cleanup, err := rootOpts.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			logger := rootOpts.logger(cmd)
			if err := db.Migrate(cmd.Context(), pool, logger); err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), rootOpts.Format, map[string]bool{"migrated": true}, func(w io.Writer) {
				printf(w, "schema up to date\n")
			})
		},
	}
}
