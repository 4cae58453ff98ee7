package db

import (
	"context"
	"io/fs"
	"log/slog"
	"sort"

	"session-booking/internal/pkg/errs"
	"session-booking/migrations"
)

// Migrate applies every embedded .sql file in name order. The files are written to be
// re-runnable, so there is no version table.
func Migrate(ctx context.Context, conn DBTX, logger *slog.Logger) error {
	names, err := fs.Glob(migrations.FS, "*.sql")
	if err != nil {
		return errs.Wrap(err, "list migrations")
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := fs.ReadFile(migrations.FS, name)
		if err != nil {
			return errs.Wrapf(err, "read migration %s", name)
		}
		if _, err := conn.Exec(ctx, string(content)); err != nil {
			return errs.Wrapf(err, "apply migration %s", name)
		}
		logger.Info("migration applied", "file", name)
	}
	return nil
}
