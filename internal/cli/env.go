package cli

import (
	"context"

	"session-booking/internal/infra/db"
	"session-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// connect loads the configuration and opens the database. The caller runs the returned cleanup.
func (o *RootOptions) connect(ctx context.Context) (config.Config, *pgxpool.Pool, func(), error) {
	cfg, err := o.LoadConfig()
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	return cfg, pool, cleanup, nil
}
