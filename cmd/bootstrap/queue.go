package bootstrap

import (
	"context"
	"log/slog"

	"session-booking/internal/infra/queue"
	"session-booking/internal/pkg/config"

	"github.com/hibiken/asynq"
	"go.uber.org/fx"
)

var QueueModule = fx.Module("queue",
	fx.Provide(
		NewQueueClient,
		func(c *asynq.Client) queue.Enqueuer { return c },
	),
)

func NewQueueClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *asynq.Client {
	client := queue.NewClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if err := client.Close(); err != nil {
				logger.Warn("failed to close queue client", "error", err.Error())
			}
			return nil
		},
	})
	return client
}
