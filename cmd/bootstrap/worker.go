package bootstrap

import (
	"context"
	"log/slog"

	"session-booking/internal/infra/queue"
	"session-booking/internal/pkg/config"
	"session-booking/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewRelay,
		worker.NewJanitor,
	),
	fx.Invoke(startWorkers),
)

// startWorkers runs the outbox relay, the janitor (idempotency records and expired
// holds) and the notification consumer alongside the HTTP server.
// WORKER_ENABLED=false leaves them to another process.
func startWorkers(lc fx.Lifecycle, cfg config.Config, relay *worker.Relay, janitor *worker.Janitor, logger *slog.Logger) {
	if !cfg.Worker.Enabled {
		logger.Info("background workers disabled")
		return
	}

	relayLoop := worker.NewLoop("notification-relay", cfg.Worker.RelayInterval, func(ctx context.Context) error {
		_, err := relay.RunOnce(ctx)
		return err
	}, logger)
	janitorLoop := worker.NewLoop("janitor", cfg.Worker.JanitorInterval, func(ctx context.Context) error {
		_, err := janitor.RunOnce(ctx)
		return err
	}, logger)
	server := queue.NewServer(cfg.Redis, logger)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if err := server.Start(queue.NewMux(queue.LogSink{Logger: logger})); err != nil {
				return err
			}
			relayLoop.Start()
			janitorLoop.Start()
			logger.Info("background workers started", "queue", cfg.Redis.Queue)
			return nil
		},
		OnStop: func(_ context.Context) error {
			relayLoop.Stop()
			janitorLoop.Stop()
			server.Shutdown()
			logger.Info("background workers stopped")
			return nil
		},
	})
}
