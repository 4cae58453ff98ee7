package queue

import (
	"context"
	"encoding/json"
	"log/slog"

	"session-booking/internal/pkg/config"
	"session-booking/internal/pkg/errs"

	"github.com/hibiken/asynq"
)

// Sink delivers a notification to its final channel.
type Sink interface {
	Deliver(ctx context.Context, taskType string, p NotifyPayload) error
}

// LogSink writes notifications to the log. It stands in for a push or chat channel.
type LogSink struct {
	Logger *slog.Logger
}

func (s LogSink) Deliver(_ context.Context, taskType string, p NotifyPayload) error {
	s.Logger.Info("notification delivered", "type", taskType, "user_id", p.UserID, "text", p.Text)
	return nil
}

func NewServer(cfg config.RedisConfig, logger *slog.Logger) *asynq.Server {
	return asynq.NewServer(RedisOpt(cfg), asynq.Config{
		Concurrency: 5,
		Queues:      map[string]int{cfg.Queue: 1},
		ErrorHandler: asynq.ErrorHandlerFunc(func(_ context.Context, task *asynq.Task, err error) {
			logger.Error("notification task failed", "type", task.Type(), "error", err.Error())
		}),
	})
}

func NewMux(sink Sink) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeNotifyUser, handleNotify(sink))
	mux.HandleFunc(TypeNotifyAdmin, handleNotify(sink))
	return mux
}

func handleNotify(sink Sink) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p NotifyPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			// A malformed payload never becomes valid on retry.
			return errs.Wrapf(asynq.SkipRetry, "decode %s payload: %v", task.Type(), err)
		}
		return sink.Deliver(ctx, task.Type(), p)
	}
}
