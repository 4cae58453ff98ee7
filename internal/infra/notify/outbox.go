// Package notify implements the best-effort Notifier on top of the notification outbox.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"session-booking/internal/infra/queue"
	"session-booking/internal/pkg/clock"
	"session-booking/internal/usecase/shared"
)

const kindMessage = "message"

type OutboxNotifier struct {
	jobs   shared.NotificationRepository
	clock  clock.Clock
	logger *slog.Logger
}

func NewOutboxNotifier(jobs shared.NotificationRepository, clk clock.Clock, logger *slog.Logger) *OutboxNotifier {
	return &OutboxNotifier{jobs: jobs, clock: clk, logger: logger}
}

func (n *OutboxNotifier) NotifyUser(ctx context.Context, userID, text string) {
	n.enqueue(ctx, queue.TypeNotifyUser, queue.NotifyPayload{UserID: userID, Text: text})
}

func (n *OutboxNotifier) NotifyAdmin(ctx context.Context, text string) {
	n.enqueue(ctx, queue.TypeNotifyAdmin, queue.NotifyPayload{Text: text})
}

func (n *OutboxNotifier) enqueue(ctx context.Context, topic string, p queue.NotifyPayload) {
	payload, err := json.Marshal(p)
	if err != nil {
		n.logger.Error("failed to encode notification", "topic", topic, "error", err.Error())
		return
	}
	if err := n.jobs.CreateJob(ctx, kindMessage, topic, payload, n.clock.Now()); err != nil {
		n.logger.Error("failed to queue notification", "topic", topic, "user_id", p.UserID, "error", err.Error())
	}
}
