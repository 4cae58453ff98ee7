package queue

import (
	"encoding/json"

	"session-booking/internal/pkg/errs"

	"github.com/hibiken/asynq"
)

const (
	TypeNotifyUser  = "notify:user"
	TypeNotifyAdmin = "notify:admin"
)

// NotifyPayload is the body of every notify:* task and of the outbox row behind it.
type NotifyPayload struct {
	UserID string `json:"userId,omitempty"`
	Text   string `json:"text"`
}

func NewNotifyTask(taskType string, payload []byte) (*asynq.Task, error) {
	switch taskType {
	case TypeNotifyUser, TypeNotifyAdmin:
	default:
		return nil, errs.Newf("unknown notification task type %q", taskType)
	}
	var p NotifyPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, errs.Wrap(err, "decode notification payload")
	}
	return asynq.NewTask(taskType, payload), nil
}
