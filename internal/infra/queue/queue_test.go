//go:build unit

package queue_test

import (
	"context"
	"errors"
	"testing"

	"session-booking/internal/infra/queue"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	delivered []queue.NotifyPayload
}

func (r *recordingSink) Deliver(_ context.Context, _ string, p queue.NotifyPayload) error {
	r.delivered = append(r.delivered, p)
	return nil
}

func TestNewNotifyTask(t *testing.T) {
	task, err := queue.NewNotifyTask(queue.TypeNotifyAdmin, []byte(`{"text":"hi"}`))
	require.NoError(t, err)
	assert.Equal(t, queue.TypeNotifyAdmin, task.Type())

	_, err = queue.NewNotifyTask("notify:fax", []byte(`{"text":"hi"}`))
	assert.Error(t, err)

	_, err = queue.NewNotifyTask(queue.TypeNotifyUser, []byte(`not json`))
	assert.Error(t, err)
}

func TestMux_DeliversNotifications(t *testing.T) {
	sink := &recordingSink{}
	mux := queue.NewMux(sink)

	err := mux.ProcessTask(context.Background(), asynq.NewTask(queue.TypeNotifyUser, []byte(`{"userId":"u1","text":"hello"}`)))
	require.NoError(t, err)
	assert.Equal(t, []queue.NotifyPayload{{UserID: "u1", Text: "hello"}}, sink.delivered)

	err = mux.ProcessTask(context.Background(), asynq.NewTask(queue.TypeNotifyAdmin, []byte(`{`)))
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}
