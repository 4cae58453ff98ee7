//go:build unit

package response_test

import (
	"testing"
	"time"

	"session-booking/internal/domain/booking"
	"session-booking/internal/domain/flow"
	resdto "session-booking/internal/handler/dto/response"
	"session-booking/internal/usecase/commands"
	"session-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFlowResult(t *testing.T) {
	t.Run("error result keeps its code", func(t *testing.T) {
		resp, err := resdto.FromFlowResult(&commands.FlowResult{
			Action:    flow.ActionError,
			NextStep:  flow.StepFinalizeBooking,
			ErrorCode: commands.ErrorCodeBusinessRule,
			Message:   commands.MsgSlotTaken,
		})

		require.NoError(t, err)
		assert.Equal(t, "ERROR", resp.Action)
		assert.Equal(t, "BUSINESS_RULE_VIOLATION", resp.ErrorCode)
		assert.Equal(t, commands.MsgSlotTaken, resp.Message)
	})

	t.Run("committed result", func(t *testing.T) {
		id := uuid.New()
		at := time.Date(2025, time.March, 3, 15, 0, 0, 0, time.UTC)

		resp, err := resdto.FromFlowResult(&commands.FlowResult{
			Action:        flow.ActionComplete,
			NextStep:      flow.StepCompleted,
			Success:       true,
			SessionID:     &id,
			SessionStatus: booking.SessionConfirmed,
			AppointmentAt: &at,
		})

		require.NoError(t, err)
		assert.Equal(t, id, *resp.SessionID)
		assert.Equal(t, string(booking.SessionConfirmed), resp.SessionStatus)
		assert.Empty(t, resp.ErrorCode)
	})
}

func TestFromSessionView(t *testing.T) {
	t.Run("nil invites become an empty list", func(t *testing.T) {
		resp, err := resdto.FromSessionView(&queries.SessionView{ID: uuid.New(), Status: "confirmed"})

		require.NoError(t, err)
		assert.NotNil(t, resp.Invites)
		assert.Equal(t, "confirmed", resp.Status)
	})

	t.Run("mapping failure is returned", func(t *testing.T) {
		resp, err := resdto.FromSessionView(nil)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestFromSessionList(t *testing.T) {
	t.Run("items and cursor", func(t *testing.T) {
		items := []*queries.SessionListItem{{ID: uuid.New(), Status: "needs_manual_review"}}

		resp, err := resdto.FromSessionList(items, &queries.Cursor{After: "abc"})

		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "needs_manual_review", resp.Items[0].Status)
		assert.Equal(t, "abc", resp.NextCursor)
	})

	t.Run("mapping failure is returned", func(t *testing.T) {
		_, err := resdto.FromSessionList([]*queries.SessionListItem{nil}, nil)

		assert.Error(t, err)
	})
}
