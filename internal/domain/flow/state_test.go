//go:build unit

package flow_test

import (
	"encoding/json"
	"testing"
	"time"

	"session-booking/internal/domain/flow"
	"session-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_Appointment(t *testing.T) {
	s := flow.State{AppointmentDateTimeISO: flow.FormatAppointment(time.Date(2025, 3, 3, 9, 0, 0, 0, time.FixedZone("CST", -6*3600)))}

	got, err := s.Appointment()

	require.NoError(t, err)
	assert.Equal(t, "2025-03-03T15:00:00Z", s.AppointmentDateTimeISO)
	assert.True(t, got.Equal(time.Date(2025, 3, 3, 15, 0, 0, 0, time.UTC)))

	_, err = flow.State{AppointmentDateTimeISO: "tomorrow"}.Appointment()
	assert.True(t, errs.Is(err, errs.ErrValidation))
}

func TestState_HasWaiver(t *testing.T) {
	full := flow.State{FirstName: "Ana", LastName: "Silva", LiabilityFormData: json.RawMessage(`{"ok":true}`)}
	assert.True(t, full.HasWaiver())

	for name, mutate := range map[string]func(*flow.State){
		"no first name": func(s *flow.State) { s.FirstName = "" },
		"no last name":  func(s *flow.State) { s.LastName = "" },
		"no form":       func(s *flow.State) { s.LiabilityFormData = nil },
		"null form":     func(s *flow.State) { s.LiabilityFormData = json.RawMessage("null") },
	} {
		t.Run(name, func(t *testing.T) {
			s := full
			mutate(&s)
			assert.False(t, s.HasWaiver())
		})
	}
}

func TestState_AdvanceDoesNotMutate(t *testing.T) {
	s := flow.State{FlowType: flow.TypePrimaryBooking, CurrentStep: flow.StepInitial, ExpiresAt: time.Now()}
	next := s.Advance(flow.StepAwaitingWaiver)

	assert.Equal(t, flow.StepInitial, s.CurrentStep)
	assert.Equal(t, flow.StepAwaitingWaiver, next.CurrentStep)
	assert.True(t, next.ExpiresAt.IsZero())
}
