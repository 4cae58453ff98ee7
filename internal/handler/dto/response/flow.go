package response

import (
	"time"

	"session-booking/internal/pkg/errs"
	"session-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type FlowResponse struct {
	Action            string     `json:"action"`
	NextStep          string     `json:"nextStep"`
	Token             string     `json:"token,omitempty"`
	ErrorCode         string     `json:"errorCode,omitempty"`
	Message           string     `json:"message,omitempty"`
	Success           bool       `json:"success"`
	SessionID         *uuid.UUID `json:"sessionId,omitempty"`
	SessionStatus     string     `json:"sessionStatus,omitempty"`
	CalendarEventID   string     `json:"calendarEventId,omitempty"`
	AppointmentAt     *time.Time `json:"appointmentAt,omitempty"`
	InviteTokens      []string   `json:"inviteTokens,omitempty"`
	NeedsManualReview bool       `json:"needsManualReview,omitempty"`
}

func FromFlowResult(r *commands.FlowResult) (*FlowResponse, error) {
	out := &FlowResponse{}
	if err := copier.Copy(out, r); err != nil {
		return nil, errs.Wrap(err, "map flow result")
	}
	return out, nil
}
