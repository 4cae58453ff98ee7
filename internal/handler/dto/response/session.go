package response

import (
	"time"

	"session-booking/internal/pkg/errs"
	"session-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type InviteResponse struct {
	Token        string    `json:"inviteToken"`
	Status       string    `json:"status"`
	FriendUserID *string   `json:"friendUserId,omitempty"`
	FriendName   *string   `json:"friendName,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type SessionResponse struct {
	ID              uuid.UUID        `json:"id"`
	UserID          string           `json:"userId"`
	SessionTypeID   int64            `json:"sessionTypeId"`
	SessionLabel    string           `json:"sessionLabel"`
	AppointmentAt   time.Time        `json:"appointmentAt"`
	DurationMinutes int              `json:"durationMinutes"`
	Status          string           `json:"status"`
	CalendarEventID *string          `json:"calendarEventId,omitempty"`
	FirstName       *string          `json:"firstName,omitempty"`
	LastName        *string          `json:"lastName,omitempty"`
	Invites         []InviteResponse `json:"invites"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

type SessionListItemResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        string    `json:"userId"`
	SessionLabel  string    `json:"sessionLabel"`
	AppointmentAt time.Time `json:"appointmentAt"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type SessionListResponse struct {
	Items      []SessionListItemResponse `json:"items"`
	NextCursor string                    `json:"nextCursor,omitempty"`
}

func FromSessionView(v *queries.SessionView) (*SessionResponse, error) {
	out := &SessionResponse{}
	if err := copier.Copy(out, v); err != nil {
		return nil, errs.Wrap(err, "map session view")
	}
	if out.Invites == nil {
		out.Invites = []InviteResponse{}
	}
	return out, nil
}

func FromSessionList(items []*queries.SessionListItem, next *queries.Cursor) (*SessionListResponse, error) {
	out := &SessionListResponse{Items: make([]SessionListItemResponse, 0, len(items))}
	for i, item := range items {
		var r SessionListItemResponse
		if err := copier.Copy(&r, item); err != nil {
			return nil, errs.Wrapf(err, "map session list item %d", i)
		}
		out.Items = append(out.Items, r)
	}
	if next != nil {
		out.NextCursor = next.After
	}
	return out, nil
}
