package booking

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type InviteStatus string

const (
	InvitePending                 InviteStatus = "pending"
	InviteViewedByFriend          InviteStatus = "viewed_by_friend"
	InviteAcceptedByFriend        InviteStatus = "accepted_by_friend"
	InviteWaiverCompletedByFriend InviteStatus = "waiver_completed_by_friend"
	InviteDeclined                InviteStatus = "declined"
)

// PreWaiverStatuses are the only statuses from which a friend may still join or sign.
var PreWaiverStatuses = []InviteStatus{InvitePending, InviteAcceptedByFriend, InviteViewedByFriend}

func (s InviteStatus) IsPreWaiver() bool {
	for _, p := range PreWaiverStatuses {
		if s == p {
			return true
		}
	}
	return false
}

type Invite struct {
	Token           string          `json:"inviteToken"`
	ParentSessionID uuid.UUID       `json:"parentSessionId"`
	Status          InviteStatus    `json:"status"`
	FriendUserID    string          `json:"friendUserId,omitempty"`
	FriendFirstName string          `json:"friendFirstName,omitempty"`
	FriendLastName  string          `json:"friendLastName,omitempty"`
	LiabilityForm   json.RawMessage `json:"liabilityForm,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func (i Invite) FriendName() string {
	switch {
	case i.FriendFirstName != "" && i.FriendLastName != "":
		return i.FriendFirstName + " " + i.FriendLastName
	case i.FriendFirstName != "":
		return i.FriendFirstName
	default:
		return i.FriendLastName
	}
}

// InviteUpdate applies only the non-nil fields. When RequireStatusIn is non-empty the
// update only succeeds if the stored status is one of them.
type InviteUpdate struct {
	Status          *InviteStatus
	FriendUserID    *string
	FriendFirstName *string
	FriendLastName  *string
	LiabilityForm   json.RawMessage
	RequireStatusIn []InviteStatus
}

func NewInviteToken() string {
	return uuid.NewString()
}
