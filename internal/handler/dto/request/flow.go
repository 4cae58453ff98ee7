package request

import (
	"encoding/json"
	"time"
)

type StartPrimaryFlowRequest struct {
	UserID              string    `json:"userId" binding:"required,max=128"`
	SessionTypeID       int64     `json:"sessionTypeId" binding:"required,min=1"`
	AppointmentDateTime time.Time `json:"appointmentDateTime" binding:"required"`
}

type StartInviteFlowRequest struct {
	InviteToken  string `json:"inviteToken" binding:"required"`
	FriendUserID string `json:"friendUserId" binding:"required,max=128"`
}

type ContinueFlowRequest struct {
	Token  string          `json:"token" binding:"required"`
	StepID string          `json:"stepId" binding:"required"`
	Data   json.RawMessage `json:"data"`
}

type FinalizeFlowRequest struct {
	Token string `json:"token" binding:"required"`
}
