//go:build unit || e2e

package builder

import (
	"time"

	"session-booking/internal/domain/availability"
	"session-booking/internal/domain/booking"
	reqdto "session-booking/internal/handler/dto/request"
)

type SessionTypeBuilder struct {
	Label              string
	DurationMinutes    int
	WaiverType         string
	AllowsGroupInvites bool
	MaxGroupSize       int
	Active             bool
}

func NewSessionTypeBuilder() *SessionTypeBuilder {
	return &SessionTypeBuilder{
		Label:           "Intro Climb",
		DurationMinutes: 60,
		WaiverType:      booking.WaiverNone,
		MaxGroupSize:    1,
		Active:          true,
	}
}

func (b *SessionTypeBuilder) With(mutate func(*SessionTypeBuilder)) *SessionTypeBuilder {
	mutate(b)
	return b
}

func (b *SessionTypeBuilder) WithWaiver(waiverType string) *SessionTypeBuilder {
	b.WaiverType = waiverType
	return b
}

func (b *SessionTypeBuilder) WithGroup(size int) *SessionTypeBuilder {
	b.AllowsGroupInvites = true
	b.MaxGroupSize = size
	return b
}

func (b *SessionTypeBuilder) BuildDomain() booking.SessionType {
	return booking.SessionType{
		Label:              b.Label,
		DurationMinutes:    b.DurationMinutes,
		WaiverType:         b.WaiverType,
		AllowsGroupInvites: b.AllowsGroupInvites,
		MaxGroupSize:       b.MaxGroupSize,
		Active:             b.Active,
	}
}

// RuleBuilder starts from an every-day 09:00-17:00 UTC schedule with no notice or buffer.
type RuleBuilder struct {
	rule availability.Rule
}

func NewRuleBuilder() *RuleBuilder {
	weekly := make(map[availability.Weekday][]availability.Block, 7)
	for _, d := range []availability.Weekday{
		availability.Monday, availability.Tuesday, availability.Wednesday, availability.Thursday,
		availability.Friday, availability.Saturday, availability.Sunday,
	} {
		weekly[d] = []availability.Block{{Start: availability.NewTimeOfDay(9, 0), End: availability.NewTimeOfDay(17, 0)}}
	}
	return &RuleBuilder{rule: availability.Rule{
		WeeklyAvailability:   weekly,
		Timezone:             "UTC",
		MaxAdvanceDays:       60,
		MaxBookingsPerDay:    4,
		SlotIncrementMinutes: 60,
	}}
}

func (b *RuleBuilder) With(mutate func(*availability.Rule)) *RuleBuilder {
	mutate(&b.rule)
	return b
}

func (b *RuleBuilder) Build() availability.Rule {
	return b.rule
}

type PrimaryFlowBuilder struct {
	UserID        string
	SessionTypeID int64
	Appointment   time.Time
}

func NewPrimaryFlowBuilder(sessionTypeID int64, appointment time.Time) *PrimaryFlowBuilder {
	return &PrimaryFlowBuilder{UserID: "user-primary", SessionTypeID: sessionTypeID, Appointment: appointment}
}

func (b *PrimaryFlowBuilder) WithUser(userID string) *PrimaryFlowBuilder {
	b.UserID = userID
	return b
}

func (b *PrimaryFlowBuilder) BuildRequestDTO() reqdto.StartPrimaryFlowRequest {
	return reqdto.StartPrimaryFlowRequest{
		UserID:              b.UserID,
		SessionTypeID:       b.SessionTypeID,
		AppointmentDateTime: b.Appointment,
	}
}
