package booking

// WaiverNone marks a session type that needs no liability waiver.
const WaiverNone = "NONE"

type SessionType struct {
	ID                 int64  `json:"id"`
	Label              string `json:"label"`
	DurationMinutes    int    `json:"durationMinutes"`
	WaiverType         string `json:"waiverType"`
	AllowsGroupInvites bool   `json:"allowsGroupInvites"`
	MaxGroupSize       int    `json:"maxGroupSize"`
	Active             bool   `json:"active"`
}

func (t SessionType) RequiresWaiver() bool {
	return t.WaiverType != "" && t.WaiverType != WaiverNone
}

// MaxInvites is the number of friends that may join besides the booking user.
func (t SessionType) MaxInvites() int {
	if !t.AllowsGroupInvites || t.MaxGroupSize <= 1 {
		return 0
	}
	return t.MaxGroupSize - 1
}
