package request

type ListSessionsQuery struct {
	Status *string `form:"status" binding:"omitempty,oneof=pending_event confirmed needs_manual_review"`
	After  string  `form:"after"`
	Limit  int     `form:"limit" binding:"omitempty,min=1,max=200"`
}
