package api

import (
	"net/http"

	reqdto "session-booking/internal/handler/dto/request"
	resdto "session-booking/internal/handler/dto/response"
	"session-booking/internal/handler/httperr"
	"session-booking/internal/pkg/errs"
	"session-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	q queries.SlotQueries
}

func NewSlotHandler(q queries.SlotQueries) *SlotHandler {
	return &SlotHandler{q: q}
}

// @Summary List bookable slots
// @Description Start instants (UTC) on every day of [start, end] in the practitioner's timezone
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param start query string true "First day (YYYY-MM-DD)"
// @Param end query string true "Last day (YYYY-MM-DD)"
// @Param sessionTypeId query int false "Session type; its duration is used"
// @Param durationMinutes query int false "Explicit duration"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/slots [get]
func (h *SlotHandler) List(c *gin.Context) {
	var query reqdto.SlotsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	req, err := query.ToRequest()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	view, err := h.q.ListSlots(c.Request.Context(), req)
	if err != nil {
		if errs.Is(err, queries.ErrUnknownSessionType) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown session type", nil)
			return
		}
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotsView(view))
}
