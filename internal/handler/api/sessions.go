package api

import (
	"net/http"

	reqdto "session-booking/internal/handler/dto/request"
	resdto "session-booking/internal/handler/dto/response"
	"session-booking/internal/handler/httperr"
	"session-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHandler serves the admin review queue.
type SessionHandler struct {
	q queries.SessionQueries
}

func NewSessionHandler(q queries.SessionQueries) *SessionHandler {
	return &SessionHandler{q: q}
}

// @Summary List sessions
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending_event, confirmed or needs_manual_review"
// @Param after query string false "Cursor from a previous page"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.SessionListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/sessions [get]
func (h *SessionHandler) List(c *gin.Context) {
	var query reqdto.ListSessionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	var cursor *queries.Cursor
	if query.After != "" {
		cursor = &queries.Cursor{After: query.After}
	}
	items, next, err := h.q.List(c.Request.Context(), queries.SessionFilters{Status: query.Status}, cursor, query.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromSessionList(items, next)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get session
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromSessionView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
