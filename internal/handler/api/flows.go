package api

import (
	"net/http"

	"session-booking/internal/domain/flow"
	reqdto "session-booking/internal/handler/dto/request"
	resdto "session-booking/internal/handler/dto/response"
	"session-booking/internal/handler/httperr"
	"session-booking/internal/handler/middleware"
	"session-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type FlowHandler struct {
	cmds commands.FlowCommands
}

func NewFlowHandler(cmds commands.FlowCommands) *FlowHandler {
	return &FlowHandler{cmds: cmds}
}

// @Summary Start a primary booking flow
// @Description Checks the requested slot and returns the first step with a signed flow token
// @Tags flows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.StartPrimaryFlowRequest true "Start request"
// @Success 200 {object} resdto.FlowResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} resdto.FlowResponse
// @Failure 503 {object} httperr.Response
// @Router /api/flows/primary [post]
func (h *FlowHandler) StartPrimary(c *gin.Context) {
	var req reqdto.StartPrimaryFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.StartPrimaryFlow(c.Request.Context(), commands.StartPrimaryInput{
		UserID:              req.UserID,
		SessionTypeID:       req.SessionTypeID,
		AppointmentDateTime: req.AppointmentDateTime,
	})
	h.respond(c, result, err)
}

// @Summary Start a friend invite flow
// @Tags flows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.StartInviteFlowRequest true "Invite request"
// @Success 200 {object} resdto.FlowResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} resdto.FlowResponse
// @Router /api/flows/invite [post]
func (h *FlowHandler) StartInvite(c *gin.Context) {
	var req reqdto.StartInviteFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.StartInviteFlow(c.Request.Context(), commands.StartInviteInput{
		InviteToken:  req.InviteToken,
		FriendUserID: req.FriendUserID,
	})
	h.respond(c, result, err)
}

// @Summary Continue a flow
// @Description Submits the data for the step named in the token. A primary waiver commits the booking.
// @Tags flows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ContinueFlowRequest true "Continue request"
// @Success 200 {object} resdto.FlowResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} resdto.FlowResponse
// @Router /api/flows/continue [post]
func (h *FlowHandler) Continue(c *gin.Context) {
	var req reqdto.ContinueFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.ContinueFlow(c.Request.Context(), commands.ContinueInput{
		Token:  req.Token,
		StepID: flow.Step(req.StepID),
		Data:   req.Data,
	})
	h.respond(c, result, err)
}

// @Summary Finalize a booking
// @Description Idempotent per token: a repeated call returns the stored result byte for byte.
// @Tags flows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.FinalizeFlowRequest true "Finalize request"
// @Success 200 {object} resdto.FlowResponse
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} resdto.FlowResponse
// @Failure 503 {object} httperr.Response
// @Router /api/flows/finalize [post]
func (h *FlowHandler) Finalize(c *gin.Context) {
	var req reqdto.FinalizeFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Finalize(c.Request.Context(), req.Token)
	h.respond(c, result, err)
}

// respond writes committed results from their stored bytes so a replay is identical
// to the first answer.
func (h *FlowHandler) respond(c *gin.Context, result *commands.FlowResult, err error) {
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if result.IsError() {
		h.writeResult(c, http.StatusUnprocessableEntity, result)
		return
	}
	if result.Replayed {
		c.Header(middleware.ReplayedHeader, "true")
	}
	if len(result.Raw) > 0 {
		c.Data(http.StatusOK, "application/json; charset=utf-8", result.Raw)
		return
	}
	h.writeResult(c, http.StatusOK, result)
}

func (h *FlowHandler) writeResult(c *gin.Context, status int, result *commands.FlowResult) {
	resp, err := resdto.FromFlowResult(result)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resp)
}
