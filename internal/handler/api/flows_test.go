//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"session-booking/internal/domain/flow"
	"session-booking/internal/handler/api"
	resdto "session-booking/internal/handler/dto/response"
	"session-booking/internal/handler/middleware"
	"session-booking/internal/pkg/errs"
	"session-booking/internal/usecase/commands"
	"session-booking/tests/common/httptest"
	"session-booking/tests/common/testutil"
	commandsmock "session-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FlowHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockFlowCommands
	handler      *api.FlowHandler
}

func (s *FlowHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockFlowCommands(s.mockCtrl)
	s.handler = api.NewFlowHandler(s.mockCommands)

	s.router.POST("/api/flows/primary", s.handler.StartPrimary)
	s.router.POST("/api/flows/invite", s.handler.StartInvite)
	s.router.POST("/api/flows/continue", s.handler.Continue)
	s.router.POST("/api/flows/finalize", s.handler.Finalize)
}

func (s *FlowHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFlowHandlerSuite(t *testing.T) {
	suite.Run(t, new(FlowHandlerTestSuite))
}

type testCaseFlow struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestStartPrimary
// ================================================================================

func (s *FlowHandlerTestSuite) TestStartPrimary() {
	url := "/api/flows/primary"
	reqBody := map[string]any{
		"userId":              "user-1",
		"sessionTypeId":       1,
		"appointmentDateTime": "2025-03-03T10:00:00Z",
	}

	s.Run("success: returns the redirect with its token", func() {
		s.mockCommands.EXPECT().StartPrimaryFlow(gomock.Any(), commands.StartPrimaryInput{
			UserID:              "user-1",
			SessionTypeID:       1,
			AppointmentDateTime: time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC),
		}).Return(&commands.FlowResult{
			Action: flow.ActionRedirect, NextStep: flow.StepFinalizeBooking, Token: "tok", Success: true,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.FlowResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("REDIRECT", body.Action)
		s.Equal("finalize_booking", body.NextStep)
		s.Equal("tok", body.Token)
	})

	missing := []testCaseFlow{
		{name: "missing field: userId", mutate: testutil.Field("userId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: sessionTypeId", mutate: testutil.Field("sessionTypeId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: appointmentDateTime", mutate: testutil.Field("appointmentDateTime", nil), expectCode: http.StatusBadRequest},
		{name: "malformed appointmentDateTime", mutate: testutil.Field("appointmentDateTime", "tomorrow"), expectCode: http.StatusBadRequest},
	}
	for _, tc := range missing {
		s.Run("error: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
		})
	}

	s.Run("error: business failure is 422 with the flow body", func() {
		s.mockCommands.EXPECT().StartPrimaryFlow(gomock.Any(), gomock.Any()).Return(&commands.FlowResult{
			Action: flow.ActionError, NextStep: flow.StepInitial,
			ErrorCode: commands.ErrorCodeBusinessRule, Message: commands.MsgSlotUnavailable,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		var body resdto.FlowResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("ERROR", body.Action)
		s.Equal("BUSINESS_RULE_VIOLATION", body.ErrorCode)
		s.Equal(commands.MsgSlotUnavailable, body.Message)
	})

	s.Run("error: calendar outage is 503", func() {
		s.mockCommands.EXPECT().StartPrimaryFlow(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("freebusy failed"), errs.ErrExternalService))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Calendar service unavailable")
	})
}

// ================================================================================
// TestFinalize
// ================================================================================

func (s *FlowHandlerTestSuite) TestFinalize() {
	url := "/api/flows/finalize"
	reqBody := map[string]any{"token": "tok"}
	sessionID := uuid.New()
	stored := []byte(`{"action":"COMPLETE","nextStep":"completed","success":true,"sessionId":"` + sessionID.String() + `"}`)

	s.Run("success: stored bytes are written verbatim", func() {
		s.mockCommands.EXPECT().Finalize(gomock.Any(), "tok").Return(&commands.FlowResult{
			Action: flow.ActionComplete, NextStep: flow.StepCompleted, Success: true, SessionID: &sessionID, Raw: stored,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Equal(string(stored), rec.Body.String())
		s.Empty(rec.Header().Get(middleware.ReplayedHeader))
	})

	s.Run("success: replay is marked and byte-identical", func() {
		s.mockCommands.EXPECT().Finalize(gomock.Any(), "tok").Return(&commands.FlowResult{
			Action: flow.ActionComplete, Success: true, Replayed: true, Raw: stored,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Equal(string(stored), rec.Body.String())
		httptest.AssertHeaders(s.T(), rec, map[string]string{middleware.ReplayedHeader: "true"})
	})

	s.Run("error: invalid token is 401", func() {
		s.mockCommands.EXPECT().Finalize(gomock.Any(), "tok").
			Return(nil, errs.Mark(errs.New("bad signature"), flow.ErrInvalidFlowToken))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "flow token")
	})

	s.Run("error: in-flight commit is 409", func() {
		s.mockCommands.EXPECT().Finalize(gomock.Any(), "tok").
			Return(nil, errs.Mark(errs.New("in progress"), errs.ErrConflict))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: missing token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestContinue / TestStartInvite
// ================================================================================

func (s *FlowHandlerTestSuite) TestContinue() {
	s.mockCommands.EXPECT().ContinueFlow(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, in commands.ContinueInput) (*commands.FlowResult, error) {
			s.Equal(flow.StepAwaitingFriendInvites, in.StepID)
			s.JSONEq(`{"action":"create_invites","count":2}`, string(in.Data))
			return &commands.FlowResult{
				Action: flow.ActionComplete, NextStep: flow.StepCompleted, Success: true, InviteTokens: []string{"a", "b"},
			}, nil
		})

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/flows/continue", map[string]any{
		"token":  "tok",
		"stepId": "awaiting_friend_invites",
		"data":   map[string]any{"action": "create_invites", "count": 2},
	}, "")

	var body resdto.FlowResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal([]string{"a", "b"}, body.InviteTokens)
}

func (s *FlowHandlerTestSuite) TestStartInvite() {
	s.mockCommands.EXPECT().StartInviteFlow(gomock.Any(), commands.StartInviteInput{
		InviteToken: "invite-1", FriendUserID: "friend-1",
	}).Return(&commands.FlowResult{Action: flow.ActionRedirect, NextStep: flow.StepAwaitingJoinDecision, Token: "tok", Success: true}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/flows/invite", map[string]any{
		"inviteToken": "invite-1", "friendUserId": "friend-1",
	}, "")

	var body resdto.FlowResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("awaiting_join_decision", body.NextStep)
}
