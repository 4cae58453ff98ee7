//go:build unit

package flow_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"session-booking/internal/domain/flow"
	"session-booking/internal/pkg/clock"
	"session-booking/internal/pkg/errs"
	"session-booking/internal/pkg/jwt"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CodecTestSuite struct {
	suite.Suite
	clock *clock.MockClock
	codec *flow.Codec
	key   []byte
}

func (s *CodecTestSuite) SetupTest() {
	s.clock = clock.NewMockClock(time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC))
	key, err := jwt.DeriveKey("codec-test-secret", jwt.FlowTokenKeyLabel)
	s.Require().NoError(err)
	s.key = key
	s.codec = flow.NewCodec(jwt.NewSigner(key, "test", s.clock), s.clock)
}

func TestCodecSuite(t *testing.T) {
	suite.Run(t, new(CodecTestSuite))
}

func sampleStates() []flow.State {
	return []flow.State{
		{
			UserID:                 "u-100",
			FlowType:               flow.TypePrimaryBooking,
			CurrentStep:            flow.StepAwaitingWaiver,
			SessionTypeID:          2,
			AppointmentDateTimeISO: "2025-03-03T15:00:00Z",
			PlaceholderID:          "hold-evt-1",
		},
		{
			UserID:                 "u-100",
			FlowType:               flow.TypePrimaryBooking,
			CurrentStep:            flow.StepAwaitingFriendInvites,
			SessionTypeID:          3,
			AppointmentDateTimeISO: "2025-03-03T15:00:00Z",
			ParentSessionID:        "1d7c1bd6-8a4e-4b7f-9d60-0d0f4f5e4a11",
			FirstName:              "Ana",
			LastName:               "Silva",
			LiabilityFormData:      json.RawMessage(`{"agreed":true,"conditions":["none"]}`),
		},
		{
			UserID:                 "friend-7",
			FlowType:               flow.TypeFriendInvite,
			CurrentStep:            flow.StepAwaitingFriendWaiver,
			SessionTypeID:          3,
			AppointmentDateTimeISO: "2025-03-03T15:00:00Z",
			InviteToken:            "inv-123",
			ParentSessionID:        "1d7c1bd6-8a4e-4b7f-9d60-0d0f4f5e4a11",
		},
	}
}

func (s *CodecTestSuite) TestRoundTrip() {
	for _, in := range sampleStates() {
		s.Run(string(in.FlowType)+"/"+string(in.CurrentStep), func() {
			token, err := s.codec.Encode(in)
			s.Require().NoError(err)

			got, err := s.codec.Decode(token)
			s.Require().NoError(err)

			want := in
			want.ExpiresAt = s.clock.Now().Add(flow.TokenTTL)
			if diff := cmp.Diff(want, got); diff != "" {
				s.T().Errorf("Decode(Encode(s)) mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func (s *CodecTestSuite) TestDecodeRejects() {
	in := sampleStates()[0]
	token, err := s.codec.Encode(in)
	s.Require().NoError(err)

	s.Run("flipped signature byte", func() {
		sigStart := strings.LastIndex(token, ".") + 1
		i := sigStart + 10
		replacement := byte('A')
		if token[i] == 'A' {
			replacement = 'B'
		}
		tampered := token[:i] + string(replacement) + token[i+1:]

		_, err := s.codec.Decode(tampered)
		s.True(errs.Is(err, flow.ErrInvalidFlowToken), "got %v", err)
	})

	s.Run("elapsed TTL", func() {
		s.clock.Add(flow.TokenTTL)
		defer s.clock.Add(-flow.TokenTTL)

		_, err := s.codec.Decode(token)
		s.True(errs.Is(err, flow.ErrInvalidFlowToken), "got %v", err)
	})

	s.Run("token signed with another key", func() {
		otherKey, err := jwt.DeriveKey("another-secret", jwt.FlowTokenKeyLabel)
		s.Require().NoError(err)
		other := flow.NewCodec(jwt.NewSigner(otherKey, "test", s.clock), s.clock)
		foreign, err := other.Encode(in)
		s.Require().NoError(err)

		_, err = s.codec.Decode(foreign)
		s.True(errs.Is(err, flow.ErrInvalidFlowToken), "got %v", err)
	})

	s.Run("garbage", func() {
		_, err := s.codec.Decode("not-a-token")
		s.True(errs.Is(err, flow.ErrInvalidFlowToken), "got %v", err)
	})

	s.Run("validly signed but unreachable step", func() {
		payload, err := json.Marshal(flow.State{
			FlowType:    flow.TypeFriendInvite,
			CurrentStep: flow.StepFinalizeBooking,
			ExpiresAt:   s.clock.Now().Add(time.Hour),
		})
		s.Require().NoError(err)
		forged, err := jwt.NewSigner(s.key, "test", s.clock).Sign(payload, time.Hour)
		s.Require().NoError(err)

		_, err = s.codec.Decode(forged)
		s.True(errs.Is(err, flow.ErrInvalidFlowToken), "got %v", err)
	})
}

func (s *CodecTestSuite) TestEncodeRefusesUnreachableStep() {
	_, err := s.codec.Encode(flow.State{FlowType: flow.TypePrimaryBooking, CurrentStep: flow.StepAwaitingJoinDecision})
	s.Error(err)
}

func TestTokenKey(t *testing.T) {
	a := flow.TokenKey("token-a")
	require.Len(t, a, 64)
	assert.Equal(t, a, flow.TokenKey("token-a"))
	assert.NotEqual(t, a, flow.TokenKey("token-b"))
}
