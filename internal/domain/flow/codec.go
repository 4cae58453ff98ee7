package flow

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"session-booking/internal/pkg/clock"
	"session-booking/internal/pkg/errs"
)

// TokenTTL is the fixed validity window of every flow token, measured from encode time.
const TokenTTL = 2 * time.Hour

var ErrInvalidFlowToken = errs.New("invalid flow token")

type TokenSigner interface {
	Sign(payload []byte, ttl time.Duration) (string, error)
	Verify(token string) ([]byte, error)
}

// Codec is the only place that turns a State into a token and back.
type Codec struct {
	signer TokenSigner
	clock  clock.Clock
}

func NewCodec(signer TokenSigner, clk clock.Clock) *Codec {
	return &Codec{signer: signer, clock: clk}
}

func (c *Codec) Encode(s State) (string, error) {
	if !IsReachable(s.FlowType, s.CurrentStep) {
		return "", errs.Newf("refusing to encode unreachable step %s/%s", s.FlowType, s.CurrentStep)
	}
	s.ExpiresAt = c.clock.Now().Add(TokenTTL).UTC().Truncate(time.Second)

	payload, err := json.Marshal(s)
	if err != nil {
		return "", errs.Wrap(err, "marshal flow state")
	}
	token, err := c.signer.Sign(payload, TokenTTL)
	if err != nil {
		return "", errs.Wrap(err, "sign flow state")
	}
	return token, nil
}

func (c *Codec) Decode(token string) (State, error) {
	payload, err := c.signer.Verify(token)
	if err != nil {
		return State{}, errs.Mark(errs.Wrap(err, "verify flow token"), ErrInvalidFlowToken)
	}

	var s State
	if err := json.Unmarshal(payload, &s); err != nil {
		return State{}, errs.Mark(errs.Wrap(err, "decode flow state"), ErrInvalidFlowToken)
	}
	if !IsReachable(s.FlowType, s.CurrentStep) {
		return State{}, errs.Mark(errs.Newf("unreachable step %s/%s", s.FlowType, s.CurrentStep), ErrInvalidFlowToken)
	}
	if !c.clock.Now().Before(s.ExpiresAt) {
		return State{}, errs.Mark(errs.New("flow state expired"), ErrInvalidFlowToken)
	}
	return s, nil
}

// TokenKey is the storage key for a token: its SHA-256, hex encoded.
func TokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
