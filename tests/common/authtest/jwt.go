//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"session-booking/internal/pkg/clock"
	"session-booking/internal/pkg/config"
	"session-booking/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, clientID string, role jwt.Role) string {
	t.Helper()
	return h.generate(t, clientID, role, h.cfg.Duration, clock.NewRealClock())
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, clientID string, role jwt.Role) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-2 * time.Hour))
	return h.generate(t, clientID, role, time.Hour, past)
}

func (h *JWTHelper) generate(t *testing.T, clientID string, role jwt.Role, d time.Duration, clk clock.Clock) string {
	t.Helper()
	key, err := jwt.DeriveKey(h.cfg.Secret, jwt.AccessTokenKeyLabel)
	require.NoError(t, err)
	token, err := jwt.NewService(key, d, h.cfg.Issuer, clk).GenerateToken(clientID, role)
	require.NoError(t, err)
	return token
}
