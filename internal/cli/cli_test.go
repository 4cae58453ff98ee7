//go:build unit

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"session-booking/internal/domain/availability"
	"session-booking/internal/pkg/clock"
	"session-booking/internal/pkg/config"
	"session-booking/internal/pkg/errs"
	"session-booking/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRule = `
timezone: America/New_York
maxAdvanceDays: 30
minNoticeHours: 24
bufferMinutes: 15
maxBookingsPerDay: 4
slotIncrementMinutes: 30
weeklyAvailability:
  MON:
    - start: "09:00"
      end: "12:00"
    - start: "13:00"
      end: "17:00"
  WED:
    - start: "10:00"
      end: "14:00"
`

func testOptions() *RootOptions {
	return &RootOptions{LoadConfig: func() (config.Config, error) { return config.NewTestConfig(), nil }}
}

func run(t *testing.T, opts *RootOptions, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand(opts)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rule.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"slots", "rule", "token", "idempotency", "migrate"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestParseRule(t *testing.T) {
	rule, err := ParseRule([]byte(validRule))
	require.NoError(t, err)

	assert.Equal(t, "America/New_York", rule.Timezone)
	assert.Equal(t, []availability.Block{
		{Start: availability.NewTimeOfDay(9, 0), End: availability.NewTimeOfDay(12, 0)},
		{Start: availability.NewTimeOfDay(13, 0), End: availability.NewTimeOfDay(17, 0)},
	}, rule.WeeklyAvailability[availability.Monday])
	assert.Equal(t, 30, rule.SlotIncrementMinutes)
}

func TestParseRule_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		mark error
	}{
		{name: "bad time of day", yaml: "timezone: UTC\nslotIncrementMinutes: 30\nweeklyAvailability:\n  MON:\n    - start: \"9am\"\n      end: \"12:00\"\n", mark: errs.ErrValidation},
		{name: "unknown timezone", yaml: "timezone: Mars/Olympus\nslotIncrementMinutes: 30\n", mark: errs.ErrConfiguration},
		{name: "zero increment", yaml: "timezone: UTC\n", mark: errs.ErrConfiguration},
		{name: "overlapping blocks", yaml: "timezone: UTC\nslotIncrementMinutes: 30\nweeklyAvailability:\n  TUE:\n    - start: \"09:00\"\n      end: \"11:00\"\n    - start: \"10:00\"\n      end: \"12:00\"\n", mark: errs.ErrConfiguration},
		{name: "unknown weekday", yaml: "timezone: UTC\nslotIncrementMinutes: 30\nweeklyAvailability:\n  FUNDAY:\n    - start: \"09:00\"\n      end: \"11:00\"\n", mark: errs.ErrConfiguration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRule([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, errs.Is(err, tt.mark), "got %v", err)
		})
	}
}

func TestRuleCheck(t *testing.T) {
	t.Run("valid file prints each day", func(t *testing.T) {
		out, err := run(t, testOptions(), "rule", "check", "-f", writeFile(t, validRule))

		require.NoError(t, err)
		assert.Contains(t, out, "rule OK: 2 day(s)")
		assert.Contains(t, out, "MON [09:00-12:00 13:00-17:00]")
	})

	t.Run("invalid file fails with json result", func(t *testing.T) {
		out, err := run(t, testOptions(), "--format", "json", "rule", "check", "-f", writeFile(t, "timezone: UTC\n"))

		require.Error(t, err)
		var result RuleCheckResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "slotIncrementMinutes")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, testOptions(), "rule", "check", "-f", filepath.Join(t.TempDir(), "absent.yaml"))

		assert.Error(t, err)
	})
}

func TestTokenIssue(t *testing.T) {
	out, err := run(t, testOptions(), "--format", "json", "token", "issue", "--client-id", "web", "--role", "admin")
	require.NoError(t, err)

	var issued map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &issued))

	cfg := config.NewTestConfig()
	key, err := jwt.DeriveKey(cfg.JWT.Secret, jwt.AccessTokenKeyLabel)
	require.NoError(t, err)
	claims, err := jwt.NewService(key, cfg.JWT.Duration, cfg.JWT.Issuer, clock.NewRealClock()).ValidateToken(issued["token"])
	require.NoError(t, err)
	assert.Equal(t, "web", claims.ClientID)
	assert.Equal(t, jwt.RoleAdmin, claims.Role)

	_, err = run(t, testOptions(), "token", "issue", "--client-id", "web", "--role", "root")
	assert.Error(t, err)
}

func TestInvalidFormat(t *testing.T) {
	_, err := run(t, testOptions(), "--format", "xml", "rule", "check", "-f", writeFile(t, validRule))

	assert.ErrorContains(t, err, "invalid format")
}

func TestParseSlotsQuery(t *testing.T) {
	q, err := parseSlotsQuery("2025-03-03", "", 60)
	require.NoError(t, err)
	assert.Equal(t, q.StartDate, q.EndDate)

	_, err = parseSlotsQuery("2025-03-03", "2025-03-01", 60)
	assert.True(t, errs.Is(err, errs.ErrValidation))

	_, err = parseSlotsQuery("03/03/2025", "", 60)
	assert.True(t, errs.Is(err, errs.ErrValidation))
}
