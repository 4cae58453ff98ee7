package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Flow     FlowConfig
	Calendar CalendarConfig
	Redis    RedisConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// JWTConfig holds the master secret. Access-token and flow-token keys are both derived from it.
type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"720h"`
	Issuer   string        `envconfig:"JWT_ISSUER" default:"session-booking"`
}

type FlowConfig struct {
	IdempotencyLease     time.Duration `envconfig:"FLOW_IDEMPOTENCY_LEASE" default:"2m"`
	IdempotencyRetention time.Duration `envconfig:"FLOW_IDEMPOTENCY_RETENTION" default:"24h"`
	AdminUserID          string        `envconfig:"FLOW_ADMIN_USER_ID" default:"admin"`
}

type CalendarConfig struct {
	CredentialsFile     string   `envconfig:"GCAL_CREDENTIALS_FILE"`
	SessionCalendarID   string   `envconfig:"GCAL_SESSION_CALENDAR_ID"`
	BlockingCalendarIDs []string `envconfig:"GCAL_BLOCKING_CALENDAR_IDS"`
	EventTitlePrefix    string   `envconfig:"GCAL_EVENT_TITLE_PREFIX" default:"Session"`
	HoldTitlePrefix     string   `envconfig:"GCAL_HOLD_TITLE_PREFIX" default:"[HOLD]"`
	// Timezone labels created events; instants are always sent with an explicit offset.
	Timezone string `envconfig:"GCAL_EVENT_TIMEZONE" default:"UTC"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_NOTIFY_DB" default:"0"`
	Queue    string `envconfig:"REDIS_NOTIFY_QUEUE" default:"notifications"`
}

type WorkerConfig struct {
	Enabled         bool          `envconfig:"WORKER_ENABLED" default:"true"`
	RelayInterval   time.Duration `envconfig:"WORKER_RELAY_INTERVAL" default:"5s"`
	RelayBatchSize  int           `envconfig:"WORKER_RELAY_BATCH_SIZE" default:"50"`
	RelayMaxAttempt int           `envconfig:"WORKER_RELAY_MAX_ATTEMPTS" default:"5"`
	RelayLease      time.Duration `envconfig:"WORKER_RELAY_LEASE" default:"5m"`
	JanitorInterval time.Duration `envconfig:"WORKER_JANITOR_INTERVAL" default:"10m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// AllCalendarIDs returns the session calendar followed by the blocking calendars, de-duplicated.
func (c CalendarConfig) AllCalendarIDs() []string {
	seen := make(map[string]struct{}, len(c.BlockingCalendarIDs)+1)
	ids := make([]string, 0, len(c.BlockingCalendarIDs)+1)
	for _, id := range append([]string{c.SessionCalendarID}, c.BlockingCalendarIDs...) {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-master-secret-at-least-32-bytes!!",
			Duration: time.Hour,
			Issuer:   "session-booking-test",
		},
		Flow: FlowConfig{
			IdempotencyLease:     time.Minute,
			IdempotencyRetention: time.Hour,
			AdminUserID:          "admin",
		},
		Calendar: CalendarConfig{
			SessionCalendarID:   "sessions@test",
			BlockingCalendarIDs: []string{"personal@test"},
			EventTitlePrefix:    "Session",
			HoldTitlePrefix:     "[HOLD]",
			Timezone:            "UTC",
		},
		Redis: RedisConfig{
			Addr:  "localhost:16379",
			Queue: "notifications",
		},
		Worker: WorkerConfig{
			Enabled:         false,
			RelayInterval:   time.Second,
			RelayBatchSize:  10,
			RelayMaxAttempt: 3,
			RelayLease:      2 * time.Minute,
			JanitorInterval: time.Minute,
		},
	}
}
