package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, dispatch limits, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Dispatch DispatchConfig
	Push     PushConfig
	Sweep    SweepConfig
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
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PATCH,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

// DispatchConfig bounds the proximity matching pipeline.
type DispatchConfig struct {
	DefaultRadiusKm  float64       `envconfig:"DISPATCH_DEFAULT_RADIUS_KM" default:"10"`
	MaxCandidates    int           `envconfig:"DISPATCH_MAX_CANDIDATES" default:"30"`
	FreshnessWindow  time.Duration `envconfig:"DISPATCH_FRESHNESS_WINDOW" default:"5m"`
}

type PushConfig struct {
	// Empty token means degraded mode: the notifier returns the resolved
	// device tokens instead of pushing.
	AccessToken string        `envconfig:"PUSH_ACCESS_TOKEN" default:""`
	GatewayURL  string        `envconfig:"PUSH_GATEWAY_URL" default:"https://exp.host/--/api/v2/push/send"`
	BatchSize   int           `envconfig:"PUSH_BATCH_SIZE" default:"90"`
	Timeout     time.Duration `envconfig:"PUSH_TIMEOUT" default:"10s"`
}

type SweepConfig struct {
	Enabled    bool          `envconfig:"SWEEP_ENABLED" default:"true"`
	Schedule   string        `envconfig:"SWEEP_SCHEDULE" default:"*/5 * * * *"`
	PendingTTL time.Duration `envconfig:"SWEEP_PENDING_TTL" default:"30m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
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
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Dispatch: DispatchConfig{
			DefaultRadiusKm: 10,
			MaxCandidates:   30,
			FreshnessWindow: 5 * time.Minute,
		},
		Push: PushConfig{
			BatchSize: 90,
			Timeout:   10 * time.Second,
		},
		Sweep: SweepConfig{
			Enabled:    false,
			Schedule:   "*/5 * * * *",
			PendingTTL: 30 * time.Minute,
		},
	}
}
