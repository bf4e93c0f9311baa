package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App       AppConfig
	Logger    LoggerConfig
	Mail      MailConfig
	Redis     RedisConfig
	Telemetry TelemetryConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	SiteName              string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// MailConfig controls relaying tickets to the support inbox.
// Relay is enabled only when both APIKey and SupportInbox are set.
type MailConfig struct {
	APIKey             string
	SupportInbox       string
	From               string
	SendTimeoutSeconds int
}

// RedisConfig holds Redis connection values for submission rate limiting.
// An empty Addr disables rate limiting.
type RedisConfig struct {
	Addr          string
	Password      string
	DB            int
	RatePerMinute int
}

// TelemetryConfig holds tracing exporter settings.
type TelemetryConfig struct {
	OTLPEndpoint string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "support-desk"),
			SiteName:              getEnv("SITE_NAME", "Solana Support Desk"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Mail: MailConfig{
			APIKey:             strings.TrimSpace(os.Getenv("RESEND_API_KEY")),
			SupportInbox:       strings.TrimSpace(os.Getenv("SUPPORT_INBOX_EMAIL")),
			From:               getEnv("MAIL_FROM", "Solana Support Desk <tickets@resend.dev>"),
			SendTimeoutSeconds: getEnvAsInt("MAIL_SEND_TIMEOUT_SECONDS", 10),
		},
		Redis: RedisConfig{
			Addr:          os.Getenv("REDIS_ADDR"),
			Password:      os.Getenv("REDIS_PASSWORD"),
			DB:            redisDB,
			RatePerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 10),
		},
		Telemetry: TelemetryConfig{
			OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Enabled reports whether tickets should be relayed by email.
func (m MailConfig) Enabled() bool {
	return m.APIKey != "" && m.SupportInbox != ""
}

// SendTimeout bounds a single relay call. It never returns zero.
func (m MailConfig) SendTimeout() time.Duration {
	if m.SendTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(m.SendTimeoutSeconds) * time.Second
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
