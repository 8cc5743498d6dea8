package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

const (
	IdentityStorePostgres  = "postgres"
	IdentityStoreFirestore = "firestore"
)

type Config struct {
	Port           int      `env:"PORT" envDefault:"8080"`
	IsTestMode     bool     `env:"TEST_MODE" envDefault:"false"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	PushServerURL           url.URL       `env:"PUSH_SERVER_URL,required"`
	PushRequestTimeout      time.Duration `env:"PUSH_REQUEST_TIMEOUT" envDefault:"10s"`
	ReminderDeliveryTimeout time.Duration `env:"REMINDER_DELIVERY_TIMEOUT" envDefault:"30s"`
	Timezone                string        `env:"TIMEZONE" envDefault:"Local"`

	IdentityStore            string `env:"IDENTITY_STORE" envDefault:"postgres"`
	PostgresqlURL            string `env:"POSTGRESQL_URL"`
	FirestoreProjectID       string `env:"FIRESTORE_PROJECT_ID"`
	FirestoreCredentialsPath string `env:"FIRESTORE_CREDENTIALS_PATH"`
	FirestoreUsersCollection string `env:"FIRESTORE_USERS_COLLECTION" envDefault:"users"`

	RedisURL                 string `env:"REDIS_URL"`
	ScheduleRateLimitPerHour uint16 `env:"SCHEDULE_RATE_LIMIT_PER_HOUR" envDefault:"60"`

	SentryDsn string `env:"SENTRY_DSN"`

	location *time.Location
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE value: %w", err)
	}
	cfg.location = location

	if cfg.PushServerURL.Scheme != "http" && cfg.PushServerURL.Scheme != "https" {
		return nil, fmt.Errorf("PUSH_SERVER_URL must be an http(s) URL, got %q", cfg.PushServerURL.String())
	}
	if cfg.PushRequestTimeout <= 0 {
		return nil, errors.New("PUSH_REQUEST_TIMEOUT must be positive")
	}
	if cfg.ReminderDeliveryTimeout <= 0 {
		return nil, errors.New("REMINDER_DELIVERY_TIMEOUT must be positive")
	}

	switch cfg.IdentityStore {
	case IdentityStorePostgres:
		if cfg.PostgresqlURL == "" {
			return nil, errors.New("POSTGRESQL_URL must be set")
		}
	case IdentityStoreFirestore:
		if cfg.FirestoreProjectID == "" {
			return nil, errors.New("FIRESTORE_PROJECT_ID must be set")
		}
	default:
		return nil, fmt.Errorf("unknown IDENTITY_STORE value: %q", cfg.IdentityStore)
	}

	return cfg, nil
}

// Location is the time zone daily reminders are computed in.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

func (c *Config) RateLimitingEnabled() bool {
	return c.RedisURL != ""
}
