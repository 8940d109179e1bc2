// Package config loads and validates environment variables at startup.
// Fail-fast: an invalid or missing required variable makes Load return an
// error and the process exit.
package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Backends accepted by STORE_BACKEND and NOTIFY_BACKEND.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"

	NotifyRedis = "redis"
	NotifyKafka = "kafka"
	NotifyLog   = "log"
)

// Config holds all runtime configuration for the placement service.
type Config struct {
	DatabaseURL   string
	RedisURL      string
	StoreBackend  string
	NotifyBackend string
	KafkaBrokers  []string
	KafkaTopic    string

	GRPCPort string
	HTTPPort string

	ApplicationValidity time.Duration
	OfferValidity       time.Duration

	SweepInterval      time.Duration
	SweepStartDelay    time.Duration
	SweepBatchSize     int
	WeeklyReminderDay  time.Weekday
	WeeklyReminderHour int
	SchedulerEnabled   bool

	LogJSON  bool
	LogLevel string
}

// Load reads a .env file when present, then the environment.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("STORE_BACKEND", StorePostgres)
	v.SetDefault("NOTIFY_BACKEND", NotifyRedis)
	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("KAFKA_TOPIC", "placement.notifications")
	v.SetDefault("GRPC_PORT", "9090")
	v.SetDefault("HTTP_PORT", "8083")
	v.SetDefault("APPLICATION_VALIDITY_DAYS", 14)
	v.SetDefault("OFFER_VALIDITY_DAYS", 7)
	v.SetDefault("SWEEP_INTERVAL_MINUTES", 60)
	v.SetDefault("SWEEP_START_DELAY_SECONDS", 12)
	v.SetDefault("SWEEP_BATCH_SIZE", 200)
	v.SetDefault("WEEKLY_REMINDER_DAY", "monday")
	v.SetDefault("WEEKLY_REMINDER_HOUR", 9)
	v.SetDefault("SCHEDULER_ENABLED", true)
	v.SetDefault("LOG_JSON", false)
	v.SetDefault("LOG_LEVEL", "info")
	return v
}

// FromViper builds a validated Config from v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:        v.GetString("DATABASE_URL"),
		RedisURL:           v.GetString("REDIS_URL"),
		StoreBackend:       strings.ToLower(v.GetString("STORE_BACKEND")),
		NotifyBackend:      strings.ToLower(v.GetString("NOTIFY_BACKEND")),
		KafkaTopic:         v.GetString("KAFKA_TOPIC"),
		GRPCPort:           v.GetString("GRPC_PORT"),
		HTTPPort:           v.GetString("HTTP_PORT"),
		SweepBatchSize:     v.GetInt("SWEEP_BATCH_SIZE"),
		WeeklyReminderHour: v.GetInt("WEEKLY_REMINDER_HOUR"),
		SchedulerEnabled:   v.GetBool("SCHEDULER_ENABLED"),
		LogJSON:            v.GetBool("LOG_JSON"),
		LogLevel:           v.GetString("LOG_LEVEL"),
	}
	for _, b := range strings.Split(v.GetString("KAFKA_BROKERS"), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}

	var err error
	if cfg.ApplicationValidity, err = positive(v, "APPLICATION_VALIDITY_DAYS", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.OfferValidity, err = positive(v, "OFFER_VALIDITY_DAYS", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.SweepInterval, err = positive(v, "SWEEP_INTERVAL_MINUTES", time.Minute); err != nil {
		return nil, err
	}
	delay := v.GetInt("SWEEP_START_DELAY_SECONDS")
	if delay < 0 {
		return nil, errors.Newf("SWEEP_START_DELAY_SECONDS must not be negative, got %d", delay)
	}
	cfg.SweepStartDelay = time.Duration(delay) * time.Second
	if cfg.SweepBatchSize < 1 {
		return nil, errors.Newf("SWEEP_BATCH_SIZE must be a positive integer, got %d", cfg.SweepBatchSize)
	}
	if cfg.WeeklyReminderDay, err = ParseWeekday(v.GetString("WEEKLY_REMINDER_DAY")); err != nil {
		return nil, errors.Wrap(err, "WEEKLY_REMINDER_DAY")
	}
	if cfg.WeeklyReminderHour < 0 || cfg.WeeklyReminderHour > 23 {
		return nil, errors.Newf("WEEKLY_REMINDER_HOUR must be within 0-23, got %d", cfg.WeeklyReminderHour)
	}

	switch cfg.StoreBackend {
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL is required")
		}
	case StoreMemory:
	default:
		return nil, errors.Newf("STORE_BACKEND must be %s or %s, got %q", StorePostgres, StoreMemory, cfg.StoreBackend)
	}

	switch cfg.NotifyBackend {
	case NotifyRedis:
		if cfg.RedisURL == "" {
			return nil, errors.New("REDIS_URL is required")
		}
	case NotifyKafka:
		if len(cfg.KafkaBrokers) == 0 || cfg.KafkaTopic == "" {
			return nil, errors.New("KAFKA_BROKERS and KAFKA_TOPIC are required")
		}
	case NotifyLog:
	default:
		return nil, errors.Newf("NOTIFY_BACKEND must be %s, %s or %s, got %q",
			NotifyRedis, NotifyKafka, NotifyLog, cfg.NotifyBackend)
	}
	return cfg, nil
}

// positive reads key as a positive integer count of unit.
func positive(v *viper.Viper, key string, unit time.Duration) (time.Duration, error) {
	raw := v.GetString(key)
	n := v.GetInt(key)
	if n < 1 {
		return 0, errors.Newf("%s must be a positive integer, got %q", key, raw)
	}
	return time.Duration(n) * unit, nil
}

// ParseWeekday accepts full or three-letter English day names.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.TrimSpace(s)
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := d.String()
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:3]) {
			return d, nil
		}
	}
	return 0, errors.Newf("unknown weekday %q", s)
}
