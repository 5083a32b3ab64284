package config

import (
	"os"
	"strings"
	"time"
)

// Server captures process-level configuration. Optional backends (Redis,
// Postgres, Kafka) stay disabled when their setting is empty, leaving the
// flat-file and in-memory defaults in place.
type Server struct {
	Addr          string
	LogLevel      string
	DataDir       string
	JWTSigningKey string
	SessionTTL    time.Duration

	RedisURL     string
	PostgresDSN  string
	KafkaBrokers []string
	KafkaTopic   string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	cfg := Server{
		Addr:          envOr("AURUM_ADDR", ":8080"),
		LogLevel:      envOr("AURUM_LOG_LEVEL", "info"),
		DataDir:       envOr("AURUM_DATA_DIR", "data"),
		JWTSigningKey: envOr("AURUM_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		SessionTTL:    30 * time.Minute,
		RedisURL:      os.Getenv("AURUM_REDIS_URL"),
		PostgresDSN:   os.Getenv("AURUM_POSTGRES_DSN"),
		KafkaTopic:    envOr("AURUM_KAFKA_TOPIC", "aurum.notifications"),
	}
	if ttl := os.Getenv("AURUM_SESSION_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			cfg.SessionTTL = d
		}
	}
	if brokers := os.Getenv("AURUM_KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
