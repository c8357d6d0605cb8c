package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the process needs, loaded once at startup and
// injected into constructors. Nothing here is a package-level global.
type Config struct {
	HTTPPort string
	BaseURL  string

	DB    DBConfig
	SMTP  SMTPConfig
	Kafka KafkaConfig
	Auth  AuthConfig

	ClaimTTL      time.Duration
	SweepInterval time.Duration
	ImageDir      string
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type KafkaConfig struct {
	Brokers    []string
	AuditTopic string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// Load reads .env (if present) and builds the config from the environment.
func Load() (*Config, error) {
	for _, path := range []string{".env", "../.env"} {
		if err := godotenv.Load(path); err == nil {
			break
		}
	}

	cfg := &Config{
		HTTPPort:      getenv("HTTP_PORT", "9000"),
		BaseURL:       getenv("BASE_URL", "http://localhost:9000"),
		ClaimTTL:      getduration("CLAIM_TTL", 7*24*time.Hour),
		SweepInterval: getduration("SWEEP_INTERVAL", time.Hour),
		ImageDir:      getenv("IMAGE_DIR", "uploads"),
		DB: DBConfig{
			Host:     getenv("DB_HOST", "localhost"),
			Port:     getint("DB_PORT", 5432),
			User:     getenv("POSTGRES_USER", "postgres"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			Name:     getenv("POSTGRES_DB", "lostandfound"),
		},
		SMTP: SMTPConfig{
			Host:     getenv("EMAIL_HOST", "localhost"),
			Port:     getint("EMAIL_PORT", 587),
			User:     os.Getenv("EMAIL_USER"),
			Password: os.Getenv("EMAIL_PASSWORD"),
			From:     getenv("EMAIL_FROM", "notifications@lostandfound.com"),
		},
		Kafka: KafkaConfig{
			Brokers:    []string{getenv("KAFKA_BROKERS", "localhost:9092")},
			AuditTopic: getenv("KAFKA_AUDIT_TOPIC", "audit_logs"),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
			TokenTTL:  getduration("JWT_TTL", 30*24*time.Hour),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	return cfg, nil
}

// DSN renders the postgres connection string for pgxpool.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
