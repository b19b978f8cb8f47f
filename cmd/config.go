package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string `validate:"required,oneof=dev development stage prod production"`
	HTTPPort string `validate:"required,numeric"`

	DBHost     string `validate:"required"`
	DBPort     string `validate:"required,numeric"`
	DBUser     string `validate:"required"`
	DBPassword string
	DBName     string `validate:"required"`
	DBSslMode  string `validate:"required,oneof=disable require verify-ca verify-full"`

	TxMaxAttempts int `validate:"gte=1,lte=20"`

	// Event publishing is disabled when no brokers are configured.
	KafkaBrokers           []string      `validate:"omitempty,dive,hostname_port"`
	KafkaOrderChangedTopic string        `validate:"required_with=KafkaBrokers"`
	KafkaBatchTimeout      time.Duration `validate:"gte=0"`

	AuditSchedule string `validate:"required"`
	ServicePolicy string `validate:"required,oneof=first cheapest"`
	QuoteCurrency string `validate:"required,len=3,uppercase"`
}

// LoadConfig reads the configuration from the environment, after loading .env when
// the file exists, and validates it.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	configs := Config{
		AppEnv:   env("APP_ENV", "dev"),
		HTTPPort: env("HTTP_PORT", "8080"),

		DBHost:     env("DB_HOST", "localhost"),
		DBPort:     env("DB_PORT", "5432"),
		DBUser:     env("DB_USER", ""),
		DBPassword: env("DB_PASSWORD", ""),
		DBName:     env("DB_NAME", "forwarding"),
		DBSslMode:  env("DB_SSLMODE", "disable"),

		TxMaxAttempts: envInt("TX_MAX_ATTEMPTS", 5),

		KafkaBrokers:           envList("KAFKA_HOST"),
		KafkaOrderChangedTopic: env("KAFKA_ORDER_CHANGED_TOPIC", "order.status.changed"),
		KafkaBatchTimeout:      envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),

		AuditSchedule: env("AUDIT_SCHEDULE", "0 */5 * * * *"),
		ServicePolicy: env("SERVICE_POLICY", "first"),
		QuoteCurrency: env("QUOTE_CURRENCY", "USD"),
	}

	if err := configs.Validate(); err != nil {
		return Config{}, err
	}
	return configs, nil
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// DSN builds the libpq connection string for gorm's postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

func (c Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func envList(key string) []string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
