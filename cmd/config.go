package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	ServiceName string
	Environment string
	LogLevel    string
	HTTPPort    int

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// AMQPURL enables cross-instance notification fan-out when set.
	AMQPURL      string
	AMQPExchange string

	StaleReadyAfter    time.Duration
	StaleReadySchedule string

	OTLPEndpoint string
	OTLPInsecure bool
	TraceStdout  bool

	ShutdownTimeout time.Duration
}

// LoadConfig reads the environment, after loading .env when one exists.
func LoadConfig() Config {
	_ = godotenv.Load(".env")

	return Config{
		ServiceName: cast.ToString(getOrReturnDefault("SERVICE_NAME", "orderdispatch")),
		Environment: cast.ToString(getOrReturnDefault("ENVIRONMENT", "local")),
		LogLevel:    cast.ToString(getOrReturnDefault("LOG_LEVEL", "info")),
		HTTPPort:    cast.ToInt(getOrReturnDefault("HTTP_PORT", 8080)),

		DBHost:     cast.ToString(getOrReturnDefault("DB_HOST", "localhost")),
		DBPort:     cast.ToString(getOrReturnDefault("DB_PORT", "5432")),
		DBUser:     cast.ToString(getOrReturnDefault("DB_USER", "postgres")),
		DBPassword: cast.ToString(getOrReturnDefault("DB_PASSWORD", "")),
		DBName:     cast.ToString(getOrReturnDefault("DB_NAME", "orderdispatch")),
		DBSslMode:  cast.ToString(getOrReturnDefault("DB_SSLMODE", "disable")),

		AMQPURL:      cast.ToString(getOrReturnDefault("AMQP_URL", "")),
		AMQPExchange: cast.ToString(getOrReturnDefault("AMQP_EXCHANGE", "order_dispatch.notifications")),

		StaleReadyAfter:    cast.ToDuration(getOrReturnDefault("STALE_READY_AFTER", "10m")),
		StaleReadySchedule: cast.ToString(getOrReturnDefault("STALE_READY_SCHEDULE", "0 * * * * *")),

		OTLPEndpoint: cast.ToString(getOrReturnDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")),
		OTLPInsecure: cast.ToBool(getOrReturnDefault("OTEL_EXPORTER_OTLP_INSECURE", true)),
		TraceStdout:  cast.ToBool(getOrReturnDefault("TRACE_STDOUT", false)),

		ShutdownTimeout: cast.ToDuration(getOrReturnDefault("SHUTDOWN_TIMEOUT", "10s")),
	}
}

// DSN is the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func getOrReturnDefault(key string, defaultValue any) any {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
