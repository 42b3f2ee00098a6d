package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the auction service reads at startup.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	GRPC     GRPCConfig
	JWT      JWTConfig
}

// AppConfig configures the HTTP server and logging.
type AppConfig struct {
	Host         string
	Port         string
	LogLevel     string
	LogEncoding  string
	CookieSecure bool
}

// PostgresConfig configures the relational store.
type PostgresConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DB           string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

// DSN returns a postgres:// URL usable by both pgx and golang-migrate.
func (c PostgresConfig) DSN() string {
	u := &url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		User:   url.UserPassword(c.User, c.Password),
		Path:   c.DB,
	}
	q := u.Query()
	q.Set("sslmode", c.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// RedisConfig configures the session denylist store.
type RedisConfig struct {
	Host         string
	Port         int
	DB           int
	Password     string
	PoolSize     int
	MinIdleConns int
}

// Addr returns host:port.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// KafkaConfig configures auction event publishing.
// Publishing is disabled when Brokers is empty.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// GRPCConfig configures the gRPC health endpoint.
type GRPCConfig struct {
	Host string
	Port string
}

// JWTConfig configures session tokens.
type JWTConfig struct {
	SecretKey string
	Exp       time.Duration
}

// Load reads the optional env file at path and then the process environment.
// Variables already set in the environment win over the file.
func Load(path string) (Config, error) {
	_ = godotenv.Load(path)

	var (
		cfg Config
		err error
	)

	// Application config
	cfg.App.Host = getEnv("APP_HOST", "localhost")
	cfg.App.Port = getEnv("APP_PORT", "8080")
	cfg.App.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.App.LogEncoding = getEnv("APP_LOG_ENCODING", "json")
	if cfg.App.CookieSecure, err = getEnvBool("APP_COOKIE_SECURE", false); err != nil {
		return Config{}, err
	}

	// PostgreSQL config
	cfg.Postgres.Host = getEnv("POSTGRES_HOST", "localhost")
	cfg.Postgres.User = getEnv("POSTGRES_USER", "user")
	cfg.Postgres.Password = getEnv("POSTGRES_PASSWORD", "password")
	cfg.Postgres.DB = getEnv("POSTGRES_DB", "auctions")
	cfg.Postgres.SSLMode = getEnv("POSTGRES_SSLMODE", "disable")
	if cfg.Postgres.Port, err = getEnvInt("POSTGRES_PORT", 5432); err != nil {
		return Config{}, err
	}
	if cfg.Postgres.MaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return Config{}, err
	}
	if cfg.Postgres.MaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return Config{}, err
	}

	// Redis config
	cfg.Redis.Host = getEnv("REDIS_HOST", "localhost")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	if cfg.Redis.Port, err = getEnvInt("REDIS_PORT", 6379); err != nil {
		return Config{}, err
	}
	if cfg.Redis.DB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.Redis.PoolSize, err = getEnvInt("REDIS_POOL_SIZE", 10); err != nil {
		return Config{}, err
	}
	if cfg.Redis.MinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return Config{}, err
	}

	// Kafka config
	cfg.Kafka.Brokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.Kafka.Topic = getEnv("KAFKA_TOPIC", "auction-events")

	// gRPC config
	cfg.GRPC.Host = getEnv("GRPC_HOST", "localhost")
	cfg.GRPC.Port = getEnv("GRPC_PORT", "50051")

	// JWT config
	cfg.JWT.SecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	expSeconds, err := getEnvInt("JWT_EXP_SECOND", 86400)
	if err != nil {
		return Config{}, err
	}
	cfg.JWT.Exp = time.Duration(expSeconds) * time.Second

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, strconv.Itoa(defaultValue))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not an integer: %w", key, raw, err)
	}
	return v, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	raw := getEnv(key, strconv.FormatBool(defaultValue))
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("config: %s=%q is not a boolean: %w", key, raw, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
