package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvProduction is the APP_ENV value under which fallbacks are forbidden.
const EnvProduction = "production"

// devJWTSecret is the development-only signing secret. Load refuses to use
// it when APP_ENV=production.
const devJWTSecret = "dev-insecure-secret"

// ErrMissingJWTSecret indicates AUTH_JWT_SECRET was not set in production.
var ErrMissingJWTSecret = errors.New("AUTH_JWT_SECRET is required in production")

// ErrMissingPostgresDSN indicates POSTGRES_DSN was not set in production.
var ErrMissingPostgresDSN = errors.New("POSTGRES_DSN is required in production")

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Airtable AirtableConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWTSecret      string
	UsingDevSecret bool
	TokenTTLHours  int
	BcryptCost     int
	CookieName     string
	SecureCookies  bool
}

// AirtableConfig holds credentials for the startup record store. When any
// field is empty the service serves mock data instead.
type AirtableConfig struct {
	APIKey    string
	BaseID    string
	TableName string
	CacheTTL  time.Duration
}

// Configured reports whether all Airtable credentials are present.
func (a AirtableConfig) Configured() bool {
	return a.APIKey != "" && a.BaseID != "" && a.TableName != ""
}

// Load reads configuration from environment variables, applying defaults
// where possible. Missing secrets fail loudly in production and fall back
// to labeled development defaults otherwise.
func Load() (*Config, error) {
	_ = godotenv.Load()

	env := getEnv("APP_ENV", "development")

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	secret := os.Getenv("AUTH_JWT_SECRET")
	usingDevSecret := false
	if secret == "" {
		if env == EnvProduction {
			return nil, ErrMissingJWTSecret
		}
		secret = devJWTSecret
		usingDevSecret = true
	}

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" && env == EnvProduction {
		return nil, ErrMissingPostgresDSN
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "investor-insight"),
			Env:                   env,
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            dsn,
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:      secret,
			UsingDevSecret: usingDevSecret,
			TokenTTLHours:  getEnvAsInt("AUTH_TOKEN_TTL_HOURS", 24),
			BcryptCost:     getEnvAsInt("AUTH_BCRYPT_COST", 12),
			CookieName:     getEnv("AUTH_COOKIE_NAME", "auth-token"),
			SecureCookies:  env == EnvProduction,
		},
		Airtable: AirtableConfig{
			APIKey:    os.Getenv("AIRTABLE_API_KEY"),
			BaseID:    os.Getenv("AIRTABLE_BASE_ID"),
			TableName: os.Getenv("AIRTABLE_TABLE_NAME"),
			CacheTTL:  time.Duration(getEnvAsInt("AIRTABLE_CACHE_TTL_SECONDS", 300)) * time.Second,
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

// TokenTTL returns the credential lifetime.
func (a AuthConfig) TokenTTL() time.Duration {
	if a.TokenTTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(a.TokenTTLHours) * time.Hour
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

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
