package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Ingest   IngestConfig
	Scoring  ScoringConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

type IngestConfig struct {
	Workers      int
	RatePerSec   int
	FetchTimeout time.Duration
	Headless     bool
}

// ScoringConfig carries aggregate weight overrides read from the
// environment. Zero values mean "use the engine defaults".
type ScoringConfig struct {
	VisaWeight      float64
	ResumeWeight    float64
	RelevanceWeight float64
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:        durationEnv("DB_CONNECT_TIMEOUT_SECONDS", 5),
		PoolMaxConns:          int32(intEnv("DB_POOL_MAX_CONNS", 10)),
		PoolMinConns:          int32(intEnv("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   durationEnv("DB_POOL_MAX_CONN_LIFETIME_SECONDS", 1800),
		PoolMaxConnIdleTime:   durationEnv("DB_POOL_MAX_CONN_IDLE_SECONDS", 300),
		PoolHealthCheckPeriod: durationEnv("DB_POOL_HEALTHCHECK_SECONDS", 60),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      durationEnv("REDIS_TTL", 600),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     opt("JWT_ACCESS_SECRET"),
		RefreshSecret:    opt("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  durationEnv("JWT_ACCESS_EXPIRES_SECONDS", 900),
		RefreshExpiresIn: durationEnv("JWT_REFRESH_EXPIRES_SECONDS", 604800),
	}

	cfg.Ingest = IngestConfig{
		Workers:      intEnv("INGEST_WORKERS", 4),
		RatePerSec:   intEnv("INGEST_RATE_PER_SEC", 2),
		FetchTimeout: durationEnv("INGEST_FETCH_TIMEOUT_SECONDS", 25),
		Headless:     boolEnv("INGEST_HEADLESS", false),
	}

	cfg.Scoring = ScoringConfig{
		VisaWeight:      floatEnv("SCORING_VISA_WEIGHT", 0),
		ResumeWeight:    floatEnv("SCORING_RESUME_WEIGHT", 0),
		RelevanceWeight: floatEnv("SCORING_RELEVANCE_WEIGHT", 0),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func intEnv(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func floatEnv(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

func boolEnv(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func durationEnv(key string, defSeconds int) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	v, err := strconv.Atoi(raw)
	if raw == "" || err != nil || v <= 0 {
		v = defSeconds
	}
	return time.Duration(v) * time.Second
}
