package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/ulule/limiter/v3"
)

// Config holds API server configuration
type Config struct {
	ServerPort         string
	CORSAllowedOrigins []string
	EnableHSTS         bool
	ServerDebugMode    bool
	RateLimit          string
	RedisURL           string
	OTELEnabled        bool
	OTELEndpoint       string
	OpenAPIPath        string
	RequestTimeout     time.Duration
}

// Load loads configuration from environment variables. A .env file in the
// working directory is read first when present; real environment
// variables take precedence over it.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		ServerPort:         getEnv("SERVER_PORT", "5000"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		EnableHSTS:         getEnvBool("ENABLE_HSTS", false),
		ServerDebugMode:    getEnvBool("SERVER_DEBUG_MODE", false),
		RateLimit:          getEnv("RATE_LIMIT", "50-S"),
		RedisURL:           getEnv("REDIS_URL", ""),
		OTELEnabled:        getEnvBool("OTEL_ENABLED", false),
		OTELEndpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		OpenAPIPath:        getEnv("OPENAPI_PATH", "api/openapi/openapi.yaml"),
		RequestTimeout:     time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be a port number, got %q", cfg.ServerPort)
	}

	if _, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT is invalid: %w", err)
	}

	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// splitList splits a comma-separated list, dropping blanks and duplicates
func splitList(raw string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, p := range strings.Split(raw, ",") {
		s := strings.TrimSpace(p)
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
