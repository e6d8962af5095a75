package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates the settings of the signup service.
type Config struct {
	DatabaseURL     string
	JWTSecret       string
	TokenTTL        time.Duration
	Port            string
	StaticDir       string
	LogLevel        string
	RateLimitSignup RateLimitConfig
	AllowedOrigins  []string
}

// fileConfig is the optional YAML overlay named by SIGNUP_CONFIG_FILE.
type fileConfig struct {
	DatabaseURL     string   `yaml:"database_url"`
	JWTSecret       string   `yaml:"jwt_secret"`
	JWTTTL          string   `yaml:"jwt_ttl"`
	Port            string   `yaml:"port"`
	StaticDir       string   `yaml:"static_dir"`
	LogLevel        string   `yaml:"log_level"`
	RateLimitSignup string   `yaml:"rate_limit_signup"`
	AllowedOrigins  []string `yaml:"cors_allowed_origins"`
}

// Load reads configuration from the optional config file and environment
// variables. Environment values win over the file, and defaults fill the rest.
func Load() (*Config, error) {
	var file fileConfig
	if path := os.Getenv("SIGNUP_CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		DatabaseURL: getEnv("DATABASE_URL", file.DatabaseURL),
		JWTSecret:   getEnv("JWT_SECRET", or(file.JWTSecret, "dev-secret")),
		Port:        getEnv("PORT", or(file.Port, "8080")),
		StaticDir:   getEnv("STATIC_DIR", or(file.StaticDir, "web")),
		LogLevel:    getEnv("LOG_LEVEL", or(file.LogLevel, "info")),
	}

	ttl, err := parseDuration(getEnv("JWT_TTL", or(file.JWTTTL, "24h")))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL value: %w", err)
	}
	cfg.TokenTTL = ttl

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_SIGNUP", or(file.RateLimitSignup, "5/min")))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_SIGNUP value: %w", err)
	}
	cfg.RateLimitSignup = rl

	if origins, ok := os.LookupEnv("CORS_ALLOWED_ORIGINS"); ok && origins != "" {
		cfg.AllowedOrigins = splitList(origins)
	} else {
		cfg.AllowedOrigins = file.AllowedOrigins
	}

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func or(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseDuration(input string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(input))
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %s", d)
	}
	return d, nil
}
