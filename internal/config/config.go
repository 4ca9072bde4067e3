package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Upstream tiers API, e.g. https://api.extiers.xyz/api/v1
	UpstreamURL string

	// Snapshot cache; empty RedisURL falls back to the in-memory store
	RedisURL string
	CacheTTL time.Duration

	// Background refresh; zero disables polling
	RefreshInterval time.Duration

	// Per-deployment gamemode allow-list
	Gamemodes []string

	// How long search error messages stay visible before self-clearing
	SearchErrorTTL time.Duration
}

// Load loads configuration from environment variables.
// It returns an error if critical configuration is missing.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		RedisURL: getEnv("REDIS_URL", ""),
		CacheTTL: getEnvDuration("CACHE_TTL", 10*time.Minute),

		RefreshInterval: getEnvDuration("REFRESH_INTERVAL", 30*time.Second),
		SearchErrorTTL:  getEnvDuration("SEARCH_ERROR_TTL", 2*time.Second),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	for _, o := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	// Gamemode allow-list
	modes := getEnv("GAMEMODES", "lifesteal,trident_mace")
	for _, m := range strings.Split(modes, ",") {
		if trimmed := strings.TrimSpace(m); trimmed != "" {
			cfg.Gamemodes = append(cfg.Gamemodes, trimmed)
		}
	}
	if len(cfg.Gamemodes) == 0 {
		return nil, fmt.Errorf("GAMEMODES must list at least one gamemode")
	}

	// Critical configuration - fail if missing
	var err error
	if cfg.UpstreamURL, err = getEnvRequired("UPSTREAM_URL"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
