package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration settings. Handlers receive this struct at
// construction so tests can override defaults per case.
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// RedisURL is the cache backing-store connection string.
	RedisURL string

	// GitHub configuration. Owner/repo are fixed for this service.
	RepoOwner   string
	RepoName    string
	GitHubToken string
	RateLimit   int // upstream requests per second

	// Default query window used when the caller omits since/until.
	DefaultSince string
	DefaultUntil string

	// CacheTTL bounds how long an aggregate is served without refetching.
	CacheTTL time.Duration
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Port:         "8080",
		RedisURL:     "redis://localhost:6379",
		RepoOwner:    "teradici",
		RepoName:     "deploy",
		RateLimit:    10,
		DefaultSince: "2019-06-01",
		DefaultUntil: "2020-05-31",
		CacheTTL:     2 * time.Minute,
	}
}

// Load builds configuration from defaults overlaid with the environment.
// A .env file in the working directory is loaded first when present, so all
// secrets come from a single source; a missing file is not an error.
func Load() *Config {
	_ = godotenv.Load()

	cfg := Default()
	cfg.Port = getEnvOrDefault("PORT", cfg.Port)
	cfg.RedisURL = getEnvOrDefault("REDIS_URL", cfg.RedisURL)
	cfg.GitHubToken = os.Getenv("GITHUB_TOKEN")
	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
