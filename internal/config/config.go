package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort     int
	DatabasePath   string
	UpstreamAPIURL string        // Base URL of the question/category REST API
	APICacheTTL    time.Duration // TTL for cached upstream responses
	CacheVersion   string        // Version tag for the offline cache buckets
	NotifySchedule string        // Cron expression for the weekly reminder
	Timezone       string        // IANA zone the reminder schedule is evaluated in
	AllowedOrigin  string
}

// Load loads configuration from environment variables or sets defaults.
// A .env file in the working directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	ttl, err := time.ParseDuration(getEnv("API_CACHE_TTL", "3m"))
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:     port,
		DatabasePath:   getEnv("DATABASE_PATH", "./jugjiggasha.db"),
		UpstreamAPIURL: getEnv("UPSTREAM_API_URL", "http://localhost/Jugjiggasha/api"),
		APICacheTTL:    ttl,
		CacheVersion:   getEnv("CACHE_VERSION", "jug-jiggasha-v2.0.0"),
		// Saturday 23:08, the weekly mojlis reminder slot.
		NotifySchedule: getEnv("NOTIFY_SCHEDULE", "8 23 * * 6"),
		Timezone:       getEnv("TIMEZONE", "Asia/Dhaka"),
		AllowedOrigin:  getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
