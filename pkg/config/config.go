package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	FirebaseProject string
	StorageBucket   string
	Environment     string

	RedisAddr     string
	RedisPassword string

	// TTL for cached listings and the category index.
	ListingCacheTTL time.Duration
	// TTL for the dashboard stats entry. Invalidation is explicit on every
	// mutation; the TTL is a safety net against a missed purge.
	StatsCacheTTL time.Duration
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		StorageBucket:   getEnv("STORAGE_BUCKET", ""),
		Environment:     getEnv("ENVIRONMENT", "development"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		ListingCacheTTL: getEnvAsSeconds("LISTING_CACHE_TTL", 600),
		StatsCacheTTL:   getEnvAsSeconds("STATS_CACHE_TTL", 300),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsSeconds(key string, defaultValue int64) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return time.Duration(intValue) * time.Second
		}
	}
	return time.Duration(defaultValue) * time.Second
}
