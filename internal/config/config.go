package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config 应用配置
type Config struct {
	Env             string
	Port            string
	DBDriver        string // sqlite（默认，内存库）或 postgres
	SQLiteDSN       string
	DatabaseURL     string
	RankCacheTTL    time.Duration
	SearchCacheSize int
}

// Load 加载配置
func Load() *Config {
	dbUser := getEnv("DB_USER", "postgres")
	dbPass := getEnv("DB_PASSWORD", "postgres")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbName := getEnv("DB_NAME", "movierank")
	dbSSL := getEnv("DB_SSLMODE", "disable")

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		dbUser, dbPass, dbHost, dbPort, dbName, dbSSL)

	ttlSeconds, _ := strconv.Atoi(getEnv("RANK_CACHE_TTL_SECONDS", "60"))
	cacheSize, _ := strconv.Atoi(getEnv("SEARCH_CACHE_SIZE", "1000"))

	return &Config{
		Env:             getEnv("APP_ENV", "development"),
		Port:            getEnv("PORT", "5005"),
		DBDriver:        getEnv("DB_DRIVER", "sqlite"),
		SQLiteDSN:       getEnv("SQLITE_DSN", ":memory:"),
		DatabaseURL:     dbURL,
		RankCacheTTL:    time.Duration(ttlSeconds) * time.Second,
		SearchCacheSize: cacheSize,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
