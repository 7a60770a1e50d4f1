package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServiceName string
	LogLevel    string

	ServerPort int

	DatabaseURL  string
	ResetOnStart bool

	APIURL            string
	CacheTTL          time.Duration
	HTTPClientTimeout time.Duration
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("notice: .env file not found: %v. Using system environment variables", err)
	}

	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "order-management"),
		LogLevel:    EnvDefault("LOG_LEVEL", "info"),

		ServerPort: EnvIntDefault("SERVER_PORT", 8000),

		DatabaseURL:  EnvDefault("DATABASE_URL", "database.db"),
		ResetOnStart: EnvBoolDefault("DB_RESET_ON_START", false),

		APIURL:            strings.TrimRight(EnvDefault("API_URL", "http://127.0.0.1:8000"), "/"),
		CacheTTL:          EnvDurationDefault("DASHBOARD_CACHE_TTL", 0),
		HTTPClientTimeout: EnvDurationDefault("HTTP_CLIENT_TIMEOUT", 5*time.Second),
	}
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func EnvBoolDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func EnvDurationDefault(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
