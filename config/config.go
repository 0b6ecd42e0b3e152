package config

import (
	"os"
	"strconv"
	"sync"
)

// Config holds all application configuration
type Config struct {
	Env      string // "development" or "production"
	LogLevel string

	// Server settings
	Addr         string
	DatabasePath string

	// Client settings
	ServerURL   string
	APIRevision int
}

var (
	cfg  *Config
	once sync.Once
)

// Get returns the global configuration (singleton)
func Get() *Config {
	once.Do(func() {
		cfg = load()
	})
	return cfg
}

// load reads configuration from environment variables
func load() *Config {
	return &Config{
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		Addr:         getEnv("TODO_ADDR", ":8080"),
		DatabasePath: getEnv("TODO_DB", "sqlite.db"),

		ServerURL:   getEnv("TODO_SERVER_URL", "http://localhost:8080"),
		APIRevision: getEnvInt("TODO_API_REVISION", 3),
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env != "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
