package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App     AppConfig
	Backend BackendConfig
	Cache   CacheConfig
	Redis   RedisConfig
	Session SessionConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// BackendConfig trỏ tới library REST backend (source of truth duy nhất)
type BackendConfig struct {
	BaseURL string        // API_BASE_URL
	Timeout time.Duration // fixed client-side timeout, default 10s
}

// CacheConfig chọn driver cho collection cache
// memory (default) hoặc redis
type CacheConfig struct {
	Driver string        // CACHE_DRIVER: "memory" | "redis"
	TTL    time.Duration // staleness window cho collection đã fetch
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type SessionConfig struct {
	CookieName   string
	CookieSecure bool
	TTL          time.Duration
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Library Admin"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Backend: BackendConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:3000"),
			Timeout: time.Duration(getEnvInt("API_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Cache: CacheConfig{
			Driver: getEnv("CACHE_DRIVER", "memory"),
			TTL:    time.Duration(getEnvInt("CACHE_TTL_MINUTES", 5)) * time.Minute,
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Session: SessionConfig{
			CookieName:   getEnv("SESSION_COOKIE_NAME", "admin_session"),
			CookieSecure: getEnv("SESSION_COOKIE_SECURE", "false") == "true",
			TTL:          time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL must be set")
	}

	if c.Cache.Driver != "memory" && c.Cache.Driver != "redis" {
		return fmt.Errorf("CACHE_DRIVER must be memory or redis, got %q", c.Cache.Driver)
	}

	// Production phải bật secure cookie
	if c.App.Environment == "production" && !c.Session.CookieSecure {
		fmt.Println("WARNING: SESSION_COOKIE_SECURE not set - session cookie sent over plain HTTP")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
