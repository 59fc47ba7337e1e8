package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Redis    RedisConfig
	JWT      JWTConfig
	CORS     CORSConfig
	Chat     ChatConfig
	Snapshot SnapshotConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

// StorageConfig selects the key-value bridge driver backing the
// cart/wishlist/session state.
type StorageConfig struct {
	Driver   string // memory, file, redis
	FilePath string // file driver only
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret             string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

// ChatConfig tunes the simulated assistant.
type ChatConfig struct {
	ResponseDelay time.Duration
}

// SnapshotConfig drives the periodic backup of the file store.
type SnapshotConfig struct {
	Enabled  bool
	Schedule string // cron expression
	Dir      string
	Keep     int // backups retained
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Storage: StorageConfig{
			Driver:   getEnv("STORAGE_DRIVER", "file"),
			FilePath: getEnv("STORAGE_FILE_PATH", "data/luxe-store.json"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       parseInt(getEnv("REDIS_DB", "0"), 0),
		},
		JWT: JWTConfig{
			Secret:             getEnv("JWT_SECRET", "your-secret-key"),
			AccessTokenExpiry:  parseDuration(getEnv("JWT_ACCESS_TOKEN_EXPIRY", "15m")),
			RefreshTokenExpiry: parseDuration(getEnv("JWT_REFRESH_TOKEN_EXPIRY", "168h")),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
		Chat: ChatConfig{
			ResponseDelay: parseDuration(getEnv("CHAT_RESPONSE_DELAY", "1s")),
		},
		Snapshot: SnapshotConfig{
			Enabled:  getEnv("SNAPSHOT_ENABLED", "true") == "true",
			Schedule: getEnv("SNAPSHOT_SCHEDULE", "0 * * * *"),
			Dir:      getEnv("SNAPSHOT_DIR", "data/backups"),
			Keep:     parseInt(getEnv("SNAPSHOT_KEEP", "24"), 24),
		},
	}

	return config, nil
}

// Addr returns the host:port pair for the Redis client.
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Invalid duration %s, using default 15m", s)
		return 15 * time.Minute
	}
	return duration
}

func parseInt(s string, defaultValue int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return n
}

func parseSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
