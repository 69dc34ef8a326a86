package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// State backends for pending interactions and exercises
const (
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	AdminChatID int64
	Database    DatabaseConfig

	StateBackend string
	RedisURL     string

	TranslateURL     string
	TranslateTimeout time.Duration

	// MetricsAddr is the listen address of /metrics. Empty disables it.
	MetricsAddr string

	Dictionary DictionaryConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// DictionaryConfig controls the dictionary import
type DictionaryConfig struct {
	File            string
	ImportOnStartup bool
	ResetBeforeLoad bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "vocabu"),
			User:     getEnv("DB_USER", "vocabu"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		StateBackend: getEnv("STATE_BACKEND", BackendPostgres),
		RedisURL:     os.Getenv("REDIS_URL"),
		TranslateURL: os.Getenv("TRANSLATE_URL"),
		MetricsAddr:  os.Getenv("METRICS_ADDR"),
		Dictionary: DictionaryConfig{
			File: getEnv("DICTIONARY_FILE", "dictionary.csv"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	adminChatID := os.Getenv("ADMIN_CHAT_ID")
	if adminChatID == "" {
		return nil, fmt.Errorf("ADMIN_CHAT_ID is required")
	}
	id, err := strconv.ParseInt(adminChatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("ADMIN_CHAT_ID must be an integer: %w", err)
	}
	cfg.AdminChatID = id

	switch cfg.StateBackend {
	case BackendPostgres:
	case BackendRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("REDIS_URL is required for STATE_BACKEND=redis")
		}
	default:
		return nil, fmt.Errorf("unknown STATE_BACKEND %q", cfg.StateBackend)
	}

	if cfg.TranslateTimeout, err = time.ParseDuration(getEnv("TRANSLATE_TIMEOUT", "15s")); err != nil {
		return nil, fmt.Errorf("invalid TRANSLATE_TIMEOUT: %w", err)
	}
	if cfg.Dictionary.ImportOnStartup, err = getBool("DICTIONARY_IMPORT_ON_STARTUP"); err != nil {
		return nil, err
	}
	if cfg.Dictionary.ResetBeforeLoad, err = getBool("DICTIONARY_RESET_BEFORE_IMPORT"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
