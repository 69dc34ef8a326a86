package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"BOT_TOKEN", "ADMIN_CHAT_ID",
	"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
	"STATE_BACKEND", "REDIS_URL",
	"TRANSLATE_URL", "TRANSLATE_TIMEOUT", "METRICS_ADDR",
	"DICTIONARY_FILE", "DICTIONARY_IMPORT_ON_STARTUP", "DICTIONARY_RESET_BEFORE_IMPORT",
}

// setEnv clears every config variable and sets the given ones for the test
func setEnv(t *testing.T, values map[string]string) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	for key, value := range values {
		t.Setenv(key, value)
	}
}

func requiredEnv() map[string]string {
	return map[string]string{
		"BOT_TOKEN":     "test_token",
		"ADMIN_CHAT_ID": "1000",
		"DB_PASSWORD":   "test_db_password",
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_WithDefaults(t *testing.T) {
	setEnv(t, requiredEnv())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, int64(1000), cfg.AdminChatID)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "vocabu", cfg.Database.Name)
	assert.Equal(t, "vocabu", cfg.Database.User)
	assert.Equal(t, BackendPostgres, cfg.StateBackend)
	assert.Equal(t, 15*time.Second, cfg.TranslateTimeout)
	assert.Empty(t, cfg.TranslateURL)
	assert.Empty(t, cfg.MetricsAddr)
	assert.Equal(t, "dictionary.csv", cfg.Dictionary.File)
	assert.False(t, cfg.Dictionary.ImportOnStartup)
	assert.False(t, cfg.Dictionary.ResetBeforeLoad)
}

func TestLoad_Overrides(t *testing.T) {
	env := requiredEnv()
	env["STATE_BACKEND"] = "redis"
	env["REDIS_URL"] = "redis://localhost:6379/0"
	env["TRANSLATE_TIMEOUT"] = "3s"
	env["METRICS_ADDR"] = ":9090"
	env["DICTIONARY_IMPORT_ON_STARTUP"] = "true"
	env["DICTIONARY_RESET_BEFORE_IMPORT"] = "1"
	setEnv(t, env)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.StateBackend)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, 3*time.Second, cfg.TranslateTimeout)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.True(t, cfg.Dictionary.ImportOnStartup)
	assert.True(t, cfg.Dictionary.ResetBeforeLoad)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(env map[string]string)
		errContains string
	}{
		{
			name:        "missing bot token",
			modify:      func(env map[string]string) { delete(env, "BOT_TOKEN") },
			errContains: "BOT_TOKEN",
		},
		{
			name:        "missing db password",
			modify:      func(env map[string]string) { delete(env, "DB_PASSWORD") },
			errContains: "DB_PASSWORD",
		},
		{
			name:        "missing admin chat id",
			modify:      func(env map[string]string) { delete(env, "ADMIN_CHAT_ID") },
			errContains: "ADMIN_CHAT_ID",
		},
		{
			name:        "non numeric admin chat id",
			modify:      func(env map[string]string) { env["ADMIN_CHAT_ID"] = "admin" },
			errContains: "ADMIN_CHAT_ID",
		},
		{
			name:        "redis without url",
			modify:      func(env map[string]string) { env["STATE_BACKEND"] = "redis" },
			errContains: "REDIS_URL",
		},
		{
			name:        "unknown backend",
			modify:      func(env map[string]string) { env["STATE_BACKEND"] = "memory" },
			errContains: "STATE_BACKEND",
		},
		{
			name:        "bad timeout",
			modify:      func(env map[string]string) { env["TRANSLATE_TIMEOUT"] = "soon" },
			errContains: "TRANSLATE_TIMEOUT",
		},
		{
			name:        "bad bool",
			modify:      func(env map[string]string) { env["DICTIONARY_IMPORT_ON_STARTUP"] = "maybe" },
			errContains: "DICTIONARY_IMPORT_ON_STARTUP",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := requiredEnv()
			tt.modify(env)
			setEnv(t, env)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
