package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the engine
type Config struct {
	Content  ContentConfig
	Dialogue DialogueConfig
	Redis    RedisConfig
}

// ContentConfig holds content loading configuration
type ContentConfig struct {
	Dir string
}

// DialogueConfig holds remote dialogue channel configuration
type DialogueConfig struct {
	// CredentialEnvVar is the environment variable consulted first when
	// resolving the dialogue credential
	CredentialEnvVar string
	// CredentialFile is the rotatable secret file consulted second
	CredentialFile string
	BaseURL        string
	Model          string
	Timeout        time.Duration
	// Enabled is the initial position of the dialogue toggle
	Enabled bool
}

// RedisConfig holds optional transcript storage configuration
type RedisConfig struct {
	URL string // empty means in-memory transcripts
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Content: ContentConfig{
			Dir: getEnvOrDefault("WIZARDWARS_CONTENT_DIR", "content"),
		},
		Dialogue: DialogueConfig{
			CredentialEnvVar: getEnvOrDefault("WIZARDWARS_CREDENTIAL_ENV", "DIALOGUE_API_KEY"),
			CredentialFile:   getEnvOrDefault("WIZARDWARS_CREDENTIAL_FILE", "config/api_key.txt"),
			BaseURL:          os.Getenv("DIALOGUE_BASE_URL"),
			Model:            getEnvOrDefault("DIALOGUE_MODEL", "gemini-2.5-pro"),
			Timeout:          time.Duration(getEnvAsIntOrDefault("DIALOGUE_TIMEOUT_SECONDS", 30)) * time.Second,
			Enabled:          getEnvAsBoolOrDefault("WIZARDWARS_DIALOGUE_ENABLED", false),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
