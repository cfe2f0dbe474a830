package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	BotPassword string
	Database    DatabaseConfig
	API         APIConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// APIConfig holds translation and speech gateway settings
type APIConfig struct {
	RapidAPIKey   string // gateway key for translator and speech
	TTSKey        string // VoiceRSS key
	TranslatorURL string
	TTSURL        string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		BotPassword: os.Getenv("BOT_PASSWORD"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "vocaquiz"),
			User:     getEnv("DB_USER", "vocaquiz"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		API: APIConfig{
			RapidAPIKey:   os.Getenv("RAPID_API_KEY"),
			TTSKey:        os.Getenv("TTS_API_KEY"),
			TranslatorURL: os.Getenv("TRANSLATOR_URL"),
			TTSURL:        os.Getenv("TTS_URL"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"BOT_TOKEN", c.BotToken},
		{"BOT_PASSWORD", c.BotPassword},
		{"DB_PASSWORD", c.Database.Password},
		{"RAPID_API_KEY", c.API.RapidAPIKey},
		{"TTS_API_KEY", c.API.TTSKey},
	}

	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s is required", r.name)
		}
	}
	return nil
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
