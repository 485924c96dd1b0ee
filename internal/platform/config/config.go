package config

import (
	"fmt"
	"log"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port               string
	DataDir            string
	JournalFile        string
	IsProduction       bool
	CORSAllowedOrigins []string
	RateLimit          string // ulule/limiter formatted rate, e.g. "300-M"; empty disables
	LogLevel           slog.Level
}

// JournalFilePath returns the location of the journal document.
func (c *Config) JournalFilePath() string {
	return filepath.Join(c.DataDir, c.JournalFile)
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "5000")
	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("JOURNAL_FILE", "journal-entries.json")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("LOG_LEVEL", "info")

	// Environment variables override defaults and anything loaded from .env.
	// A variable set to an empty value counts as set, so RATE_LIMIT= disables limiting.
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	cfg := &Config{
		Port:         v.GetString("PORT"),
		DataDir:      v.GetString("DATA_DIR"),
		JournalFile:  v.GetString("JOURNAL_FILE"),
		IsProduction: v.GetBool("IS_PRODUCTION"),
		RateLimit:    strings.TrimSpace(v.GetString("RATE_LIMIT")),
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.JournalFile == "" {
		return nil, fmt.Errorf("JOURNAL_FILE must not be empty")
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	levelStr := v.GetString("LOG_LEVEL")
	if levelStr == "" {
		levelStr = "info"
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to info.\n", levelStr)
	}

	return cfg, nil
}
