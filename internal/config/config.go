package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const DefaultEnvFile = ".env"

var validate = validator.New()

// Config holds the process settings read from the environment.
type Config struct {
	Port      string `validate:"required"`
	DataFile  string `validate:"required"`
	JWTSecret string `validate:"required,min=16"`
	Timezone  string `validate:"required"`
	LogLevel  string `validate:"oneof=debug info warn error fatal"`

	// Optional OpenAI-compatible endpoint for coaching insights. The model has no
	// default since model names differ between providers.
	AIURL   string `validate:"omitempty,url"`
	AIKey   string
	AIModel string `validate:"required_with=AIURL"`

	Location *time.Location `validate:"-"`
}

// Load reads envFile when it exists and then the process environment.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
			}
			log.Debug("No env file, using process environment", "file", envFile)
		}
	}

	cfg := &Config{
		Port:      get("HABITS_PORT", ":8080"),
		DataFile:  get("HABITS_DATA_FILE", "habits.json"),
		JWTSecret: os.Getenv("HABITS_JWT_SECRET"),
		Timezone:  get("HABITS_TIMEZONE", "Local"),
		LogLevel:  get("LOG_LEVEL", "info"),
		AIURL:     os.Getenv("AI_URL"),
		AIKey:     os.Getenv("AI_API_KEY"),
		AIModel:   os.Getenv("AI_MODEL"),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid HABITS_TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	return cfg, nil
}

// AIEnabled reports whether coaching insights can be requested.
func (c *Config) AIEnabled() bool {
	return c.AIURL != "" && c.AIKey != ""
}

func get(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		return v
	}
	return fallback
}
