package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Back Office"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Log struct {
		Level  string `envconfig:"LOG_LEVEL" default:"info"`
		Format string `envconfig:"LOG_FORMAT" default:"text"`
		// File is where the TUI writes its log; the terminal belongs to the UI.
		File string `envconfig:"LOG_FILE" default:"backoffice.log"`
	}

	Backend struct {
		URL     string        `envconfig:"BACKEND_URL" default:"http://localhost:8000"`
		Token   string        `envconfig:"BACKEND_TOKEN"`
		Timeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"30s"`
	}

	Dashboard struct {
		LLCName         string `envconfig:"LLC_NAME" default:"Empire LLC"`
		SuggestionLimit int    `envconfig:"SUGGESTION_LIMIT" default:"50"`
		UploadLogSize   int    `envconfig:"UPLOAD_LOG_SIZE" default:"10"`
	}

	Server struct {
		Timeout     time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		CORSOrigins []string      `envconfig:"CORS_ORIGINS" default:"*"`
	}
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Backend.URL) == "" {
		return fmt.Errorf("BACKEND_URL must not be empty")
	}

	if c.Dashboard.SuggestionLimit <= 0 {
		return fmt.Errorf("SUGGESTION_LIMIT must be positive, got %d", c.Dashboard.SuggestionLimit)
	}

	if c.Dashboard.UploadLogSize <= 0 {
		return fmt.Errorf("UPLOAD_LOG_SIZE must be positive, got %d", c.Dashboard.UploadLogSize)
	}

	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
