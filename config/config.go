package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	VerifyToken     string `env:"WEBHOOK_VERIFY_TOKEN"`
	GraphAPIToken   string `env:"GRAPH_API_TOKEN"`
	OpenAIKey       string `env:"OPENAI_API_KEY"`
	LegacyOpenAIKey string `env:"OPEN_AI_API_KEY"`

	Port            string        `env:"PORT" envDefault:"5002"`
	GraphAPIURL     string        `env:"GRAPH_API_URL" envDefault:"https://graph.facebook.com"`
	GraphAPIVersion string        `env:"GRAPH_API_VERSION" envDefault:"v22.0"`
	OpenAIBaseURL   string        `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1/"`
	HTTPTimeout     time.Duration `env:"HTTP_CLIENT_TIMEOUT" envDefault:"30s"`

	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"json"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"whatsapp-webhook"`
}

// Load reads an optional .env file and then the process environment.
// It does not check required secrets; call Validate for that.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using system environment variables")
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.OpenAIKey == "" {
		cfg.OpenAIKey = cfg.LegacyOpenAIKey
	}

	return &cfg, nil
}

// Validate reports every missing required secret at once.
func (c *Config) Validate() error {
	var errs []error

	if c.VerifyToken == "" {
		errs = append(errs, errors.New("WEBHOOK_VERIFY_TOKEN environment variable is required"))
	}

	if c.GraphAPIToken == "" {
		errs = append(errs, errors.New("GRAPH_API_TOKEN environment variable is required"))
	}

	if c.OpenAIKey == "" {
		errs = append(errs, errors.New("OPENAI_API_KEY environment variable is required"))
	}

	return errors.Join(errs...)
}
