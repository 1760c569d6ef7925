package config

import (
	"github.com/caarlos0/env/v11"

	"adpilot/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package for
// default values. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger.
	Log configs.Logger `envPrefix:"LOG_"`

	// Store selects where users and campaign runs are kept.
	Store configs.Store `envPrefix:"STORE_"`

	// Psql configures the PostgreSQL connection used by the postgres store.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// GoogleAds holds the credentials and endpoint of the Google Ads API.
	GoogleAds configs.GoogleAds `envPrefix:"GOOGLE_ADS_"`

	// LLM configures the OpenAI compatible chat completion backend.
	LLM configs.LLM `envPrefix:"LLM_"`

	// ImageGen configures the logo generator.
	ImageGen configs.ImageGen `envPrefix:"IMAGEGEN_"`

	// Fetch configures landing page downloads.
	Fetch configs.Fetch `envPrefix:"FETCH_"`

	// Agent holds the fixed campaign settings applied by the builder.
	Agent configs.Agent `envPrefix:"AGENT_"`
}

// Load reads configuration from environment variables into a Config. All
// fields are loaded with their specified defaults when no environment
// variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
