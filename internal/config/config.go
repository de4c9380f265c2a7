package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, parsed from the environment.
// DATABASE_PATH and the identity-provider credentials are required;
// startup fails without them.
type Config struct {
	Port         string `env:"PORT" envDefault:"6600"`
	DatabasePath string `env:"DATABASE_PATH,required"`
	CORSOrigin   string `env:"CORS_ORIGIN" envDefault:"http://localhost:6680"`

	Identity IdentityConfig
}

// IdentityConfig configures the external identity provider.
type IdentityConfig struct {
	// JWTSecret verifies provider-issued session tokens.
	JWTSecret string `env:"IDENTITY_JWT_SECRET,required"`
	// APIURL is the provider's management API base URL.
	APIURL string `env:"IDENTITY_API_URL" envDefault:"https://api.clerk.com"`
	// APIKey authorizes profile lookups against the management API.
	APIKey string `env:"IDENTITY_API_KEY,required"`
}

// Load reads configuration from the environment, honoring a local .env
// file when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
