package assertion

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/clearauth/oauthkit/pkg/queryparams"
)

// Config holds the service-account settings an assertion is built from.
type Config struct {
	// Issuer is the service-account identity, typically its email address.
	Issuer string `env:"OAUTH_SA_ISSUER,required"`
	// Subject is the user to impersonate; empty for plain service-account access.
	Subject string `env:"OAUTH_SA_SUBJECT"`
	// Audience is the token endpoint the assertion is presented to.
	Audience string `env:"OAUTH_SA_AUDIENCE,required"`
	// Scopes requested by the assertion, space-joined into the scope claim.
	Scopes []string `env:"OAUTH_SA_SCOPES" envSeparator:","`
	// PrivateKey is the PEM-encoded signing key. May stay empty when a
	// custom signing capability is injected via WithSignFunc.
	PrivateKey string `env:"OAUTH_SA_PRIVATE_KEY"`
	// Lifetime bounds the assertion validity window.
	Lifetime time.Duration `env:"OAUTH_SA_LIFETIME" envDefault:"1h"`
}

// Validate checks the fields every assertion needs regardless of signer.
// The returned error names the first missing field in sorted order and wraps
// queryparams.ErrMissingParam.
func (c Config) Validate() error {
	return queryparams.Validate(map[string]string{
		"audience": c.Audience,
		"issuer":   c.Issuer,
	})
}

// LoadConfig populates a Config from environment variables, loading a .env
// file first when one exists in the working directory.
func LoadConfig() (Config, error) {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse assertion config: %w", err)
	}

	return cfg, nil
}
