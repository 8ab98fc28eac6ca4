package config

import (
	"errors"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds all configuration for the auth module.
type Config struct {
	// JWT Configuration
	JWTSecretKey   string        `env:"JWT_SECRET_KEY,required"`
	JWTIssuer      string        `env:"JWT_ISSUER" envDefault:"mentorhub-registry"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"24h"`

	// Cookie Configuration
	CookieName     string `env:"COOKIE_NAME" envDefault:"mh_auth_token"`
	CookiePath     string `env:"COOKIE_PATH" envDefault:"/"`
	CookieDomain   string `env:"COOKIE_DOMAIN" envDefault:""`
	CookieSecure   bool   `env:"COOKIE_SECURE" envDefault:"false"`
	CookieHTTPOnly bool   `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	CookieSameSite string `env:"COOKIE_SAME_SITE" envDefault:"Lax"`
}

// LoadConfig loads configuration from environment variables and applies defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load configuration from environment: " + err.Error() +
			". Please ensure all required environment variables are set.")
	}

	if cfg.JWTSecretKey == "" {
		return nil, errors.New("jwt_secret_key is required")
	}
	if cfg.AccessTokenTTL <= 0 {
		return nil, errors.New("access_token_ttl must be positive")
	}

	cfg.CookieSameSite = normalizeSameSite(cfg.CookieSameSite)
	if cfg.CookieSameSite == "" {
		return nil, errors.New("cookie_same_site must be one of 'Lax', 'Strict', or 'None'")
	}

	return cfg, nil
}

func normalizeSameSite(v string) string {
	switch strings.ToLower(v) {
	case "lax":
		return "Lax"
	case "strict":
		return "Strict"
	case "none":
		return "None"
	}
	return ""
}
