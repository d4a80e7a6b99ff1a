package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env     string `envconfig:"APP_ENV" default:"development"`
	Port    int    `envconfig:"APP_PORT" default:"8080"`
	DB      DBConfig
	Limiter RateLimiterConfig
	CORS    CORSConfig
	Gemini  GeminiConfig
}

// database configuration
type DBConfig struct {
	DSN          string        `envconfig:"DATABASE_URL" required:"true"`
	MaxConns     int           `envconfig:"DB_MAX_CONNS" default:"20"`
	MaxConnLife  time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
}

// rate limiting configuration for outbound generation calls
type RateLimiterConfig struct {
	MaxRequests int           `envconfig:"RATE_LIMIT_MAX_REQUESTS" default:"60"`
	Window      time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
}

// CORS configuration
type CORSConfig struct {
	TrustedOrigins []string `envconfig:"CORS_TRUSTED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

// Gemini AI configuration
type GeminiConfig struct {
	APIKey     string        `envconfig:"GOOGLE_API_KEY" required:"true"`
	Model      string        `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash-exp"`
	Timeout    time.Duration `envconfig:"GEMINI_TIMEOUT" default:"30s"`
	MaxRetries int           `envconfig:"GEMINI_MAX_RETRIES" default:"3"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if c.DB.MaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be at least 1")
	}
	if c.Limiter.MaxRequests < 1 {
		return fmt.Errorf("RATE_LIMIT_MAX_REQUESTS must be at least 1")
	}
	if c.Limiter.Window <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	if c.Gemini.MaxRetries < 0 {
		return fmt.Errorf("GEMINI_MAX_RETRIES must be non-negative")
	}
	if len(c.CORS.TrustedOrigins) == 0 {
		return fmt.Errorf("at least one trusted origin must be specified")
	}

	key := strings.TrimSpace(c.Gemini.APIKey)
	if key == "" {
		return fmt.Errorf("GOOGLE_API_KEY must not be empty")
	}
	if c.IsProduction() {
		if len(key) < 30 {
			return fmt.Errorf("GOOGLE_API_KEY looks malformed (too short for production)")
		}
		lower := strings.ToLower(key)
		if strings.Contains(lower, "demo") || strings.Contains(lower, "test") {
			return fmt.Errorf("GOOGLE_API_KEY looks like a demo/test key, refusing to start in production")
		}
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// GetCORSOrigins returns the list of trusted CORS origins
func (c *Config) GetCORSOrigins() []string {
	origins := make([]string, 0, len(c.CORS.TrustedOrigins))
	for _, origin := range c.CORS.TrustedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
