package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Session   SessionConfig
	RateLimit RateLimitConfig
	Calc      CalcConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SessionConfig holds session store configuration
type SessionConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// CalcConfig holds GP calculation configuration
type CalcConfig struct {
	MealMarker     string `mapstructure:"meal_marker"`
	Currency       string `mapstructure:"currency"`
	MinTokenLength int    `mapstructure:"min_token_length"`
	DebugMatching  bool   `mapstructure:"debug_matching"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/bigappetite/")

	// Environment variable settings
	v.SetEnvPrefix("BIGAPPETITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Session defaults
	v.SetDefault("session.ttl", "24h")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)

	// Calculation defaults
	v.SetDefault("calc.meal_marker", "Meal:")
	v.SetDefault("calc.currency", "£")
	v.SetDefault("calc.min_token_length", 3)
	v.SetDefault("calc.debug_matching", false)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.RateLimit.PerIP <= 0 {
		return fmt.Errorf("ratelimit.per_ip must be positive, got: %d", config.RateLimit.PerIP)
	}

	if config.Calc.MealMarker == "" {
		return fmt.Errorf("calc.meal_marker must not be empty")
	}

	if config.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive, got: %s", config.Session.TTL)
	}

	return nil
}
