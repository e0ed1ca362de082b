package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from an optional config
// file and TRIVIA_-prefixed environment variables.
type Config struct {
	Env        string        `mapstructure:"env"`          // current environment (local, production)
	APIBaseURL string        `mapstructure:"api_base_url"` // Open Trivia DB endpoint
	Amount     int           `mapstructure:"amount"`       // questions requested per fetch
	Timeout    time.Duration `mapstructure:"timeout"`      // per-request timeout
	DBPath     string        `mapstructure:"db_path"`      // SQLite path; empty = XDG default
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("api_base_url", "https://opentdb.com/api.php")
	v.SetDefault("amount", 10)
	v.SetDefault("timeout", "15s")
	v.SetDefault("db_path", "")

	v.SetEnvPrefix("TRIVIA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Missing config file is fine; everything has a default.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the loaded values against what the trivia API accepts.
func (c *Config) Validate() error {
	// The API serves at most 50 questions per request.
	if c.Amount < 1 || c.Amount > 50 {
		return fmt.Errorf("amount must be between 1 and 50, got %d", c.Amount)
	}
	if c.APIBaseURL == "" {
		return errors.New("api_base_url must not be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}
