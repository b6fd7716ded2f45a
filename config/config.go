// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"options-strategy/services"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration
type Config struct {
	Server      ServerConfig
	Log         LogConfig
	OptionChain OptionChainConfig
	Sampling    services.SamplingConfig
	Metrics     MetricsConfig
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Host    string
	Port    int
	GinMode string
}

// Addr returns the listen address
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string
	Format string
}

// OptionChainConfig holds the reference data source
type OptionChainConfig struct {
	Path    string
	URL     string // Takes precedence over Path when set
	Timeout time.Duration
}

// MetricsConfig holds Prometheus exposition settings
type MetricsConfig struct {
	Enabled bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 8000)
	v.SetDefault("gin_mode", "release")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("option_chain_path", "data/option_chain.json")
	v.SetDefault("option_chain_url", "")
	v.SetDefault("option_chain_timeout", 30*time.Second)

	sampling := services.DefaultSamplingConfig()
	v.SetDefault("payoff_step_mode", sampling.Mode)
	v.SetDefault("payoff_step", sampling.Step)
	v.SetDefault("payoff_step_fraction", sampling.StepFraction)
	v.SetDefault("payoff_lower_bound", sampling.LowerBound)
	v.SetDefault("payoff_upper_bound", sampling.UpperBound)
	v.SetDefault("payoff_max_points", sampling.MaxPoints)

	v.SetDefault("metrics_enabled", true)
}

// Load reads an optional .env file and then the process environment.
// Pass no files to use ".env" in the working directory.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Host:    v.GetString("host"),
			Port:    v.GetInt("port"),
			GinMode: v.GetString("gin_mode"),
		},
		Log: LogConfig{
			Level:  v.GetString("log_level"),
			Format: v.GetString("log_format"),
		},
		OptionChain: OptionChainConfig{
			Path:    v.GetString("option_chain_path"),
			URL:     v.GetString("option_chain_url"),
			Timeout: v.GetDuration("option_chain_timeout"),
		},
		Sampling: services.SamplingConfig{
			Mode:         strings.ToLower(v.GetString("payoff_step_mode")),
			Step:         v.GetFloat64("payoff_step"),
			StepFraction: v.GetFloat64("payoff_step_fraction"),
			LowerBound:   v.GetFloat64("payoff_lower_bound"),
			UpperBound:   v.GetFloat64("payoff_upper_bound"),
			MaxPoints:    v.GetInt("payoff_max_points"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("metrics_enabled"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for values the service cannot start with
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Server.Port)
	}
	if c.OptionChain.URL == "" && c.OptionChain.Path == "" {
		return errors.New("option chain path or url is required")
	}
	if c.OptionChain.Timeout <= 0 {
		return fmt.Errorf("option chain timeout must be positive, got %s", c.OptionChain.Timeout)
	}
	return c.Sampling.Validate()
}
