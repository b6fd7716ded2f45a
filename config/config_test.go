package config

import (
	"errors"
	"options-strategy/services"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var configEnvKeys = []string{
	"HOST", "PORT", "GIN_MODE", "LOG_LEVEL", "LOG_FORMAT",
	"OPTION_CHAIN_PATH", "OPTION_CHAIN_URL", "OPTION_CHAIN_TIMEOUT",
	"PAYOFF_STEP_MODE", "PAYOFF_STEP", "PAYOFF_STEP_FRACTION",
	"PAYOFF_LOWER_BOUND", "PAYOFF_UPPER_BOUND", "PAYOFF_MAX_POINTS", "METRICS_ENABLED",
}

// clearEnv blanks every config variable; viper ignores empty values
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.Addr() != "0.0.0.0:8000" {
		t.Fatalf("unexpected addr %s", cfg.Server.Addr())
	}
	if cfg.OptionChain.Path != "data/option_chain.json" || cfg.OptionChain.Timeout != 30*time.Second {
		t.Fatalf("unexpected option chain config %+v", cfg.OptionChain)
	}
	if cfg.Sampling != services.DefaultSamplingConfig() {
		t.Fatalf("unexpected sampling config %+v", cfg.Sampling)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("expected metrics enabled by default")
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("unexpected log config %+v", cfg.Log)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9001")
	t.Setenv("PAYOFF_STEP_MODE", "Proportional")
	t.Setenv("PAYOFF_STEP_FRACTION", "0.02")
	t.Setenv("OPTION_CHAIN_URL", "http://chain.local/options")
	t.Setenv("OPTION_CHAIN_TIMEOUT", "5s")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.Port != 9001 {
		t.Fatalf("expected port 9001, got %d", cfg.Server.Port)
	}
	if cfg.Sampling.Mode != services.StepModeProportional || cfg.Sampling.StepFraction != 0.02 {
		t.Fatalf("unexpected sampling config %+v", cfg.Sampling)
	}
	if cfg.OptionChain.URL != "http://chain.local/options" || cfg.OptionChain.Timeout != 5*time.Second {
		t.Fatalf("unexpected option chain config %+v", cfg.OptionChain)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("expected metrics disabled")
	}
}

func TestLoadRejectsInvalidStep(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAYOFF_STEP", "0")

	_, err := Load()
	if !errors.Is(err, services.ErrInvalidSamplingConfig) {
		t.Fatalf("expected ErrInvalidSamplingConfig, got %v", err)
	}
}

func TestLoadMaxPoints(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAYOFF_MAX_POINTS", "500")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Sampling.MaxPoints != 500 {
		t.Fatalf("expected max points 500, got %d", cfg.Sampling.MaxPoints)
	}

	t.Setenv("PAYOFF_MAX_POINTS", "-1")
	if _, err := Load(); !errors.Is(err, services.ErrInvalidSamplingConfig) {
		t.Fatalf("expected ErrInvalidSamplingConfig, got %v", err)
	}
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "70000")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for out of range port")
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that already exist, even empty ones
	os.Unsetenv("PAYOFF_STEP")
	t.Cleanup(func() { os.Unsetenv("PAYOFF_STEP") })

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PAYOFF_STEP=50\n"), 0644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Sampling.Step != 50 {
		t.Fatalf("expected step 50 from env file, got %f", cfg.Sampling.Step)
	}
}
