package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	configPathEnv     = "CONFIG_PATH"
	defaultConfigPath = "./config.yaml"
)

// Load reads configuration from the YAML file named by CONFIG_PATH
// (fallback ./config.yaml) and the environment. Priority is
// ENV > YAML > env-default tags. A missing default file is not an error;
// a missing explicit one is.
func Load() (*Config, error) {
	path, explicit := os.LookupEnv(configPathEnv)
	if !explicit || path == "" {
		return load(defaultConfigPath, false)
	}
	return load(path, true)
}

func load(path string, required bool) (*Config, error) {
	var cfg Config

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case required || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// normalize canonicalizes enum-like settings so validation and callers can
// compare them exactly.
func (c *Config) normalize() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.Interaction.ViewDedupBackend = strings.ToLower(strings.TrimSpace(c.Interaction.ViewDedupBackend))
	c.Metrics.Path = "/" + strings.TrimLeft(strings.TrimSpace(c.Metrics.Path), "/")
}
