// Package config loads server settings from defaults, an optional YAML file
// and the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "PORTFOLIO_"

// Config holds the runtime settings of the portfolio server.
type Config struct {
	Port        int    `koanf:"port" yaml:"port" validate:"min=1,max=65535"`
	Mode        string `koanf:"mode" yaml:"mode" validate:"oneof=debug release test"`
	LogLevel    string `koanf:"log_level" yaml:"log_level" validate:"oneof=trace debug info warn error"`
	LogHuman    bool   `koanf:"log_human" yaml:"log_human"`
	ContentPath string `koanf:"content_path" yaml:"content_path"`
}

// Default returns the settings used when nothing overrides them.
func Default() *Config {
	return &Config{
		Port:     8080,
		Mode:     "release",
		LogLevel: "info",
		LogHuman: true,
	}
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load layers, lowest first: defaults, the YAML file at path (skipped when
// empty), a bare PORT variable, then PORTFOLIO_* variables
// (PORTFOLIO_LOG_LEVEL -> log_level).
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("PORT", ".", func(s string) string {
		if s == "PORT" {
			return "port"
		}
		return ""
	}), nil); err != nil {
		return nil, fmt.Errorf("loading PORT: %w", err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
