// Package config provides configuration loading and validation for the
// srp6a demo tooling: which RFC 5054 group to run against, the salt width
// to use when provisioning a new verifier, and how to log.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fzdarsky/srp6a/pkg/srp6a"
)

// Config is the top-level shape of a group configuration file.
type Config struct {
	Group   GroupSettings   `yaml:"group"`
	Logging LoggingSettings `yaml:"logging"`
}

// GroupSettings selects the RFC 5054 group a Client/Server pair runs
// against and the salt width used when provisioning new verifiers.
type GroupSettings struct {
	Bits         int    `yaml:"bits"`
	SaltBytes    int    `yaml:"salt_bytes"`
	HashOverride string `yaml:"hash_override,omitempty"`
}

// LoggingSettings contains logging configuration.
type LoggingSettings struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads and parses the configuration file at path, then validates it.
//
//nolint:gosec // G304: Config path is from command-line argument
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when a file omits a field, or when
// a caller has no file at all: the 2048-bit group, a 16-byte salt, and
// info-level JSON logging.
func Default() *Config {
	return &Config{
		Group: GroupSettings{
			Bits:      2048,
			SaltBytes: 16,
		},
		Logging: LoggingSettings{
			Level:  "info",
			Format: "json",
		},
	}
}

func defaultConfig() *Config {
	return Default()
}

// Params resolves this configuration's group settings into SRP parameters,
// applying HashOverride if set.
func (c *Config) Params() (*srp6a.SRPParams, error) {
	params, err := srp6a.Params(c.Group.Bits)
	if err != nil {
		return nil, err
	}
	if c.Group.HashOverride != "" {
		newHash, err := hashByName(c.Group.HashOverride)
		if err != nil {
			return nil, err
		}
		params.NewHash = newHash
	}
	return params, nil
}
