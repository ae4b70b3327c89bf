// Package config loads chainrun settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ib-77/ropchain/pkg/contact"
	"gopkg.in/yaml.v3"
)

const (
	EnvWorkers  = "CHAINRUN_WORKERS"
	EnvLogLevel = "CHAINRUN_LOG_LEVEL"
)

var validate = validator.New()

type Config struct {
	Workers  int            `yaml:"workers" validate:"min=1,max=256"`
	LogLevel string         `yaml:"log_level" validate:"oneof=debug info warn error"`
	Links    []contact.Spec `yaml:"links" validate:"required,min=1,dive"`
}

func DefaultConfig() *Config {
	return &Config{
		Workers:  4,
		LogLevel: "info",
		Links: []contact.Spec{
			{Kind: contact.KindHead},
			{Kind: contact.KindName, Rule: contact.DefaultRules.Name},
			{Kind: contact.KindPhone, Rule: contact.DefaultRules.Phone},
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults; an
// empty path skips the file. Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvWorkers); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Workers = n
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// LoadContacts reads a YAML list of contacts.
func LoadContacts(path string) ([]contact.Contact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read contacts: %w", err)
	}

	var contacts []contact.Contact
	if err := yaml.Unmarshal(data, &contacts); err != nil {
		return nil, fmt.Errorf("failed to parse contacts: %w", err)
	}
	return contacts, nil
}
