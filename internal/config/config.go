package config

import (
	"fmt"
	"os"

	"github.com/Rhymond/go-money"
	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the project directory.
const FileName = "aifina.yaml"

// Config represents the top-level aifina.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Ledger   LedgerConfig   `yaml:"ledger"`
	Display  DisplayConfig  `yaml:"display"`
	Filter   FilterConfig   `yaml:"filter"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"` // ISO 4217, e.g. "USD"
}

// LedgerConfig locates the journal CSV files.
type LedgerConfig struct {
	Path string `yaml:"path"` // file or directory, relative to the config file
}

// DisplayConfig controls how amounts and rankings are rendered.
type DisplayConfig struct {
	Scale      int `yaml:"scale"` // 1 or 1000
	TopClients int `yaml:"top_clients"`
}

// FilterConfig is the default period selection. Zero values select all.
type FilterConfig struct {
	Year  int  `yaml:"year"`
	Month int  `yaml:"month"`
	LTM   bool `yaml:"ltm"`
}

// Load reads an aifina.yaml file from disk. Unset fields fall back to
// Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks the currency, display and filter settings.
func (c *Config) Validate() error {
	if money.GetCurrency(c.Business.Currency) == nil {
		return fmt.Errorf("business.currency %q is not an ISO 4217 code", c.Business.Currency)
	}
	if c.Display.Scale != 1 && c.Display.Scale != 1000 {
		return fmt.Errorf("display.scale must be 1 or 1000, got %d", c.Display.Scale)
	}
	if c.Filter.Month < 0 || c.Filter.Month > 12 {
		return fmt.Errorf("filter.month must be between 0 and 12, got %d", c.Filter.Month)
	}
	if c.Filter.Year < 0 {
		return fmt.Errorf("filter.year must not be negative, got %d", c.Filter.Year)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:     businessName,
			Currency: "USD",
		},
		Ledger: LedgerConfig{
			Path: "data",
		},
		Display: DisplayConfig{
			Scale:      1000,
			TopClients: 5,
		},
	}
}
