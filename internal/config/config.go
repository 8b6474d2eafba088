package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level consign.yaml configuration.
type Config struct {
	Gallery    GalleryConfig    `yaml:"gallery"`
	Commission CommissionConfig `yaml:"commission"`
	Export     ExportConfig     `yaml:"export"`
}

// GalleryConfig identifies the gallery.
type GalleryConfig struct {
	Name string `yaml:"name"`
}

// CommissionConfig controls the commission split applied to categories that
// carry no explicit rate.
type CommissionConfig struct {
	DefaultRatePercent int `yaml:"default_rate_percent"`
}

// ExportConfig controls the archive written by the process command.
type ExportConfig struct {
	ArchiveName string `yaml:"archive_name"`
	Format      string `yaml:"format"` // parser format, e.g. "square"
}

// DefaultRate returns the default commission rate as a fraction, 30 -> 0.30.
func (c *Config) DefaultRate() decimal.Decimal {
	return decimal.NewFromInt(int64(c.Commission.DefaultRatePercent)).Div(decimal.NewFromInt(100))
}

// Load reads a consign.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
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

// Default returns a Config with sensible defaults for a new gallery.
func Default(galleryName string) *Config {
	return &Config{
		Gallery: GalleryConfig{
			Name: galleryName,
		},
		Commission: CommissionConfig{
			DefaultRatePercent: 30,
		},
		Export: ExportConfig{
			ArchiveName: "commission_reports.zip",
			Format:      "square",
		},
	}
}
