// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format           string `yaml:"format"`
		ConfidenceLevels string `yaml:"confidence_levels"`
		Entities         string `yaml:"entities"`
		Verbose          bool   `yaml:"verbose"`
		NoColor          bool   `yaml:"no_color"`
	} `yaml:"defaults"`

	// Recognizer configurations
	Recognizers RecognizersConfig `yaml:"recognizers"`
}

// RecognizersConfig holds per-recognizer settings
type RecognizersConfig struct {
	// Context word overrides keyed by entity type
	Context map[string][]string `yaml:"context"`

	// Language code shared by all recognizers
	Language string `yaml:"language"`

	Phone struct {
		Regions  []string `yaml:"regions"`
		Leniency *int     `yaml:"leniency"`
	} `yaml:"phone"`

	DriversLicense struct {
		ShortLengthMax         int     `yaml:"short_length_max"`
		MaxUniqueForRatioCheck int     `yaml:"max_unique_for_ratio_check"`
		DominantDigitRatio     float64 `yaml:"dominant_digit_ratio"`
	} `yaml:"drivers_license"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Defaults.Format = "text"
	cfg.Defaults.ConfidenceLevels = "all"
	cfg.Defaults.Entities = "all"
	cfg.Recognizers.Language = "en"
	return cfg
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// FindConfigFile searches standard locations for a config file and returns
// the first that exists, or an empty string.
func FindConfigFile() string {
	candidates := []string{".au-scan.yaml", ".au-scan.yml"}

	if cwd, err := os.Getwd(); err == nil {
		for _, name := range candidates {
			path := filepath.Join(cwd, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		for _, name := range candidates {
			path := filepath.Join(home, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	return ""
}
