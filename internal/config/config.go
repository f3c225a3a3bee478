// Package config loads and validates the questlog.yaml project file.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"questlog/internal/notation"
)

type ProjectConfig struct {
	Project  string         `yaml:"project"`
	Version  int            `yaml:"version"`
	Vault    VaultConfig    `yaml:"vault"`
	Notation NotationConfig `yaml:"notation"`
	Log      LogConfig      `yaml:"log"`
}

type VaultConfig struct {
	Root    string   `yaml:"root"`
	Exclude []string `yaml:"exclude"`
}

// NotationConfig carries the tunable progress thresholds. Zero values
// take the notation package defaults.
type NotationConfig struct {
	NearCompleteFraction float64 `yaml:"near_complete_fraction"`
	TimerUrgentMax       int     `yaml:"timer_urgent_max"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	applyDefaults(&cfg)
	if err := validateProjectConfig(&cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *ProjectConfig) {
	if cfg.Notation.NearCompleteFraction == 0 {
		cfg.Notation.NearCompleteFraction = notation.NearCompleteFraction
	}
	if cfg.Notation.TimerUrgentMax == 0 {
		cfg.Notation.TimerUrgentMax = notation.TimerUrgentMax
	}
}

func validateProjectConfig(cfg *ProjectConfig) error {
	if strings.TrimSpace(cfg.Project) == "" {
		return fmt.Errorf("project name is required")
	}
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}
	if strings.TrimSpace(cfg.Vault.Root) == "" {
		return fmt.Errorf("vault root is required")
	}
	if cfg.Notation.NearCompleteFraction <= 0 || cfg.Notation.NearCompleteFraction > 1 {
		return fmt.Errorf("near_complete_fraction must be in (0, 1]: %v", cfg.Notation.NearCompleteFraction)
	}
	if cfg.Notation.TimerUrgentMax < 0 {
		return fmt.Errorf("timer_urgent_max must not be negative: %d", cfg.Notation.TimerUrgentMax)
	}
	return nil
}
