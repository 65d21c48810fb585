package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings is returned when a settings file fails validation.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings holds the per-run options a host can override from a YAML file.
type Settings struct {
	StartingGold  int     `yaml:"startingGold"`
	StartingLives int     `yaml:"startingLives"`
	World         string  `yaml:"world"`         // built-in world id, e.g. "tavern"
	MapPath       string  `yaml:"mapPath"`       // optional TMX file; overrides World
	TablesPath    string  `yaml:"tablesPath"`    // optional YAML stat tables
	Seed          int64   `yaml:"seed"`          // 0 = seed from the clock
	PathClearance float64 `yaml:"pathClearance"` // negative disables the check
	TowerSpacing  float64 `yaml:"towerSpacing"`  // negative disables the check
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() *Settings {
	s := &Settings{}
	applyDefaults(s)
	return s
}

// LoadSettings reads a YAML settings file and fills in missing fields.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	return ParseSettings(data)
}

// ParseSettings decodes settings from YAML bytes.
func ParseSettings(data []byte) (*Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}
	applyDefaults(&s)
	if err := validateSettings(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func applyDefaults(s *Settings) {
	if s.StartingGold == 0 {
		s.StartingGold = StartingGold
	}
	if s.StartingLives == 0 {
		s.StartingLives = StartingLives
	}
	if s.World == "" && s.MapPath == "" {
		s.World = "tavern"
	}
	if s.PathClearance == 0 {
		s.PathClearance = DefaultPathClearance
	}
	if s.TowerSpacing == 0 {
		s.TowerSpacing = DefaultTowerSpacing
	}
}

func validateSettings(s *Settings) error {
	if s.StartingGold < 0 {
		return fmt.Errorf("%w: startingGold cannot be negative", ErrInvalidSettings)
	}
	if s.StartingLives < 0 {
		return fmt.Errorf("%w: startingLives cannot be negative", ErrInvalidSettings)
	}
	return nil
}
