// internal/defs/loader.go
package defs

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// tablesFile mirrors the on-disk YAML layout.
type tablesFile struct {
	Towers         []TowerDefinition         `yaml:"towers"`
	Enemies        []EnemyDefinition         `yaml:"enemies"`
	Waves          []WaveDefinition          `yaml:"waves"`
	SpecialAttacks []SpecialAttackDefinition `yaml:"specialAttacks"`
}

// LoadTables reads a YAML stat-table file. Sections left out fall back to the built-in tables.
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables file %s: %w", path, err)
	}
	t, err := ParseTables(data)
	if err != nil {
		return nil, fmt.Errorf("tables file %s: %w", path, err)
	}
	log.Printf("Loaded %d towers, %d enemies, %d waves from %s", len(t.Towers), len(t.Enemies), len(t.Waves), path)
	return t, nil
}

// ParseTables decodes and validates tables from YAML bytes.
func ParseTables(data []byte) (*Tables, error) {
	var f tablesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tables: %w", err)
	}
	if len(f.Towers) == 0 {
		f.Towers = defaultTowers
	}
	if len(f.Enemies) == 0 {
		f.Enemies = defaultEnemies
	}
	if len(f.Waves) == 0 {
		f.Waves = defaultWaves
	}
	if len(f.SpecialAttacks) == 0 {
		f.SpecialAttacks = defaultSpecialAttacks
	}
	t := newTables(f.Towers, f.Enemies, f.Waves, f.SpecialAttacks)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
