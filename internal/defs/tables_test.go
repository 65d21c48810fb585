package defs

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultTablesAreValid(t *testing.T) {
	tables := Default()
	if err := tables.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	if tables.TotalWaves() != len(defaultWaves) {
		t.Errorf("TotalWaves() = %d, want %d", tables.TotalWaves(), len(defaultWaves))
	}
	if _, ok := tables.SpecialAttack("peanuts"); !ok {
		t.Error("stun special attack missing")
	}
}

func TestWaveLookupIsOneIndexed(t *testing.T) {
	tables := Default()
	tests := []struct {
		number int
		ok     bool
	}{
		{0, false},
		{1, true},
		{tables.TotalWaves(), true},
		{tables.TotalWaves() + 1, false},
	}
	for _, tt := range tests {
		if _, ok := tables.Wave(tt.number); ok != tt.ok {
			t.Errorf("Wave(%d) ok = %v, want %v", tt.number, ok, tt.ok)
		}
	}
	w, _ := tables.Wave(1)
	if w.TotalUnits() != 8 {
		t.Errorf("wave 1 units = %d, want 8", w.TotalUnits())
	}
}

func TestSpawnOffset(t *testing.T) {
	g := EnemyGroup{Count: 5, DelayMs: 600, StartDelayMs: 4000}
	if got := g.SpawnOffset(0); got != 4*time.Second {
		t.Errorf("SpawnOffset(0) = %v", got)
	}
	if got := g.SpawnOffset(3); got != 5800*time.Millisecond {
		t.Errorf("SpawnOffset(3) = %v", got)
	}
}

func TestLoadTables(t *testing.T) {
	tables, err := LoadTables("testdata/tables.yaml")
	if err != nil {
		t.Fatalf("LoadTables() error = %v", err)
	}
	darts, ok := tables.Tower(TowerDarts)
	if !ok || darts.Cost != 40 || darts.Damage != 12 {
		t.Errorf("darts = %+v", darts)
	}
	if _, ok := tables.Tower(TowerKeg); ok {
		t.Error("towers section given, built-in towers must not leak in")
	}
	if tables.TotalWaves() != 2 {
		t.Errorf("TotalWaves() = %d, want 2", tables.TotalWaves())
	}
	king, _ := tables.Enemy(EnemyGoblinKing)
	if king.Boss == nil || len(king.Boss.Abilities) != 1 || king.Boss.Abilities[0].Kind != AbilitySpawn {
		t.Errorf("boss = %+v", king.Boss)
	}
	w2, _ := tables.Wave(2)
	if w2.Enemies[1].StartDelayMs != 2000 {
		t.Errorf("startDelay = %d", w2.Enemies[1].StartDelayMs)
	}
	// секция не задана — берутся встроенные особые атаки
	if len(tables.SpecialAttacks) != len(defaultSpecialAttacks) {
		t.Errorf("special attacks = %d", len(tables.SpecialAttacks))
	}
}

func TestLoadTablesMissingFile(t *testing.T) {
	if _, err := LoadTables("testdata/nope.yaml"); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestParseTablesRejectsBrokenData(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown enemy in wave", "waves:\n  - reward: 1\n    enemies:\n      - type: dragon\n        count: 1\n"},
		{"empty wave", "waves:\n  - reward: 1\n"},
		{"zero attack speed", "towers:\n  - type: darts\n    range: 100\n    attackSpeed: 0\n"},
		{"non-positive health", "enemies:\n  - type: goblin\n    health: 0\n"},
		{"duplicate special", "specialAttacks:\n  - id: a\n    kind: damage\n  - id: a\n    kind: damage\n"},
		{"unknown special kind", "specialAttacks:\n  - id: a\n    kind: fireball\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTables([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalidTables) {
				t.Errorf("ParseTables() error = %v, want ErrInvalidTables", err)
			}
		})
	}
}

func TestParseTablesBadYAML(t *testing.T) {
	_, err := ParseTables([]byte("towers: [oops"))
	if err == nil || errors.Is(err, ErrInvalidTables) {
		t.Errorf("ParseTables() error = %v, want a decode error", err)
	}
}
