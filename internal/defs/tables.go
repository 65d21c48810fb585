package defs

import (
	"errors"
	"fmt"
)

// ErrInvalidTables is wrapped by every validation failure.
var ErrInvalidTables = errors.New("invalid stat tables")

// Tables is the lookup library the simulation reads stats from.
type Tables struct {
	Towers         map[TowerType]TowerDefinition
	Enemies        map[EnemyType]EnemyDefinition
	Waves          []WaveDefinition // Waves[0] is wave 1
	SpecialAttacks []SpecialAttackDefinition
}

// Default returns the built-in tables.
func Default() *Tables {
	return newTables(defaultTowers, defaultEnemies, defaultWaves, defaultSpecialAttacks)
}

func newTables(towers []TowerDefinition, enemies []EnemyDefinition, waves []WaveDefinition, specials []SpecialAttackDefinition) *Tables {
	t := &Tables{
		Towers:         make(map[TowerType]TowerDefinition, len(towers)),
		Enemies:        make(map[EnemyType]EnemyDefinition, len(enemies)),
		Waves:          append([]WaveDefinition(nil), waves...),
		SpecialAttacks: append([]SpecialAttackDefinition(nil), specials...),
	}
	for _, def := range towers {
		t.Towers[def.Type] = def
	}
	for _, def := range enemies {
		t.Enemies[def.Type] = def
	}
	return t
}

// Tower returns the definition for a tower type.
func (t *Tables) Tower(tt TowerType) (TowerDefinition, bool) {
	def, ok := t.Towers[tt]
	return def, ok
}

// Enemy returns the definition for an enemy type.
func (t *Tables) Enemy(et EnemyType) (EnemyDefinition, bool) {
	def, ok := t.Enemies[et]
	return def, ok
}

// Wave returns the definition for a 1-indexed wave number.
func (t *Tables) Wave(number int) (WaveDefinition, bool) {
	if number < 1 || number > len(t.Waves) {
		return WaveDefinition{}, false
	}
	return t.Waves[number-1], true
}

// TotalWaves is the number of defined waves; passing it means victory.
func (t *Tables) TotalWaves() int {
	return len(t.Waves)
}

// SpecialAttack looks up a special attack by id.
func (t *Tables) SpecialAttack(id string) (SpecialAttackDefinition, bool) {
	for _, def := range t.SpecialAttacks {
		if def.ID == id {
			return def, true
		}
	}
	return SpecialAttackDefinition{}, false
}

// Validate checks that every reference resolves and every number is usable.
func (t *Tables) Validate() error {
	if len(t.Towers) == 0 {
		return fmt.Errorf("%w: at least one tower is required", ErrInvalidTables)
	}
	for tt, def := range t.Towers {
		if def.Cost < 0 || def.UpgradeCost < 0 {
			return fmt.Errorf("%w: tower %s: costs cannot be negative", ErrInvalidTables, tt)
		}
		if def.AttackSpeed <= 0 {
			return fmt.Errorf("%w: tower %s: attackSpeed must be positive", ErrInvalidTables, tt)
		}
		if def.Range <= 0 {
			return fmt.Errorf("%w: tower %s: range must be positive", ErrInvalidTables, tt)
		}
	}
	for et, def := range t.Enemies {
		if def.Health <= 0 {
			return fmt.Errorf("%w: enemy %s: health must be positive", ErrInvalidTables, et)
		}
		if def.Speed < 0 {
			return fmt.Errorf("%w: enemy %s: speed cannot be negative", ErrInvalidTables, et)
		}
		if def.Boss == nil {
			continue
		}
		for i, ab := range def.Boss.Abilities {
			if ab.CooldownMs <= 0 {
				return fmt.Errorf("%w: enemy %s ability %d: cooldown must be positive", ErrInvalidTables, et, i)
			}
			for _, m := range ab.Minions {
				if _, ok := t.Enemies[m.Type]; !ok {
					return fmt.Errorf("%w: enemy %s ability %d: unknown minion %q", ErrInvalidTables, et, i, m.Type)
				}
			}
		}
	}
	if len(t.Waves) == 0 {
		return fmt.Errorf("%w: at least one wave is required", ErrInvalidTables)
	}
	for i, w := range t.Waves {
		if w.TotalUnits() == 0 {
			return fmt.Errorf("%w: wave %d: at least one enemy is required", ErrInvalidTables, i+1)
		}
		for j, g := range w.Enemies {
			if _, ok := t.Enemies[g.Type]; !ok {
				return fmt.Errorf("%w: wave %d group %d: unknown enemy %q", ErrInvalidTables, i+1, j, g.Type)
			}
			if g.Count < 0 || g.DelayMs < 0 || g.StartDelayMs < 0 {
				return fmt.Errorf("%w: wave %d group %d: negative count or delay", ErrInvalidTables, i+1, j)
			}
		}
	}
	seen := make(map[string]bool)
	for _, sa := range t.SpecialAttacks {
		if sa.ID == "" || seen[sa.ID] {
			return fmt.Errorf("%w: special attack ids must be unique and non-empty (%q)", ErrInvalidTables, sa.ID)
		}
		seen[sa.ID] = true
		switch sa.Kind {
		case SpecialStun:
			if sa.Factor <= 0 {
				return fmt.Errorf("%w: special attack %s: stun factor must be positive", ErrInvalidTables, sa.ID)
			}
		case SpecialDamage:
		default:
			return fmt.Errorf("%w: special attack %s: unknown kind %q", ErrInvalidTables, sa.ID, sa.Kind)
		}
	}
	return nil
}
