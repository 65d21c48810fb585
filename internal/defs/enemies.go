// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	Type   EnemyType       `yaml:"type"`
	Name   string          `yaml:"name"`
	Health float64         `yaml:"health"`
	Speed  float64         `yaml:"speed"` // pixels per 60fps frame
	Gold   int             `yaml:"gold"`
	Boss   *BossDefinition `yaml:"boss,omitempty"`
}

// BossDefinition is present only on boss variants.
type BossDefinition struct {
	SizeMultiplier float64             `yaml:"sizeMultiplier"`
	Abilities      []AbilityDefinition `yaml:"abilities"`
}

// AbilityDefinition describes one boss ability. Which fields matter depends on Kind:
// heal uses Amount, spawn uses Count and Minions, shield uses DurationMs.
type AbilityDefinition struct {
	Kind       AbilityKind   `yaml:"kind"`
	CooldownMs int           `yaml:"cooldown"`
	Amount     float64       `yaml:"amount,omitempty"`
	Count      int           `yaml:"count,omitempty"`
	DurationMs int           `yaml:"duration,omitempty"`
	Minions    []MinionEntry `yaml:"minions,omitempty"`
}

var defaultEnemies = []EnemyDefinition{
	{Type: EnemyGoblin, Name: "Goblin", Health: 80, Speed: 1.0, Gold: 10},
	{Type: EnemyWolf, Name: "Wolf", Health: 50, Speed: 1.8, Gold: 8},
	{Type: EnemyOrc, Name: "Orc", Health: 180, Speed: 0.8, Gold: 20},
	{Type: EnemyTroll, Name: "Troll", Health: 450, Speed: 0.5, Gold: 45},
	{
		Type: EnemyGoblinKing, Name: "Goblin King", Health: 1500, Speed: 0.45, Gold: 200,
		Boss: &BossDefinition{
			SizeMultiplier: 2,
			Abilities: []AbilityDefinition{
				{Kind: AbilityHeal, CooldownMs: 6000, Amount: 150},
				{Kind: AbilitySpawn, CooldownMs: 8000, Count: 3, Minions: []MinionEntry{
					{Type: EnemyGoblin, Weight: 3},
					{Type: EnemyWolf, Weight: 1},
				}},
			},
		},
	},
	{
		Type: EnemyOgreChief, Name: "Ogre Chief", Health: 3200, Speed: 0.35, Gold: 400,
		Boss: &BossDefinition{
			SizeMultiplier: 2.5,
			Abilities: []AbilityDefinition{
				{Kind: AbilityShield, CooldownMs: 10000, DurationMs: 2500},
				{Kind: AbilitySpawn, CooldownMs: 9000, Count: 2, Minions: []MinionEntry{
					{Type: EnemyOrc, Weight: 2},
					{Type: EnemyTroll, Weight: 1},
				}},
			},
		},
	},
}
