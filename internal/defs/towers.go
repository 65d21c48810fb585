// internal/defs/towers.go
package defs

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	Type        TowerType `yaml:"type"`
	Name        string    `yaml:"name"`
	Damage      float64   `yaml:"damage"`
	Range       float64   `yaml:"range"`
	AttackSpeed float64   `yaml:"attackSpeed"` // attacks per second
	Cost        int       `yaml:"cost"`
	UpgradeCost int       `yaml:"upgradeCost"` // base cost, multiplied by the current level
}

var defaultTowers = []TowerDefinition{
	{Type: TowerDarts, Name: "Darts Player", Damage: 10, Range: 120, AttackSpeed: 2, Cost: 50, UpgradeCost: 40},
	{Type: TowerBouncer, Name: "Bouncer", Damage: 25, Range: 80, AttackSpeed: 1, Cost: 75, UpgradeCost: 60},
	{Type: TowerKeg, Name: "Keg Thrower", Damage: 60, Range: 150, AttackSpeed: 0.5, Cost: 120, UpgradeCost: 90},
	{Type: TowerBard, Name: "Bard", Damage: 6, Range: 100, AttackSpeed: 4, Cost: 90, UpgradeCost: 70},
}
