package defs

// SpecialAttackDefinition describes a cooldown-gated area attack.
// Stun uses Factor and DurationMs; damage uses Damage.
type SpecialAttackDefinition struct {
	ID         string      `yaml:"id"`
	Name       string      `yaml:"name"`
	Kind       SpecialKind `yaml:"kind"`
	CooldownMs int         `yaml:"cooldown"`
	Radius     float64     `yaml:"radius"`
	Damage     float64     `yaml:"damage,omitempty"`
	Factor     float64     `yaml:"factor,omitempty"`
	DurationMs int         `yaml:"duration,omitempty"`
}

var defaultSpecialAttacks = []SpecialAttackDefinition{
	{ID: "peanuts", Name: "Salted Peanuts", Kind: SpecialStun, CooldownMs: 20000, Radius: 80, Factor: 0.1, DurationMs: 3000},
	{ID: "last_orders", Name: "Last Orders", Kind: SpecialDamage, CooldownMs: 45000, Radius: 100, Damage: 120},
}
