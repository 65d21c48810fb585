// internal/defs/types.go
package defs

import "time"

// TowerType identifies a kind of defender.
type TowerType string

const (
	TowerDarts   TowerType = "darts"
	TowerBouncer TowerType = "bouncer"
	TowerKeg     TowerType = "keg"
	TowerBard    TowerType = "bard"
)

// EnemyType identifies a kind of enemy, regular or boss.
type EnemyType string

const (
	EnemyGoblin     EnemyType = "goblin"
	EnemyWolf       EnemyType = "wolf"
	EnemyOrc        EnemyType = "orc"
	EnemyTroll      EnemyType = "troll"
	EnemyGoblinKing EnemyType = "goblin_king"
	EnemyOgreChief  EnemyType = "ogre_chief"
)

// SpecialKind is the effect a special attack applies.
type SpecialKind string

const (
	SpecialStun   SpecialKind = "stun"
	SpecialDamage SpecialKind = "damage"
)

// AbilityKind is a boss ability.
type AbilityKind string

const (
	AbilityHeal   AbilityKind = "heal"
	AbilitySpawn  AbilityKind = "spawn"
	AbilityShield AbilityKind = "shield"
)

// Ms converts a millisecond count from the tables into a duration.
func Ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
