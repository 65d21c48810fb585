// internal/defs/minions.go
package defs

// MinionEntry — одна запись в таблице призыва босса.
// Weight — относительный шанс появления этого типа врага.
type MinionEntry struct {
	Type   EnemyType `yaml:"type"`
	Weight int       `yaml:"weight"`
}
