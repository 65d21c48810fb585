// component/enemy.go
package component

import (
	"time"

	"go-pub-defense/internal/defs"
	"go-pub-defense/internal/types"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID        types.EntityID
	Type      defs.EnemyType
	Position  Position
	Health    float64
	MaxHealth float64
	BaseSpeed float64 // скорость из таблицы, без эффектов
	Speed     float64 // текущая скорость = BaseSpeed * множители эффектов
	PathIndex int     // индекс последней достигнутой точки пути
	Gold      int
	IsDead    bool
	Boss      *BossData
	Effects   []StatusEffect
}

// Alive — враг ещё участвует в бою.
func (e *Enemy) Alive() bool {
	return !e.IsDead && e.Health > 0
}

// BossData — дополнительные данные босса.
type BossData struct {
	SizeMultiplier float64
	Abilities      []BossAbility
}

// BossAbility — способность босса с собственной перезарядкой.
type BossAbility struct {
	Def      defs.AbilityDefinition
	Cooldown time.Duration // оставшееся время до следующего срабатывания
}
