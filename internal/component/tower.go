// component/tower.go
package component

import (
	"time"

	"go-pub-defense/internal/defs"
	"go-pub-defense/internal/types"
)

// Tower — установленная игроком башня.
type Tower struct {
	ID          types.EntityID
	Type        defs.TowerType
	Position    Position
	Level       int
	Damage      float64
	Range       float64
	AttackSpeed float64 // атак в секунду
	Cost        int     // базовая стоимость постройки
	UpgradeCost int     // базовая стоимость улучшения, умножается на уровень
	LastAttack  time.Duration
	Kills       int
	TotalDamage float64
}

// AttackInterval — минимальное время между выстрелами.
func (t *Tower) AttackInterval() time.Duration {
	return time.Duration(float64(time.Second) / t.AttackSpeed)
}

// NextUpgradeCost — стоимость перехода на следующий уровень.
func (t *Tower) NextUpgradeCost() int {
	return t.UpgradeCost * t.Level
}

// Invested — сколько золота вложено в башню с учётом всех улучшений.
func (t *Tower) Invested() int {
	return t.Cost + t.UpgradeCost*(t.Level-1)*t.Level/2
}
