// internal/app/tower_management.go
package app

import (
	"fmt"
	"math"

	"go-pub-defense/internal/component"
	"go-pub-defense/internal/config"
	"go-pub-defense/internal/defs"
	"go-pub-defense/internal/event"
	"go-pub-defense/internal/types"
)

// PlaceTower attempts to place a tower at the given position.
func (g *Game) PlaceTower(pos component.Position, towerType defs.TowerType) bool {
	_, err := g.TryPlaceTower(pos, towerType)
	return err == nil
}

// TryPlaceTower ставит башню первого уровня и списывает ее стоимость.
// При отказе состояние не меняется.
func (g *Game) TryPlaceTower(pos component.Position, towerType defs.TowerType) (types.EntityID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	def, ok := g.Tables.Tower(towerType)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTowerType, towerType)
	}
	gs := g.ECS.GameState
	if gs.Gold < def.Cost {
		return 0, fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientFunds, towerType, def.Cost, gs.Gold)
	}
	if err := g.canPlaceTower(pos); err != nil {
		return 0, err
	}

	id := g.createTowerEntity(pos, def)
	gs.Gold -= def.Cost
	gs.PlacingTowerType = ""

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerPayload{
		TowerID: id, Type: towerType, Level: 1, Gold: def.Cost,
	}})
	return id, nil
}

// canPlaceTower: не ближе PathClearance к пути и не ближе TowerSpacing к
// другой башне. Отрицательное значение отключает проверку.
func (g *Game) canPlaceTower(pos component.Position) error {
	if clearance := g.Settings.PathClearance; clearance > 0 {
		if d := g.Path.DistanceTo(pos); d < clearance {
			return fmt.Errorf("%w: %.1f px from the path", ErrInvalidPlacement, d)
		}
	}
	if spacing := g.Settings.TowerSpacing; spacing > 0 {
		for _, t := range g.ECS.Towers {
			if d := t.Position.Distance(pos); d < spacing {
				return fmt.Errorf("%w: %.1f px from tower %d", ErrInvalidPlacement, d, t.ID)
			}
		}
	}
	return nil
}

func (g *Game) createTowerEntity(pos component.Position, def defs.TowerDefinition) types.EntityID {
	tower := &component.Tower{
		Type:        def.Type,
		Position:    pos,
		Level:       1,
		Damage:      def.Damage,
		Range:       def.Range,
		AttackSpeed: def.AttackSpeed,
		Cost:        def.Cost,
		UpgradeCost: def.UpgradeCost,
	}
	// готова стрелять сразу
	tower.LastAttack = g.ECS.GameTime - tower.AttackInterval()
	return g.ECS.AddTower(tower)
}

// UpgradeTower — см. TryUpgradeTower.
func (g *Game) UpgradeTower(id types.EntityID) {
	_ = g.TryUpgradeTower(id)
}

// TryUpgradeTower поднимает уровень за UpgradeCost*Level: урон x1.5 и
// дальность x1.1 с округлением вниз, скорость атаки x1.2.
func (g *Game) TryUpgradeTower(id types.EntityID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	tower, ok := g.ECS.Towers[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrTowerNotFound, id)
	}
	cost := tower.NextUpgradeCost()
	gs := g.ECS.GameState
	if gs.Gold < cost {
		return fmt.Errorf("%w: upgrade costs %d, have %d", ErrInsufficientFunds, cost, gs.Gold)
	}

	gs.Gold -= cost
	tower.Level++
	tower.Damage = math.Floor(tower.Damage * config.UpgradeDamageMultiplier)
	tower.Range = math.Floor(tower.Range * config.UpgradeRangeMultiplier)
	tower.AttackSpeed *= config.UpgradeAttackSpeedMultiplier

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: event.TowerPayload{
		TowerID: id, Type: tower.Type, Level: tower.Level, Gold: cost,
	}})
	return nil
}

// SellTower — см. TrySellTower.
func (g *Game) SellTower(id types.EntityID) {
	_ = g.TrySellTower(id)
}

// TrySellTower убирает башню и возвращает 75% всех вложений в нее.
func (g *Game) TrySellTower(id types.EntityID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	tower, ok := g.ECS.Towers[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrTowerNotFound, id)
	}
	refund := sellValue(tower)
	g.ECS.RemoveTower(id)

	gs := g.ECS.GameState
	gs.Gold += refund
	if gs.SelectedTower == id {
		gs.SelectedTower = 0
	}

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerSold, Data: event.TowerPayload{
		TowerID: id, Type: tower.Type, Level: tower.Level, Gold: refund,
	}})
	return nil
}

// UpgradeCost — цена следующего улучшения.
func (g *Game) UpgradeCost(id types.EntityID) (int, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return 0, false
	}
	return tower.NextUpgradeCost(), true
}

// SellValue — сколько золота вернет продажа.
func (g *Game) SellValue(id types.EntityID) (int, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return 0, false
	}
	return sellValue(tower), true
}

func sellValue(tower *component.Tower) int {
	return int(math.Floor(config.SellRefundRatio * float64(tower.Invested())))
}
