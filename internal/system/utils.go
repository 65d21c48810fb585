// internal/system/utils.go
package system

import (
	"math"
	"time"

	"go-pub-defense/internal/component"
	"go-pub-defense/internal/entity"
	"go-pub-defense/internal/event"
	"go-pub-defense/internal/types"
)

// ApplyDamage наносит урон врагу и, если здоровье упало до нуля, проводит
// убийство: золото, одно очко, счетчик башни, удаление из коллекции.
// towerID == 0 — урон не от башни (особая атака). Щит делает врага неуязвимым.
// Возвращает true, если враг убит этим ударом.
func ApplyDamage(ecs *entity.ECS, dispatcher *event.Dispatcher, enemy *component.Enemy, damage float64, towerID types.EntityID) bool {
	if !enemy.Alive() || damage <= 0 {
		return false
	}
	if enemy.HasEffect(component.EffectShield) {
		return false
	}

	enemy.Health -= damage
	tower := ecs.Towers[towerID]
	if tower != nil {
		tower.TotalDamage += damage
	}
	if enemy.Health > 0 {
		return false
	}

	enemy.IsDead = true
	gs := ecs.GameState
	gs.Gold += enemy.Gold
	gs.Score++
	if tower != nil {
		tower.Kills++
	}
	ecs.RemoveEnemy(enemy.ID)

	if dispatcher != nil {
		dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyPayload{
			EnemyID: enemy.ID,
			Type:    enemy.Type,
			TowerID: towerID,
			Gold:    enemy.Gold,
		}})
	}
	return true
}

// toDuration переводит секунды кадра в игровое время.
func toDuration(seconds float64) time.Duration {
	return time.Duration(math.Round(seconds * float64(time.Second)))
}
