// internal/system/movement.go
package system

import (
	"go-pub-defense/internal/component"
	"go-pub-defense/internal/config"
	"go-pub-defense/internal/entity"
	"go-pub-defense/internal/event"
	"go-pub-defense/internal/utils"
	"go-pub-defense/pkg/worldmap"
)

// MovementSystem ведет врагов по точкам пути.
type MovementSystem struct {
	ecs             *entity.ECS
	path            worldmap.Path
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, path worldmap.Path, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, path: path, eventDispatcher: eventDispatcher}
}

// Update двигает каждого живого врага к точке PathIndex+1. Скорость задана в
// пикселях за кадр при 60 FPS, поэтому шаг = speed * dt * 60.
func (s *MovementSystem) Update(deltaTime float64) {
	for _, enemy := range s.ecs.EnemyList() {
		if enemy.IsDead {
			continue
		}
		s.advance(enemy, deltaTime)
	}
}

func (s *MovementSystem) advance(enemy *component.Enemy, deltaTime float64) {
	last := len(s.path) - 1
	if enemy.PathIndex >= last {
		s.leak(enemy)
		return
	}

	target := s.path[enemy.PathIndex+1]
	step := enemy.Speed * deltaTime * config.FrameRateNormalization
	if enemy.Position.Distance(target) < config.SnapThreshold {
		step = enemy.Position.Distance(target)
	}

	pos, arrived := utils.StepTowards(enemy.Position, target, step)
	enemy.Position = pos
	if !arrived {
		return
	}
	enemy.PathIndex++
	if enemy.PathIndex == last {
		s.leak(enemy)
	}
}

// leak — враг дошел до конца пути: минус жизнь, без золота и очков.
// Из коллекции его уберет RemoveDeadEnemies.
func (s *MovementSystem) leak(enemy *component.Enemy) {
	enemy.IsDead = true
	s.ecs.GameState.Lives--
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyLeaked, Data: event.EnemyPayload{
			EnemyID: enemy.ID,
			Type:    enemy.Type,
		}})
	}
}
