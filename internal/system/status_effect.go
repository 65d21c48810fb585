// internal/system/status_effect.go
package system

import (
	"time"

	"go-pub-defense/internal/component"
	"go-pub-defense/internal/entity"
	"go-pub-defense/internal/interfaces"
	"go-pub-defense/internal/types"
)

// StatusEffectSystem управляет жизненным циклом эффектов (оглушение, щит).
// Снятие эффекта — отложенная задача на игровом времени, поэтому на паузе
// эффекты не истекают, а на ускорении истекают быстрее вместе со всем остальным.
type StatusEffectSystem struct {
	ecs       *entity.ECS
	scheduler interfaces.Scheduler
}

func NewStatusEffectSystem(ecs *entity.ECS, scheduler interfaces.Scheduler) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs, scheduler: scheduler}
}

// Apply вешает эффект на врага и планирует его снятие через duration.
func (s *StatusEffectSystem) Apply(enemy *component.Enemy, kind component.EffectKind, factor float64, duration time.Duration) types.EntityID {
	effectID := s.ecs.NewEntity()
	enemy.Effects = append(enemy.Effects, component.StatusEffect{
		ID:        effectID,
		Kind:      kind,
		Factor:    factor,
		ExpiresAt: s.scheduler.Now() + duration,
	})
	enemy.RecalculateSpeed()

	// Враг ищется заново по id: к моменту снятия он может быть убит,
	// а хранилище — восстановлено после отброшенного кадра.
	enemyID := enemy.ID
	s.scheduler.After(duration, "expire:"+string(kind), func() {
		s.Remove(enemyID, effectID)
	})
	return effectID
}

// Remove снимает эффект и пересчитывает скорость от базовой. Когда эффектов
// не осталось, Speed в точности равна BaseSpeed.
func (s *StatusEffectSystem) Remove(enemyID, effectID types.EntityID) bool {
	enemy, ok := s.ecs.Enemies[enemyID]
	if !ok {
		return false
	}
	for i, eff := range enemy.Effects {
		if eff.ID == effectID {
			enemy.Effects = append(enemy.Effects[:i], enemy.Effects[i+1:]...)
			enemy.RecalculateSpeed()
			return true
		}
	}
	return false
}
