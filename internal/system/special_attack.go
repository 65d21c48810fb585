// internal/system/special_attack.go
package system

import (
	"go-pub-defense/internal/component"
	"go-pub-defense/internal/defs"
	"go-pub-defense/internal/entity"
	"go-pub-defense/internal/event"
	"go-pub-defense/internal/utils"
)

// SpecialAttackSystem применяет особые атаки игрока по области и
// отсчитывает их перезарядку.
type SpecialAttackSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	effects         *StatusEffectSystem
}

func NewSpecialAttackSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, effects *StatusEffectSystem) *SpecialAttackSystem {
	return &SpecialAttackSystem{ecs: ecs, eventDispatcher: eventDispatcher, effects: effects}
}

// Use срабатывает в точке center и ставит атаку на полную перезарядку.
// Проверку готовности делает вызывающий. Возвращает число задетых врагов.
func (s *SpecialAttackSystem) Use(attack *component.SpecialAttack, center component.Position) int {
	def := attack.Def
	attack.CurrentCooldown = defs.Ms(def.CooldownMs)

	affected := 0
	for _, enemy := range s.ecs.EnemyList() {
		if !enemy.Alive() || !utils.WithinRadius(enemy.Position, center, def.Radius) {
			continue
		}
		affected++
		switch def.Kind {
		case defs.SpecialStun:
			s.effects.Apply(enemy, component.EffectStun, def.Factor, defs.Ms(def.DurationMs))
		case defs.SpecialDamage:
			ApplyDamage(s.ecs, s.eventDispatcher, enemy, def.Damage, 0)
		}
	}

	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: event.SpecialAttackUsed, Data: def.ID})
	}
	return affected
}

// Update уменьшает перезарядку: max(0, cooldown - dt).
func (s *SpecialAttackSystem) Update(deltaTime float64) {
	elapsed := toDuration(deltaTime)
	for _, attack := range s.ecs.SpecialAttacks {
		attack.CurrentCooldown -= elapsed
		if attack.CurrentCooldown < 0 {
			attack.CurrentCooldown = 0
		}
	}
}
