package system

import (
	"log"

	"go-pub-defense/internal/component"
	"go-pub-defense/internal/defs"
	"go-pub-defense/internal/entity"
	"go-pub-defense/internal/event"
	"go-pub-defense/internal/interfaces"
	"go-pub-defense/internal/utils"
)

// AbilityHandler выполняет одну способность босса.
type AbilityHandler func(boss *component.Enemy, ability defs.AbilityDefinition)

// BossAbilitySystem отсчитывает перезарядку способностей боссов и запускает
// обработчик, зарегистрированный для вида способности.
type BossAbilitySystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	effects         *StatusEffectSystem
	spawner         interfaces.Spawner
	rng             *utils.PRNGService
	handlers        map[defs.AbilityKind]AbilityHandler
}

func NewBossAbilitySystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, effects *StatusEffectSystem, spawner interfaces.Spawner, rng *utils.PRNGService) *BossAbilitySystem {
	s := &BossAbilitySystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		effects:         effects,
		spawner:         spawner,
		rng:             rng,
		handlers:        make(map[defs.AbilityKind]AbilityHandler),
	}
	s.Register(defs.AbilityHeal, s.heal)
	s.Register(defs.AbilitySpawn, s.spawnMinions)
	s.Register(defs.AbilityShield, s.shield)
	return s
}

// Register задает (или заменяет) обработчик для вида способности.
func (s *BossAbilitySystem) Register(kind defs.AbilityKind, handler AbilityHandler) {
	s.handlers[kind] = handler
}

func (s *BossAbilitySystem) Update(deltaTime float64) {
	elapsed := toDuration(deltaTime)
	for _, enemy := range s.ecs.EnemyList() {
		if enemy.Boss == nil || !enemy.Alive() {
			continue
		}
		for i := range enemy.Boss.Abilities {
			ability := &enemy.Boss.Abilities[i]
			ability.Cooldown -= elapsed
			if ability.Cooldown > 0 {
				continue
			}
			ability.Cooldown = defs.Ms(ability.Def.CooldownMs)

			handler, ok := s.handlers[ability.Def.Kind]
			if !ok {
				log.Printf("BossAbilitySystem: no handler for ability %q", ability.Def.Kind)
				continue
			}
			handler(enemy, ability.Def)
			if s.eventDispatcher != nil {
				s.eventDispatcher.Dispatch(event.Event{Type: event.BossAbilityUsed, Data: event.AbilityPayload{
					BossID: enemy.ID,
					Boss:   enemy.Type,
					Kind:   ability.Def.Kind,
				}})
			}
		}
	}
}

func (s *BossAbilitySystem) heal(boss *component.Enemy, ability defs.AbilityDefinition) {
	boss.Health += ability.Amount
	if boss.Health > boss.MaxHealth {
		boss.Health = boss.MaxHealth
	}
}

// spawnMinions выпускает приспешников на позиции босса; они продолжают путь с его точки.
func (s *BossAbilitySystem) spawnMinions(boss *component.Enemy, ability defs.AbilityDefinition) {
	for i := 0; i < ability.Count; i++ {
		minion := s.rng.ChooseWeighted(ability.Minions)
		if minion == "" {
			return
		}
		s.spawner.SpawnAt(minion, boss.Position, boss.PathIndex)
	}
}

func (s *BossAbilitySystem) shield(boss *component.Enemy, ability defs.AbilityDefinition) {
	if boss.HasEffect(component.EffectShield) {
		return
	}
	s.effects.Apply(boss, component.EffectShield, 1, defs.Ms(ability.DurationMs))
}
