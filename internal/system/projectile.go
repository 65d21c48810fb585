// internal/system/projectile.go
package system

import (
	"go-pub-defense/internal/component"
	"go-pub-defense/internal/config"
	"go-pub-defense/internal/entity"
	"go-pub-defense/internal/event"
	"go-pub-defense/internal/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update ведет снаряды к текущей позиции цели. Снаряд одноразовый: после
// попадания он исчезает, даже если враг выжил.
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, proj := range s.ecs.ProjectileList() {
		target, ok := s.ecs.Enemies[proj.TargetID]
		if !ok || !target.Alive() {
			// Цель пропала: промах, без эффекта
			s.ecs.RemoveProjectile(proj.ID)
			continue
		}

		if proj.Position.Distance(target.Position) < config.HitThreshold {
			s.hitTarget(proj, target)
			continue
		}
		proj.Position, _ = utils.StepTowards(proj.Position, target.Position, proj.Speed*deltaTime)
	}
}

func (s *ProjectileSystem) hitTarget(proj *component.Projectile, target *component.Enemy) {
	s.ecs.RemoveProjectile(proj.ID)
	ApplyDamage(s.ecs, s.eventDispatcher, target, proj.Damage, proj.TowerID)
}
