package system

import (
	"go-pub-defense/internal/component"
	"go-pub-defense/internal/config"
	"go-pub-defense/internal/entity"
)

// CombatSystem управляет атакой башен: каденция, выбор цели, выстрел.
type CombatSystem struct {
	ecs *entity.ECS
}

func NewCombatSystem(ecs *entity.ECS) *CombatSystem {
	return &CombatSystem{ecs: ecs}
}

func (s *CombatSystem) Update(deltaTime float64) {
	now := s.ecs.GameTime
	enemies := s.ecs.EnemyList()
	for _, tower := range s.ecs.TowerList() {
		if now-tower.LastAttack < tower.AttackInterval() {
			continue
		}
		target := FindFrontrunner(tower, enemies)
		if target == nil {
			continue
		}
		s.createProjectile(tower, target)
		tower.LastAttack = now
	}
}

// FindFrontrunner выбирает живого врага в радиусе башни с наибольшим PathIndex.
// При равенстве побеждает появившийся раньше (enemies идут в порядке появления).
func FindFrontrunner(tower *component.Tower, enemies []*component.Enemy) *component.Enemy {
	var best *component.Enemy
	for _, enemy := range enemies {
		if !enemy.Alive() {
			continue
		}
		if tower.Position.Distance(enemy.Position) > tower.Range {
			continue
		}
		if best == nil || enemy.PathIndex > best.PathIndex {
			best = enemy
		}
	}
	return best
}

func (s *CombatSystem) createProjectile(tower *component.Tower, target *component.Enemy) {
	s.ecs.AddProjectile(&component.Projectile{
		Position: tower.Position,
		TargetID: target.ID,
		Damage:   tower.Damage,
		Speed:    config.ProjectileSpeed,
		TowerID:  tower.ID,
	})
}
