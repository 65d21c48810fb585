// internal/entity/ecs.go
package entity

import (
	"time"

	"go-pub-defense/internal/component"
	"go-pub-defense/internal/types"
)

// ECS owns every live entity plus the economy. Lookups go through the id maps;
// the order slices keep iteration deterministic (insertion order).
type ECS struct {
	GameTime time.Duration
	NextID   types.EntityID

	Towers      map[types.EntityID]*component.Tower
	Enemies     map[types.EntityID]*component.Enemy
	Projectiles map[types.EntityID]*component.Projectile

	towerOrder      []types.EntityID
	enemyOrder      []types.EntityID
	projectileOrder []types.EntityID

	SpecialAttacks []*component.SpecialAttack
	Wave           *component.Wave
	GameState      *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Towers:      make(map[types.EntityID]*component.Tower),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Wave:        &component.Wave{},
		GameState:   &component.GameState{Wave: 1, GameSpeed: 1},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddTower stores a tower, assigning an id if it has none.
func (ecs *ECS) AddTower(t *component.Tower) types.EntityID {
	if t.ID == 0 {
		t.ID = ecs.NewEntity()
	}
	ecs.Towers[t.ID] = t
	ecs.towerOrder = append(ecs.towerOrder, t.ID)
	return t.ID
}

func (ecs *ECS) RemoveTower(id types.EntityID) bool {
	if _, ok := ecs.Towers[id]; !ok {
		return false
	}
	delete(ecs.Towers, id)
	return true
}

// TowerList returns live towers in placement order.
func (ecs *ECS) TowerList() []*component.Tower {
	ecs.towerOrder = compact(ecs.towerOrder, func(id types.EntityID) bool { _, ok := ecs.Towers[id]; return ok })
	list := make([]*component.Tower, 0, len(ecs.towerOrder))
	for _, id := range ecs.towerOrder {
		list = append(list, ecs.Towers[id])
	}
	return list
}

func (ecs *ECS) AddEnemy(e *component.Enemy) types.EntityID {
	if e.ID == 0 {
		e.ID = ecs.NewEntity()
	}
	ecs.Enemies[e.ID] = e
	ecs.enemyOrder = append(ecs.enemyOrder, e.ID)
	return e.ID
}

func (ecs *ECS) RemoveEnemy(id types.EntityID) bool {
	if _, ok := ecs.Enemies[id]; !ok {
		return false
	}
	delete(ecs.Enemies, id)
	return true
}

// EnemyList returns live enemies in spawn order.
func (ecs *ECS) EnemyList() []*component.Enemy {
	ecs.enemyOrder = compact(ecs.enemyOrder, func(id types.EntityID) bool { _, ok := ecs.Enemies[id]; return ok })
	list := make([]*component.Enemy, 0, len(ecs.enemyOrder))
	for _, id := range ecs.enemyOrder {
		list = append(list, ecs.Enemies[id])
	}
	return list
}

// RemoveDeadEnemies drops every enemy flagged IsDead and returns how many went.
// Running it twice in a row is the same as running it once.
func (ecs *ECS) RemoveDeadEnemies() int {
	removed := 0
	for id, e := range ecs.Enemies {
		if e.IsDead {
			delete(ecs.Enemies, id)
			removed++
		}
	}
	return removed
}

func (ecs *ECS) AddProjectile(p *component.Projectile) types.EntityID {
	if p.ID == 0 {
		p.ID = ecs.NewEntity()
	}
	ecs.Projectiles[p.ID] = p
	ecs.projectileOrder = append(ecs.projectileOrder, p.ID)
	return p.ID
}

func (ecs *ECS) RemoveProjectile(id types.EntityID) {
	delete(ecs.Projectiles, id)
}

// ProjectileList returns live projectiles in firing order.
func (ecs *ECS) ProjectileList() []*component.Projectile {
	ecs.projectileOrder = compact(ecs.projectileOrder, func(id types.EntityID) bool { _, ok := ecs.Projectiles[id]; return ok })
	list := make([]*component.Projectile, 0, len(ecs.projectileOrder))
	for _, id := range ecs.projectileOrder {
		list = append(list, ecs.Projectiles[id])
	}
	return list
}

func (ecs *ECS) ClearEnemies() {
	ecs.Enemies = make(map[types.EntityID]*component.Enemy)
	ecs.enemyOrder = nil
}

func (ecs *ECS) ClearProjectiles() {
	ecs.Projectiles = make(map[types.EntityID]*component.Projectile)
	ecs.projectileOrder = nil
}

// SpecialAttack finds a special attack by id.
func (ecs *ECS) SpecialAttack(id string) *component.SpecialAttack {
	for _, sa := range ecs.SpecialAttacks {
		if sa.Def.ID == id {
			return sa
		}
	}
	return nil
}

// Clone deep-copies the whole store; the copy shares nothing mutable with the receiver.
func (ecs *ECS) Clone() *ECS {
	c := &ECS{
		GameTime:        ecs.GameTime,
		NextID:          ecs.NextID,
		Towers:          make(map[types.EntityID]*component.Tower, len(ecs.Towers)),
		Enemies:         make(map[types.EntityID]*component.Enemy, len(ecs.Enemies)),
		Projectiles:     make(map[types.EntityID]*component.Projectile, len(ecs.Projectiles)),
		towerOrder:      append([]types.EntityID(nil), ecs.towerOrder...),
		enemyOrder:      append([]types.EntityID(nil), ecs.enemyOrder...),
		projectileOrder: append([]types.EntityID(nil), ecs.projectileOrder...),
		SpecialAttacks:  make([]*component.SpecialAttack, len(ecs.SpecialAttacks)),
	}
	for id, t := range ecs.Towers {
		cp := *t
		c.Towers[id] = &cp
	}
	for id, e := range ecs.Enemies {
		c.Enemies[id] = cloneEnemy(e)
	}
	for id, p := range ecs.Projectiles {
		cp := *p
		c.Projectiles[id] = &cp
	}
	for i, sa := range ecs.SpecialAttacks {
		cp := *sa
		c.SpecialAttacks[i] = &cp
	}
	wave := *ecs.Wave
	c.Wave = &wave
	gs := *ecs.GameState
	c.GameState = &gs
	return c
}

// RestoreFrom replaces the store contents with a previously taken clone.
// Systems keep their *ECS pointer, so the swap is done in place.
func (ecs *ECS) RestoreFrom(other *ECS) {
	*ecs = *other
}

func cloneEnemy(e *component.Enemy) *component.Enemy {
	cp := *e
	cp.Effects = append([]component.StatusEffect(nil), e.Effects...)
	if e.Boss != nil {
		boss := *e.Boss
		boss.Abilities = append([]component.BossAbility(nil), e.Boss.Abilities...)
		cp.Boss = &boss
	}
	return &cp
}

func compact(order []types.EntityID, alive func(types.EntityID) bool) []types.EntityID {
	out := order[:0]
	for _, id := range order {
		if alive(id) {
			out = append(out, id)
		}
	}
	return out
}
