package interfaces

import (
	"go-pub-defense/internal/component"
	"go-pub-defense/internal/defs"
)

// Spawner создаёт врага в произвольной точке пути. Нужен способностям боссов,
// чтобы не зависеть от системы волн напрямую.
type Spawner interface {
	SpawnAt(enemyType defs.EnemyType, pos component.Position, pathIndex int) *component.Enemy
}
