package event

import (
	"go-pub-defense/internal/defs"
	"go-pub-defense/internal/types"
)

// WavePayload сопровождает WaveStarted и WaveCompleted.
type WavePayload struct {
	Number int
	Reward int
}

// EnemyPayload сопровождает EnemySpawned, EnemyKilled и EnemyLeaked.
type EnemyPayload struct {
	EnemyID types.EntityID
	Type    defs.EnemyType
	TowerID types.EntityID // 0, если убит не башней
	Gold    int
}

// TowerPayload сопровождает события башен.
type TowerPayload struct {
	TowerID types.EntityID
	Type    defs.TowerType
	Level   int
	Gold    int // потрачено (или возвращено при продаже)
}

// AbilityPayload сопровождает BossAbilityUsed.
type AbilityPayload struct {
	BossID types.EntityID
	Boss   defs.EnemyType
	Kind   defs.AbilityKind
}
