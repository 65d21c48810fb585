package app

import (
	"time"

	"go-pub-defense/internal/component"
	"go-pub-defense/internal/defs"
	"go-pub-defense/internal/types"
	"go-pub-defense/pkg/worldmap"
)

// Snapshot — копия состояния для отрисовки. Не разделяет память с симуляцией,
// ее можно читать без блокировок.
type Snapshot struct {
	Gold       int
	Lives      int
	Wave       int
	TotalWaves int
	Score      int

	IsPlaying bool
	IsPaused  bool
	GameOver  bool
	Victory   bool
	GameSpeed float64
	GameTime  time.Duration

	SelectedTower    types.EntityID
	PlacingTowerType defs.TowerType
	WaveProgress     component.Wave

	Towers         []component.Tower
	Enemies        []component.Enemy
	Projectiles    []component.Projectile
	SpecialAttacks []component.SpecialAttack
	Path           worldmap.Path
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	c := g.ECS.Clone()
	gs := c.GameState
	snap := Snapshot{
		Gold:             gs.Gold,
		Lives:            gs.Lives,
		Wave:             gs.Wave,
		TotalWaves:       g.Tables.TotalWaves(),
		Score:            gs.Score,
		IsPlaying:        gs.IsPlaying,
		IsPaused:         gs.IsPaused,
		GameOver:         gs.GameOver,
		Victory:          gs.Victory,
		GameSpeed:        gs.GameSpeed,
		GameTime:         c.GameTime,
		SelectedTower:    gs.SelectedTower,
		PlacingTowerType: gs.PlacingTowerType,
		WaveProgress:     *c.Wave,
		Path:             g.Path.Clone(),
	}
	for _, t := range c.TowerList() {
		snap.Towers = append(snap.Towers, *t)
	}
	for _, e := range c.EnemyList() {
		snap.Enemies = append(snap.Enemies, *e)
	}
	for _, p := range c.ProjectileList() {
		snap.Projectiles = append(snap.Projectiles, *p)
	}
	for _, sa := range c.SpecialAttacks {
		snap.SpecialAttacks = append(snap.SpecialAttacks, *sa)
	}
	return snap
}

// Tower ищет башню в снимке по id.
func (s Snapshot) Tower(id types.EntityID) (component.Tower, bool) {
	for _, t := range s.Towers {
		if t.ID == id {
			return t, true
		}
	}
	return component.Tower{}, false
}
