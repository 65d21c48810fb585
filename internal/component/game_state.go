package component

import (
	"go-pub-defense/internal/defs"
	"go-pub-defense/internal/types"
)

// GameState — экономика и флаги забега.
type GameState struct {
	Gold      int
	Lives     int
	Wave      int // номер текущей/следующей волны, начиная с 1
	Score     int // одно очко за убийство
	IsPlaying bool
	IsPaused  bool
	GameOver  bool
	Victory   bool
	GameSpeed float64

	SelectedTower    types.EntityID
	PlacingTowerType defs.TowerType
}

// Terminal reports whether the run has ended.
func (s *GameState) Terminal() bool {
	return s.GameOver || s.Victory
}
