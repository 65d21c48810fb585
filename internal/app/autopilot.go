package app

import (
	"errors"
	"log"
	"time"

	"go-pub-defense/internal/component"
	"go-pub-defense/internal/config"
	"go-pub-defense/internal/defs"
)

// Autopilot играет сам: расставляет башни вдоль пути, пока хватает золота,
// и запускает следующую волну, как только предыдущая закончилась.
// Используется в headless-режиме и в тестах.
type Autopilot struct {
	game      *Game
	towerType defs.TowerType
	spots     []component.Position
	next      int
}

// autopilotOffset — отступ позиций от пути, с запасом над PathClearance.
const autopilotOffset = 50.0

func NewAutopilot(g *Game, towerType defs.TowerType) *Autopilot {
	return &Autopilot{game: g, towerType: towerType, spots: spotsAlongPath(g)}
}

// spotsAlongPath: по две точки на четвертях каждого отрезка, слева и справа
// от него. Точки за пределами экрана отбрасываются.
func spotsAlongPath(g *Game) []component.Position {
	var spots []component.Position
	for i := 1; i < len(g.Path); i++ {
		a, b := g.Path[i-1], g.Path[i]
		seg := b.Sub(a)
		length := b.Distance(a)
		if length == 0 {
			continue
		}
		normal := component.Position{X: -seg.Y / length, Y: seg.X / length}
		for _, t := range []float64{0.25, 0.5, 0.75} {
			base := a.Add(seg.MulScalar(t))
			for _, side := range []float64{1, -1} {
				p := base.Add(normal.MulScalar(side * autopilotOffset))
				if p.X < 0 || p.Y < 0 || p.X > config.ScreenWidth || p.Y > config.ScreenHeight {
					continue
				}
				spots = append(spots, p)
			}
		}
	}
	return spots
}

// Step делает один ход автопилота. false — забег окончен.
func (a *Autopilot) Step() bool {
	s := a.game.Snapshot()
	if s.GameOver || s.Victory {
		return false
	}
	for a.next < len(a.spots) {
		_, err := a.game.TryPlaceTower(a.spots[a.next], a.towerType)
		if errors.Is(err, ErrInsufficientFunds) {
			break
		}
		if err != nil && !errors.Is(err, ErrInvalidPlacement) {
			log.Printf("Autopilot stops building: %v", err)
			a.next = len(a.spots)
			break
		}
		// занятое место пропускаем
		a.next++
	}
	if !s.IsPlaying {
		a.game.StartWave()
	}
	return true
}

// RunHeadless крутит симуляцию кадрами по dt секунд, пока не пройдет
// maxSimTime реального времени или забег не закончится.
func RunHeadless(g *Game, pilot *Autopilot, dt float64, maxSimTime time.Duration) Snapshot {
	frame := simDuration(dt)
	for elapsed := time.Duration(0); elapsed < maxSimTime; elapsed += frame {
		if pilot != nil && !pilot.Step() {
			break
		}
		if err := g.Update(dt); err != nil {
			log.Printf("Headless tick: %v", err)
		}
	}
	return g.Snapshot()
}
