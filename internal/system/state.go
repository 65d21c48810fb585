package system

import (
	"go-pub-defense/internal/entity"
	"go-pub-defense/internal/event"
)

// StateSystem переводит забег в состояние поражения, когда кончились жизни.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update: lives <= 0 — остановка и пауза. Жизни не обрезаются до нуля.
func (s *StateSystem) Update(deltaTime float64) {
	gs := s.ecs.GameState
	if gs.Lives > 0 || gs.GameOver {
		return
	}
	gs.IsPlaying = false
	gs.IsPaused = true
	gs.GameOver = true
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.WavePayload{Number: gs.Wave}})
	}
}
