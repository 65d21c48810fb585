// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	game "go-pub-defense/internal/app"
	"go-pub-defense/internal/config"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState ставит симуляцию на паузу на время своего существования
// и рисует поверх предыдущего экрана.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	game          *game.Game
}

func NewPauseState(sm *StateMachine, prevState State, g *game.Game) *PauseState {
	return &PauseState{stateMachine: sm, previousState: prevState, game: g}
}

func (s *PauseState) Enter() {
	if !s.game.Snapshot().IsPaused {
		s.game.TogglePause()
	}
}

func (s *PauseState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
	// Тик на паузе ничего не меняет, но так хост остается честным
	return s.game.Update(deltaTime)
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)
	drawLines(screen, []string{"PAUSED", "P / ESC to resume"}, config.ScreenWidth/2-60, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {
	if s.game.Snapshot().IsPaused {
		s.game.TogglePause()
	}
}
