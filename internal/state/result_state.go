package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	game "go-pub-defense/internal/app"
	"go-pub-defense/internal/config"
)

// ResultState — итог забега (поражение или победа). R — повтор с той же
// скоростью, N — новая игра.
type ResultState struct {
	sm   *StateMachine
	game *game.Game
}

func NewResultState(sm *StateMachine, g *game.Game) *ResultState {
	return &ResultState{sm: sm, game: g}
}

func (r *ResultState) Enter() {}

func (r *ResultState) Exit() {}

func (r *ResultState) Update(deltaTime float64) error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		r.game.RetryGame()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		r.game.ResetGame()
	default:
		return nil
	}
	r.sm.SetState(NewPlayState(r.sm, r.game))
	return nil
}

func (r *ResultState) Draw(screen *ebiten.Image) {
	s := r.game.Snapshot()
	drawWorld(screen, s)

	title := "GAME OVER"
	if s.Victory {
		title = "VICTORY"
	}
	drawLines(screen, []string{
		title,
		fmt.Sprintf("Wave %d  Score %d", s.Wave, s.Score),
		"R: retry  N: new game",
	}, config.ScreenWidth/2-80, config.ScreenHeight/2, config.TextLightColor)
}
