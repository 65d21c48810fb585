// internal/state/menu_state.go
package state

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	game "go-pub-defense/internal/app"
	"go-pub-defense/internal/config"
	"go-pub-defense/pkg/worldmap"
)

// GameFactory собирает симуляцию для выбранного мира.
type GameFactory func(path worldmap.Path) (*game.Game, error)

// MenuState — выбор мира. Цифра выбирает мир, SPACE запускает игру.
type MenuState struct {
	sm       *StateMachine
	registry *worldmap.Registry
	worlds   []string
	selected int
	newGame  GameFactory
	err      error
}

func NewMenuState(sm *StateMachine, registry *worldmap.Registry, selected string, newGame GameFactory) *MenuState {
	m := &MenuState{sm: sm, registry: registry, worlds: registry.Worlds(), newGame: newGame}
	for i, id := range m.worlds {
		if id == selected {
			m.selected = i
		}
	}
	return m
}

func (m *MenuState) Enter() {}

func (m *MenuState) Exit() {}

func (m *MenuState) Update(deltaTime float64) error {
	for i := range m.worlds {
		if i < len(towerKeys) && inpututil.IsKeyJustPressed(towerKeys[i]) {
			m.selected = i
		}
	}
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) || len(m.worlds) == 0 {
		return nil
	}

	path, err := m.registry.Path(m.worlds[m.selected])
	if err == nil {
		var g *game.Game
		if g, err = m.newGame(path); err == nil {
			log.Printf("Starting world %s", m.worlds[m.selected])
			m.sm.SetState(NewPlayState(m.sm, g))
			return nil
		}
	}
	m.err = err
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	lines := []string{"Choose a world, SPACE to start", ""}
	for i, id := range m.worlds {
		marker := " "
		if i == m.selected {
			marker = ">"
		}
		lines = append(lines, fmt.Sprintf("%s %d: %s", marker, i+1, id))
	}
	if m.err != nil {
		lines = append(lines, "", m.err.Error())
	}
	drawLines(screen, lines, config.ScreenWidth/2-120, config.ScreenHeight/3, config.TextLightColor)
}
