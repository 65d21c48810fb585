// internal/state/play_state.go
package state

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	game "go-pub-defense/internal/app"
	"go-pub-defense/internal/component"
	"go-pub-defense/internal/config"
	"go-pub-defense/internal/defs"
	"go-pub-defense/internal/types"
)

// towerKeys выбирают тип башни для установки (по возрастанию цены).
var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6}

// specialKeys применяют особые атаки в точке курсора.
var specialKeys = []ebiten.Key{ebiten.KeyQ, ebiten.KeyW, ebiten.KeyE}

// PlayState — основной экран: переводит ввод в команды симуляции.
type PlayState struct {
	sm         *StateMachine
	game       *game.Game
	towerTypes []defs.TowerType
	message    string
}

func NewPlayState(sm *StateMachine, g *game.Game) *PlayState {
	order := make([]defs.TowerType, 0, len(g.Tables.Towers))
	for t := range g.Tables.Towers {
		order = append(order, t)
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := g.Tables.Towers[order[i]], g.Tables.Towers[order[j]]
		if a.Cost != b.Cost {
			return a.Cost < b.Cost
		}
		return a.Type < b.Type
	})
	return &PlayState{sm: sm, game: g, towerTypes: order}
}

func (p *PlayState) Enter() {}

func (p *PlayState) Exit() {}

func (p *PlayState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.sm.SetState(NewPauseState(p.sm, p, p.game))
		return nil
	}
	p.handleInput()

	if err := p.game.Update(deltaTime); err != nil {
		// Кадр отброшен, игра продолжается со следующего
		log.Printf("PlayState: %v", err)
	}

	if s := p.game.Snapshot(); s.GameOver || s.Victory {
		p.sm.SetState(NewResultState(p.sm, p.game))
	}
	return nil
}

func (p *PlayState) handleInput() {
	for i, key := range towerKeys {
		if i < len(p.towerTypes) && inpututil.IsKeyJustPressed(key) {
			p.game.SetPlacingTowerType(p.towerTypes[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		p.game.StartWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		p.game.CycleGameSpeed()
	}

	cx, cy := ebiten.CursorPosition()
	cursor := component.Position{X: float64(cx), Y: float64(cy)}
	s := p.game.Snapshot()

	for i, key := range specialKeys {
		if i < len(s.SpecialAttacks) && inpututil.IsKeyJustPressed(key) {
			p.report(p.game.TryUseSpecialAttack(s.SpecialAttacks[i].Def.ID, cursor))
		}
	}
	if s.SelectedTower != 0 {
		if inpututil.IsKeyJustPressed(ebiten.KeyU) {
			p.report(p.game.TryUpgradeTower(s.SelectedTower))
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyS) {
			p.report(p.game.TrySellTower(s.SelectedTower))
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		p.game.SetPlacingTowerType("")
		p.game.SelectTower(0)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if s.PlacingTowerType != "" {
			_, err := p.game.TryPlaceTower(cursor, s.PlacingTowerType)
			p.report(err)
		} else {
			p.game.SelectTower(towerAt(s, cursor))
		}
	}
}

// report показывает причину отказа команды в строке состояния.
func (p *PlayState) report(err error) {
	switch {
	case err == nil:
		p.message = ""
	case errors.Is(err, game.ErrInsufficientFunds):
		p.message = "Not enough gold"
	case errors.Is(err, game.ErrInvalidPlacement):
		p.message = "Can't build there"
	case errors.Is(err, game.ErrOnCooldown):
		p.message = "Not ready yet"
	default:
		p.message = err.Error()
	}
}

// towerAt — башня под курсором или 0.
func towerAt(s game.Snapshot, pos component.Position) types.EntityID {
	for _, t := range s.Towers {
		if t.Position.Distance(pos) <= 16 {
			return t.ID
		}
	}
	return 0
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	s := p.game.Snapshot()
	drawWorld(screen, s)

	clr := config.BuildStateColor
	if s.IsPlaying {
		clr = config.WaveStateColor
	}
	drawLines(screen, p.hudLines(s), config.TextOffsetX, config.TextOffsetY, clr)
}

func (p *PlayState) hudLines(s game.Snapshot) []string {
	lines := []string{
		fmt.Sprintf("Gold %d  Lives %d  Wave %d/%d  Score %d  x%.0f", s.Gold, s.Lives, s.Wave, s.TotalWaves, s.Score, s.GameSpeed),
	}
	if s.IsPlaying {
		lines = append(lines, fmt.Sprintf("Enemies %d  spawned %d/%d", len(s.Enemies), s.WaveProgress.Spawned, s.WaveProgress.Total))
	} else {
		lines = append(lines, "SPACE: start wave")
	}

	build := ""
	for i, t := range p.towerTypes {
		def := p.game.Tables.Towers[t]
		build += fmt.Sprintf("%d:%s(%d) ", i+1, def.Name, def.Cost)
	}
	lines = append(lines, build)

	specials := ""
	for i, sa := range s.SpecialAttacks {
		if i >= len(specialKeys) {
			break
		}
		status := "ready"
		if !sa.Ready() {
			status = fmt.Sprintf("%.0fs", sa.CurrentCooldown.Seconds())
		}
		specials += fmt.Sprintf("%s:%s[%s] ", specialKeys[i], sa.Def.Name, status)
	}
	lines = append(lines, specials)

	if t, ok := s.Tower(s.SelectedTower); ok {
		refund, _ := p.game.SellValue(t.ID)
		lines = append(lines, fmt.Sprintf("%s L%d dmg %.0f rng %.0f kills %d  U:upgrade(%d) S:sell(%d)",
			t.Type, t.Level, t.Damage, t.Range, t.Kills, t.NextUpgradeCost(), refund))
	}
	if s.PlacingTowerType != "" {
		lines = append(lines, fmt.Sprintf("placing %s, right click to cancel", s.PlacingTowerType))
	}
	if p.message != "" {
		lines = append(lines, p.message)
	}
	return lines
}
