package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	game "go-pub-defense/internal/app"
	"go-pub-defense/internal/config"
)

var (
	pathColor       = color.RGBA{90, 70, 50, 255}
	towerColor      = color.RGBA{70, 130, 180, 255}
	selectedColor   = color.RGBA{250, 210, 60, 255}
	enemyColor      = color.RGBA{200, 60, 60, 255}
	stunnedColor    = color.RGBA{150, 150, 255, 255}
	projectileColor = color.RGBA{240, 240, 240, 255}
)

// drawLines выводит строки отладочным шрифтом сверху вниз.
func drawLines(screen *ebiten.Image, lines []string, x, y int, clr color.Color) {
	for i, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, x, y+i*config.LineHeight, clr)
	}
}

// drawWorld — схематичный вид поля: путь, башни, враги, снаряды.
func drawWorld(screen *ebiten.Image, s game.Snapshot) {
	screen.Fill(config.BackgroundColor)
	for i := 1; i < len(s.Path); i++ {
		a, b := s.Path[i-1], s.Path[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 24, pathColor, false)
	}
	for _, t := range s.Towers {
		clr := towerColor
		if t.ID == s.SelectedTower {
			clr = selectedColor
			vector.StrokeCircle(screen, float32(t.Position.X), float32(t.Position.Y), float32(t.Range), 1, clr, false)
		}
		vector.DrawFilledCircle(screen, float32(t.Position.X), float32(t.Position.Y), 10+2*float32(t.Level), clr, false)
	}
	for _, e := range s.Enemies {
		radius := float32(8)
		if e.Boss != nil {
			radius *= float32(e.Boss.SizeMultiplier)
		}
		clr := enemyColor
		if e.Speed < e.BaseSpeed {
			clr = stunnedColor
		}
		vector.DrawFilledCircle(screen, float32(e.Position.X), float32(e.Position.Y), radius, clr, false)
	}
	for _, p := range s.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y), 3, projectileColor, false)
	}
}
