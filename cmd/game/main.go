// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	game "go-pub-defense/internal/app"
	"go-pub-defense/internal/config"
	"go-pub-defense/internal/defs"
	"go-pub-defense/internal/state"
	"go-pub-defense/pkg/worldmap"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now
	// Game сам обрезает длинные кадры
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settingsPath := flag.String("settings", "", "YAML settings file")
	headless := flag.Bool("headless", false, "run the autopilot without a window")
	duration := flag.Duration("duration", 10*time.Minute, "headless run length")
	flag.Parse()

	settings := config.DefaultSettings()
	if *settingsPath != "" {
		s, err := config.LoadSettings(*settingsPath)
		if err != nil {
			log.Fatal(err)
		}
		settings = s
	}

	tables := defs.Default()
	if settings.TablesPath != "" {
		t, err := defs.LoadTables(settings.TablesPath)
		if err != nil {
			log.Fatal(err)
		}
		tables = t
	}

	registry := worldmap.NewRegistry()
	world := settings.World
	if settings.MapPath != "" {
		ids, err := registry.RegisterTMX(os.DirFS(filepath.Dir(settings.MapPath)), filepath.Base(settings.MapPath))
		if err != nil {
			log.Fatal(err)
		}
		world = ids[0]
	}

	newGame := func(path worldmap.Path) (*game.Game, error) {
		return game.NewGame(tables, path, settings)
	}

	if *headless {
		path, err := registry.Path(world)
		if err != nil {
			log.Fatal(err)
		}
		g, err := newGame(path)
		if err != nil {
			log.Fatal(err)
		}
		s := game.RunHeadless(g, game.NewAutopilot(g, defs.TowerDarts), 1.0/60, *duration)
		log.Printf("Headless run finished: wave %d/%d, lives %d, score %d, victory %v",
			s.Wave, s.TotalWaves, s.Lives, s.Score, s.Victory)
		return
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, registry, world, newGame))
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Pub Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
