// internal/app/game.go
package app

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"go-pub-defense/internal/component"
	"go-pub-defense/internal/config"
	"go-pub-defense/internal/defs"
	"go-pub-defense/internal/entity"
	"go-pub-defense/internal/event"
	"go-pub-defense/internal/scheduler"
	"go-pub-defense/internal/system"
	"go-pub-defense/internal/types"
	"go-pub-defense/internal/utils"
	"go-pub-defense/pkg/worldmap"
)

// Game — контроллер симуляции. Все публичные методы берут mu, поэтому хост
// может гнать Update из одной горутины, а команды слать из другой.
// Внутренние (строчные) методы mu не берут и публичные не вызывают.
type Game struct {
	mu sync.Mutex

	ECS             *entity.ECS
	Tables          *defs.Tables
	Path            worldmap.Path
	Settings        *config.Settings
	EventDispatcher *event.Dispatcher
	Queue           *scheduler.Queue
	Rng             *utils.PRNGService

	MovementSystem      *system.MovementSystem
	CombatSystem        *system.CombatSystem
	ProjectileSystem    *system.ProjectileSystem
	WaveSystem          *system.WaveSystem
	StatusEffectSystem  *system.StatusEffectSystem
	SpecialAttackSystem *system.SpecialAttackSystem
	BossAbilitySystem   *system.BossAbilitySystem
	StateSystem         *system.StateSystem
}

// NewGame собирает симуляцию. settings == nil — настройки по умолчанию.
func NewGame(tables *defs.Tables, path worldmap.Path, settings *config.Settings) (*Game, error) {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	if err := tables.Validate(); err != nil {
		return nil, err
	}
	if err := path.Validate(); err != nil {
		return nil, err
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	queue := scheduler.NewQueue()
	g := &Game{
		ECS:             ecs,
		Tables:          tables,
		Path:            path.Clone(),
		Settings:        settings,
		EventDispatcher: eventDispatcher,
		Queue:           queue,
		Rng:             utils.NewPRNGService(settings.Seed),
	}
	g.MovementSystem = system.NewMovementSystem(ecs, g.Path, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, tables, g.Path, eventDispatcher, queue)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs, queue)
	g.SpecialAttackSystem = system.NewSpecialAttackSystem(ecs, eventDispatcher, g.StatusEffectSystem)
	g.BossAbilitySystem = system.NewBossAbilitySystem(ecs, eventDispatcher, g.StatusEffectSystem, g.WaveSystem, g.Rng)
	g.StateSystem = system.NewStateSystem(ecs, eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeMany(listener,
		event.WaveStarted, event.WaveCompleted, event.EnemyLeaked,
		event.BossAbilityUsed, event.GameOver, event.Victory, event.GameReset)

	g.resetState(1)
	return g, nil
}

// GameEventListener пишет в лог важные для забега события.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		if p, ok := e.Data.(event.WavePayload); ok {
			log.Printf("Wave %d started", p.Number)
		}
	case event.WaveCompleted:
		if p, ok := e.Data.(event.WavePayload); ok {
			log.Printf("Wave %d completed, reward %d", p.Number, p.Reward)
		}
	case event.EnemyLeaked:
		if p, ok := e.Data.(event.EnemyPayload); ok {
			log.Printf("%s leaked, lives left: %d", p.Type, l.game.ECS.GameState.Lives)
		}
	case event.BossAbilityUsed:
		if p, ok := e.Data.(event.AbilityPayload); ok {
			log.Printf("%s used %s", p.Boss, p.Kind)
		}
	case event.GameOver:
		log.Printf("Game over on wave %d, score %d", l.game.ECS.GameState.Wave, l.game.ECS.GameState.Score)
	case event.Victory:
		log.Printf("Victory! Score %d", l.game.ECS.GameState.Score)
	case event.GameReset:
		log.Println("Game reset")
	}
}

// Update продвигает симуляцию на deltaSeconds реального времени. Длинные
// кадры обрезаются до config.MaxDeltaTime, затем время умножается на скорость
// игры. Когда волна не идет или игра на паузе, ничего не меняется.
// Паника внутри кадра откатывает состояние к началу кадра и возвращается
// как ErrTickDiscarded; следующий кадр идет как обычно.
func (g *Game) Update(deltaSeconds float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	gs := g.ECS.GameState
	if !gs.IsPlaying || gs.IsPaused {
		return nil
	}
	if deltaSeconds <= 0 || math.IsNaN(deltaSeconds) {
		return nil
	}
	if deltaSeconds > config.MaxDeltaTime {
		deltaSeconds = config.MaxDeltaTime
	}
	return g.tick(deltaSeconds * gs.GameSpeed)
}

func (g *Game) tick(dt float64) (err error) {
	ecsBackup := g.ECS.Clone()
	queueBackup := g.Queue.Save()
	defer func() {
		if r := recover(); r != nil {
			g.ECS.RestoreFrom(ecsBackup)
			g.Queue.Restore(queueBackup)
			log.Printf("Tick discarded: %v", r)
			err = fmt.Errorf("%w: %v", ErrTickDiscarded, r)
			g.EventDispatcher.Dispatch(event.Event{Type: event.TickDiscarded, Data: r})
		}
	}()

	// 0. отложенные задачи: появления врагов, снятие эффектов
	g.Queue.Advance(simDuration(dt))
	g.ECS.GameTime = g.Queue.Now()

	g.MovementSystem.Update(dt)    // 1
	g.ECS.RemoveDeadEnemies()      // 2
	g.CombatSystem.Update(dt)      // 3
	g.BossAbilitySystem.Update(dt) // 3.5
	g.ProjectileSystem.Update(dt)  // 4
	g.WaveSystem.CheckCompletion() // 5
	g.SpecialAttackSystem.Update(dt)
	g.StateSystem.Update(dt)
	return nil
}

func simDuration(seconds float64) time.Duration {
	return time.Duration(math.Round(seconds * float64(time.Second)))
}

// resetState возвращает забег к началу с заданной скоростью игры.
func (g *Game) resetState(speed float64) {
	fresh := entity.NewECS()
	fresh.GameState.Gold = g.Settings.StartingGold
	fresh.GameState.Lives = g.Settings.StartingLives
	fresh.GameState.GameSpeed = speed
	for _, def := range g.Tables.SpecialAttacks {
		fresh.SpecialAttacks = append(fresh.SpecialAttacks, &component.SpecialAttack{Def: def})
	}
	g.ECS.RestoreFrom(fresh)
	g.Queue.Reset()
}

// StartWave запускает текущую волну. false — волна уже идет, забег окончен
// или волны с таким номером нет.
func (g *Game) StartWave() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.WaveSystem.StartWave()
}

// TogglePause переключает паузу. После конца забега пауза не снимается.
func (g *Game) TogglePause() {
	g.mu.Lock()
	defer g.mu.Unlock()
	gs := g.ECS.GameState
	if gs.Terminal() {
		return
	}
	gs.IsPaused = !gs.IsPaused
}

// SetGameSpeed принимает множитель 0 < m <= config.MaxGameSpeed, иначе игнорирует.
func (g *Game) SetGameSpeed(multiplier float64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !(multiplier > 0 && multiplier <= config.MaxGameSpeed) {
		return false
	}
	g.ECS.GameState.GameSpeed = multiplier
	return true
}

// CycleGameSpeed переключает скорость по кругу config.GameSpeeds.
func (g *Game) CycleGameSpeed() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	gs := g.ECS.GameState
	next := config.GameSpeeds[0]
	for i, s := range config.GameSpeeds {
		if s == gs.GameSpeed {
			next = config.GameSpeeds[(i+1)%len(config.GameSpeeds)]
			break
		}
	}
	gs.GameSpeed = next
	return next
}

// SelectTower фокусирует башню; 0 снимает выбор. Неизвестный id игнорируется.
func (g *Game) SelectTower(id types.EntityID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if id != 0 {
		if _, ok := g.ECS.Towers[id]; !ok {
			return
		}
	}
	g.ECS.GameState.SelectedTower = id
}

// SetPlacingTowerType включает режим установки; "" выключает.
func (g *Game) SetPlacingTowerType(towerType defs.TowerType) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if towerType != "" {
		if _, ok := g.Tables.Tower(towerType); !ok {
			return
		}
	}
	g.ECS.GameState.PlacingTowerType = towerType
}

// UseSpecialAttack — см. TryUseSpecialAttack.
func (g *Game) UseSpecialAttack(id string, pos component.Position) bool {
	return g.TryUseSpecialAttack(id, pos) == nil
}

// TryUseSpecialAttack применяет особую атаку в точке pos, если она не на
// перезарядке и забег не окончен.
func (g *Game) TryUseSpecialAttack(id string, pos component.Position) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.ECS.GameState.Terminal() {
		return fmt.Errorf("%w: %s refused", ErrRunOver, id)
	}
	attack := g.ECS.SpecialAttack(id)
	if attack == nil {
		return fmt.Errorf("%w: %q", ErrUnknownSpecialAttack, id)
	}
	if !attack.Ready() {
		return fmt.Errorf("%w: %s ready in %v", ErrOnCooldown, id, attack.CurrentCooldown)
	}
	g.SpecialAttackSystem.Use(attack, pos)
	return nil
}

// ResetGame возвращает все к начальному состоянию, скорость игры — 1.
func (g *Game) ResetGame() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetState(1)
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameReset})
}

// RetryGame — то же, что ResetGame, но выбранная скорость игры сохраняется.
func (g *Game) RetryGame() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetState(g.ECS.GameState.GameSpeed)
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameReset})
}
