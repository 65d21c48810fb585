// internal/system/wave.go
package system

import (
	"log"

	"go-pub-defense/internal/component"
	"go-pub-defense/internal/defs"
	"go-pub-defense/internal/entity"
	"go-pub-defense/internal/event"
	"go-pub-defense/internal/interfaces"
	"go-pub-defense/pkg/worldmap"
)

// WaveSystem превращает описание волны в отложенные появления врагов и
// определяет, когда волна пройдена.
type WaveSystem struct {
	ecs             *entity.ECS
	tables          *defs.Tables
	path            worldmap.Path
	eventDispatcher *event.Dispatcher
	scheduler       interfaces.Scheduler
}

func NewWaveSystem(ecs *entity.ECS, tables *defs.Tables, path worldmap.Path, eventDispatcher *event.Dispatcher, scheduler interfaces.Scheduler) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		tables:          tables,
		path:            path,
		eventDispatcher: eventDispatcher,
		scheduler:       scheduler,
	}
}

// StartWave запускает текущую волну. Ничего не делает, если волна уже идет,
// забег окончен или описания волны нет.
func (s *WaveSystem) StartWave() bool {
	gs := s.ecs.GameState
	if gs.IsPlaying || gs.Terminal() {
		return false
	}
	waveDef, ok := s.tables.Wave(gs.Wave)
	if !ok {
		log.Printf("WaveSystem: no definition for wave %d", gs.Wave)
		return false
	}

	// Остатки прошлой волны
	s.ecs.ClearEnemies()
	s.ecs.ClearProjectiles()

	gs.IsPlaying = true
	number := gs.Wave
	*s.ecs.Wave = component.Wave{Number: number, Total: waveDef.TotalUnits()}

	for _, group := range waveDef.Enemies {
		enemyType := group.Type
		for i := 0; i < group.Count; i++ {
			s.scheduler.After(group.SpawnOffset(i), "spawn:"+string(enemyType), func() {
				s.spawnForWave(number, enemyType)
			})
		}
	}

	s.dispatch(event.Event{Type: event.WaveStarted, Data: event.WavePayload{Number: number, Reward: waveDef.Reward}})
	return true
}

// spawnForWave — задача появления. Задачи чужой (уже закончившейся) волны игнорируются.
func (s *WaveSystem) spawnForWave(number int, enemyType defs.EnemyType) {
	wave := s.ecs.Wave
	if !s.ecs.GameState.IsPlaying || wave.Number != number {
		return
	}
	wave.Spawned++
	s.SpawnAt(enemyType, s.path.Entry(), 0)
}

// SpawnAt создает врага в точке pos, считая, что он уже прошел точку pathIndex.
// Используется и волнами, и способностями боссов.
func (s *WaveSystem) SpawnAt(enemyType defs.EnemyType, pos component.Position, pathIndex int) *component.Enemy {
	def, ok := s.tables.Enemy(enemyType)
	if !ok {
		log.Printf("Error: Enemy definition not found for type: %s", enemyType)
		return nil
	}

	enemy := &component.Enemy{
		Type:      def.Type,
		Position:  pos,
		Health:    def.Health,
		MaxHealth: def.Health,
		BaseSpeed: def.Speed,
		Speed:     def.Speed,
		PathIndex: pathIndex,
		Gold:      def.Gold,
	}
	if def.Boss != nil {
		boss := &component.BossData{SizeMultiplier: def.Boss.SizeMultiplier}
		for _, ab := range def.Boss.Abilities {
			boss.Abilities = append(boss.Abilities, component.BossAbility{Def: ab, Cooldown: defs.Ms(ab.CooldownMs)})
		}
		enemy.Boss = boss
	}
	s.ecs.AddEnemy(enemy)

	s.dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyPayload{EnemyID: enemy.ID, Type: enemy.Type, Gold: enemy.Gold}})
	return enemy
}

// CheckCompletion засчитывает волну, когда все ее враги появились и живых не
// осталось. Срабатывает один раз: после него IsPlaying == false.
// Без жизней волна не засчитывается, забег завершает StateSystem.
func (s *WaveSystem) CheckCompletion() bool {
	gs := s.ecs.GameState
	wave := s.ecs.Wave
	if !gs.IsPlaying || gs.Lives <= 0 || len(s.ecs.Enemies) > 0 || !wave.Exhausted() {
		return false
	}

	waveDef, _ := s.tables.Wave(gs.Wave)
	completed := gs.Wave
	gs.Gold += waveDef.Reward
	gs.Wave++
	gs.IsPlaying = false
	s.ecs.ClearProjectiles()
	*wave = component.Wave{}

	s.dispatch(event.Event{Type: event.WaveCompleted, Data: event.WavePayload{Number: completed, Reward: waveDef.Reward}})

	if gs.Wave > s.tables.TotalWaves() {
		gs.Victory = true
		gs.IsPaused = true
		s.dispatch(event.Event{Type: event.Victory, Data: event.WavePayload{Number: completed}})
	}
	return true
}

func (s *WaveSystem) dispatch(e event.Event) {
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(e)
	}
}
