package system

import (
	"testing"
	"time"

	"go-pub-defense/internal/component"
	"go-pub-defense/internal/defs"
	"go-pub-defense/internal/entity"
	"go-pub-defense/internal/event"
	"go-pub-defense/internal/scheduler"
	"go-pub-defense/pkg/worldmap"
)

// straightPath: вход в (0,0), поворот в (300,0), выход в (300,300).
var straightPath = worldmap.Path{{X: 0, Y: 0}, {X: 300, Y: 0}, {X: 300, Y: 300}}

type testWorld struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	recorder   *event.Recorder
	queue      *scheduler.Queue
	tables     *defs.Tables
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	w := &testWorld{
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
		recorder:   &event.Recorder{},
		queue:      scheduler.NewQueue(),
		tables:     defs.Default(),
	}
	w.ecs.GameState.Gold = 200
	w.ecs.GameState.Lives = 20
	w.dispatcher.SubscribeMany(w.recorder,
		event.WaveStarted, event.WaveCompleted, event.EnemySpawned, event.EnemyKilled,
		event.EnemyLeaked, event.SpecialAttackUsed, event.BossAbilityUsed, event.GameOver, event.Victory)
	return w
}

func (w *testWorld) addEnemy(x, y float64, pathIndex int, health, speed float64, gold int) *component.Enemy {
	e := &component.Enemy{
		Type:      defs.EnemyGoblin,
		Position:  component.Position{X: x, Y: y},
		Health:    health,
		MaxHealth: health,
		BaseSpeed: speed,
		Speed:     speed,
		PathIndex: pathIndex,
		Gold:      gold,
	}
	w.ecs.AddEnemy(e)
	return e
}

func (w *testWorld) addTower(x, y, damage, rng, attackSpeed float64) *component.Tower {
	t := &component.Tower{
		Type:        defs.TowerDarts,
		Position:    component.Position{X: x, Y: y},
		Level:       1,
		Damage:      damage,
		Range:       rng,
		AttackSpeed: attackSpeed,
	}
	t.LastAttack = w.ecs.GameTime - t.AttackInterval()
	w.ecs.AddTower(t)
	return t
}

// advance двигает часы очереди и хранилища вместе, как это делает игра.
func (w *testWorld) advance(d time.Duration) {
	w.queue.Advance(d)
	w.ecs.GameTime = w.queue.Now()
}

func near(a, b component.Position) bool {
	return a.Distance(b) < 1e-9
}
