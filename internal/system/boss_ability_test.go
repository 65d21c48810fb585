package system

import (
	"testing"
	"time"

	"go-pub-defense/internal/component"
	"go-pub-defense/internal/defs"
	"go-pub-defense/internal/event"
	"go-pub-defense/internal/utils"
)

func newBossSystem(w *testWorld, ws *WaveSystem) *BossAbilitySystem {
	return NewBossAbilitySystem(w.ecs, w.dispatcher, NewStatusEffectSystem(w.ecs, w.queue), ws, utils.NewPRNGService(1))
}

func TestBossHealAndSpawn(t *testing.T) {
	w := newTestWorld(t)
	ws := newWaveSystem(w)
	bas := newBossSystem(w, ws)

	king := ws.SpawnAt(defs.EnemyGoblinKing, component.Position{X: 150, Y: 0}, 0)
	if king.Boss == nil || len(king.Boss.Abilities) != 2 {
		t.Fatalf("boss data missing: %+v", king.Boss)
	}
	king.Health = 1000

	bas.Update(5.9)
	if king.Health != 1000 {
		t.Fatal("heal fired before its cooldown")
	}
	bas.Update(0.1)
	if king.Health != 1150 {
		t.Errorf("health after heal = %v, want 1150", king.Health)
	}

	bas.Update(2.0)
	minions := 0
	for _, e := range w.ecs.EnemyList() {
		if e.ID == king.ID {
			continue
		}
		minions++
		if e.Type != defs.EnemyGoblin && e.Type != defs.EnemyWolf {
			t.Errorf("unexpected minion type %s", e.Type)
		}
		if e.Position != king.Position || e.PathIndex != king.PathIndex {
			t.Errorf("minion should start where the boss stands, got %v index %d", e.Position, e.PathIndex)
		}
	}
	if minions != 3 {
		t.Errorf("spawned %d minions, want 3", minions)
	}

	king.Health = king.MaxHealth - 10
	bas.Update(4.0)
	if king.Health != king.MaxHealth {
		t.Errorf("heal must cap at max health, got %v", king.Health)
	}
	if n := w.recorder.Count(event.BossAbilityUsed); n != 3 {
		t.Errorf("BossAbilityUsed dispatched %d times, want 3", n)
	}
}

func TestBossShield(t *testing.T) {
	w := newTestWorld(t)
	ws := newWaveSystem(w)
	bas := newBossSystem(w, ws)
	chief := ws.SpawnAt(defs.EnemyOgreChief, straightPath[0], 0)

	bas.Update(10)
	if !chief.HasEffect(component.EffectShield) {
		t.Fatal("shield not raised")
	}
	if chief.Speed != chief.BaseSpeed {
		t.Error("shield must not change speed")
	}
	ApplyDamage(w.ecs, w.dispatcher, chief, 100, 0)
	if chief.Health != chief.MaxHealth {
		t.Error("shielded boss took damage")
	}

	w.advance(2500 * time.Millisecond)
	if chief.HasEffect(component.EffectShield) {
		t.Fatal("shield did not expire")
	}
	ApplyDamage(w.ecs, w.dispatcher, chief, 100, 0)
	if chief.Health != chief.MaxHealth-100 {
		t.Errorf("health = %v after shield dropped", chief.Health)
	}
}

func TestCustomAbilityHandler(t *testing.T) {
	w := newTestWorld(t)
	ws := newWaveSystem(w)
	bas := newBossSystem(w, ws)
	calls := 0
	bas.Register(defs.AbilityHeal, func(boss *component.Enemy, ability defs.AbilityDefinition) { calls++ })

	ws.SpawnAt(defs.EnemyGoblinKing, straightPath[0], 0)
	bas.Update(6)
	if calls != 1 {
		t.Errorf("custom heal handler called %d times, want 1", calls)
	}
}
