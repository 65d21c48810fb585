package system

import (
	"testing"
	"time"

	"go-pub-defense/internal/component"
	"go-pub-defense/internal/defs"
	"go-pub-defense/internal/event"
)

func newSpecial(w *testWorld, id string) *component.SpecialAttack {
	def, ok := w.tables.SpecialAttack(id)
	if !ok {
		panic("missing special attack " + id)
	}
	sa := &component.SpecialAttack{Def: def}
	w.ecs.SpecialAttacks = append(w.ecs.SpecialAttacks, sa)
	return sa
}

func TestStunAffectsOnlyEnemiesInRadiusAndRestoresExactly(t *testing.T) {
	w := newTestWorld(t)
	effects := NewStatusEffectSystem(w.ecs, w.queue)
	sas := NewSpecialAttackSystem(w.ecs, w.dispatcher, effects)
	peanuts := newSpecial(w, "peanuts")

	inside := w.addEnemy(100, 100, 0, 80, 0.45, 10)
	edge := w.addEnemy(180, 100, 0, 80, 1.8, 10) // ровно 80
	outside := w.addEnemy(181, 100, 0, 80, 0.8, 10)
	speeds := map[*component.Enemy]float64{inside: inside.Speed, edge: edge.Speed, outside: outside.Speed}

	if n := sas.Use(peanuts, component.Position{X: 100, Y: 100}); n != 2 {
		t.Fatalf("Use() affected %d enemies, want 2", n)
	}
	if peanuts.CurrentCooldown != 20*time.Second {
		t.Errorf("cooldown = %v, want 20s", peanuts.CurrentCooldown)
	}
	if inside.Speed != 0.1*speeds[inside] || edge.Speed != 0.1*speeds[edge] {
		t.Errorf("stunned speeds = %v, %v", inside.Speed, edge.Speed)
	}
	if outside.Speed != speeds[outside] {
		t.Errorf("enemy outside the radius was slowed: %v", outside.Speed)
	}

	w.advance(2999 * time.Millisecond)
	if !inside.HasEffect(component.EffectStun) {
		t.Fatal("stun expired early")
	}
	w.advance(time.Millisecond)
	for e, before := range speeds {
		if e.Speed != before {
			t.Errorf("enemy %d speed = %v after stun, want exactly %v", e.ID, e.Speed, before)
		}
		if len(e.Effects) != 0 {
			t.Errorf("enemy %d still has effects %v", e.ID, e.Effects)
		}
	}
	if n := w.recorder.Count(event.SpecialAttackUsed); n != 1 {
		t.Errorf("SpecialAttackUsed dispatched %d times", n)
	}
}

func TestRepeatedStunsDoNotDrift(t *testing.T) {
	w := newTestWorld(t)
	effects := NewStatusEffectSystem(w.ecs, w.queue)
	base, factor := 0.35, 0.1
	e := w.addEnemy(0, 0, 0, 80, base, 10)

	effects.Apply(e, component.EffectStun, factor, 3*time.Second)
	w.advance(time.Second)
	effects.Apply(e, component.EffectStun, factor, 3*time.Second)
	if e.Speed != base*factor*factor {
		t.Errorf("stacked stun speed = %v", e.Speed)
	}
	w.advance(2 * time.Second)
	if e.Speed != base*factor {
		t.Errorf("after first expiry speed = %v, want %v", e.Speed, base*factor)
	}
	w.advance(time.Second)
	if e.Speed != base {
		t.Errorf("after both expire speed = %v, want 0.35", e.Speed)
	}
}

func TestStunExpiryOnRemovedEnemyIsHarmless(t *testing.T) {
	w := newTestWorld(t)
	effects := NewStatusEffectSystem(w.ecs, w.queue)
	e := w.addEnemy(0, 0, 0, 80, 1, 10)
	effectID := effects.Apply(e, component.EffectStun, 0.1, time.Second)
	w.ecs.RemoveEnemy(e.ID)

	w.advance(time.Second)
	if effects.Remove(e.ID, effectID) {
		t.Error("Remove reported success for a missing enemy")
	}
}

func TestAreaDamage(t *testing.T) {
	w := newTestWorld(t)
	sas := NewSpecialAttackSystem(w.ecs, w.dispatcher, NewStatusEffectSystem(w.ecs, w.queue))
	lastOrders := newSpecial(w, "last_orders")
	tower := w.addTower(500, 500, 10, 50, 1)

	weak := w.addEnemy(0, 0, 0, 100, 1, 10)
	strong := w.addEnemy(60, 80, 0, 500, 1, 45) // ровно 100
	far := w.addEnemy(300, 0, 0, 100, 1, 10)

	sas.Use(lastOrders, component.Position{X: 0, Y: 0})

	gs := w.ecs.GameState
	if !weak.IsDead {
		t.Error("weak enemy should die")
	}
	if _, ok := w.ecs.Enemies[weak.ID]; ok {
		t.Error("killed enemy must be removed at once")
	}
	if strong.Health != 380 {
		t.Errorf("strong enemy health = %v, want 380", strong.Health)
	}
	if far.Health != 100 {
		t.Errorf("enemy outside radius hit: %v", far.Health)
	}
	if gs.Gold != 210 || gs.Score != 1 {
		t.Errorf("gold=%d score=%d, want 210 and 1", gs.Gold, gs.Score)
	}
	if tower.Kills != 0 || tower.TotalDamage != 0 {
		t.Error("area damage must not be attributed to a tower")
	}
}

func TestCooldownDecay(t *testing.T) {
	w := newTestWorld(t)
	sas := NewSpecialAttackSystem(w.ecs, w.dispatcher, NewStatusEffectSystem(w.ecs, w.queue))
	sa := newSpecial(w, "peanuts")
	sa.CurrentCooldown = defs.Ms(1000)

	sas.Update(0.4)
	if sa.CurrentCooldown != 600*time.Millisecond {
		t.Errorf("cooldown = %v, want 600ms", sa.CurrentCooldown)
	}
	sas.Update(5)
	if sa.CurrentCooldown != 0 {
		t.Errorf("cooldown must clamp at zero, got %v", sa.CurrentCooldown)
	}
	if !sa.Ready() {
		t.Error("attack should be ready")
	}
}
