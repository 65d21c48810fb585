package app

import (
	"testing"
	"time"

	"go-pub-defense/internal/defs"
)

func TestSpotsAlongPathKeepClearance(t *testing.T) {
	g, _ := newTestGame(t)
	spots := spotsAlongPath(g)
	if len(spots) == 0 {
		t.Fatal("no spots generated")
	}
	for _, p := range spots {
		if d := g.Path.DistanceTo(p); d < g.Settings.PathClearance {
			t.Errorf("spot %v is %.1f px from the path", p, d)
		}
		if p.X < 0 || p.Y < 0 {
			t.Errorf("spot %v is off screen", p)
		}
	}
}

func TestAutopilotPlacesTowersAndStartsWave(t *testing.T) {
	g, _ := newTestGame(t)
	pilot := NewAutopilot(g, defs.TowerDarts)

	if !pilot.Step() {
		t.Fatal("Step() = false on a fresh run")
	}
	s := g.Snapshot()
	if !s.IsPlaying {
		t.Error("autopilot did not start the wave")
	}
	// 200 золота, дротики по 50
	if len(s.Towers) != 4 || s.Gold != 0 {
		t.Errorf("towers = %d gold = %d, want 4 and 0", len(s.Towers), s.Gold)
	}
}

func TestRunHeadlessClearsFirstWave(t *testing.T) {
	g, _ := newTestGame(t)
	s := RunHeadless(g, NewAutopilot(g, defs.TowerDarts), 0.05, 60*time.Second)

	if s.Wave < 2 {
		t.Errorf("wave = %d, want at least 2", s.Wave)
	}
	if s.Score == 0 {
		t.Error("towers never killed anything")
	}
}

func TestRunHeadlessStopsAfterGameOver(t *testing.T) {
	g, _ := newTestGame(t)
	g.ECS.GameState.Lives = 1
	s := RunHeadless(g, NewAutopilot(g, "missing"), 0.05, 120*time.Second)

	if !s.GameOver {
		t.Fatalf("expected game over, got %+v", s)
	}
	if s.GameTime >= 120*time.Second {
		t.Errorf("run did not stop at game over: game time %v", s.GameTime)
	}
}
