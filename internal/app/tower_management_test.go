package app

import (
	"errors"
	"testing"

	"go-pub-defense/internal/component"
	"go-pub-defense/internal/config"
	"go-pub-defense/internal/defs"
	"go-pub-defense/internal/event"
)

func TestPlaceTower(t *testing.T) {
	g, rec := newTestGame(t)
	g.SetPlacingTowerType(defs.TowerDarts)

	if !g.PlaceTower(clearSpot, defs.TowerDarts) {
		t.Fatal("PlaceTower() = false")
	}
	s := g.Snapshot()
	if s.Gold != 150 || len(s.Towers) != 1 {
		t.Fatalf("gold=%d towers=%d, want 150 and 1", s.Gold, len(s.Towers))
	}
	tw := s.Towers[0]
	if tw.Level != 1 || tw.Damage != 10 || tw.Range != 120 || tw.AttackSpeed != 2 || tw.Position != clearSpot {
		t.Errorf("unexpected tower %+v", tw)
	}
	if s.PlacingTowerType != "" {
		t.Error("placement mode not cleared")
	}
	if rec.Count(event.TowerPlaced) != 1 {
		t.Error("TowerPlaced not dispatched")
	}
}

func TestPlaceTowerRejections(t *testing.T) {
	tests := []struct {
		name    string
		gold    int
		pos     component.Position
		tower   defs.TowerType
		wantErr error
	}{
		{"insufficient funds", 119, clearSpot, defs.TowerKeg, ErrInsufficientFunds},
		{"unknown type", 1000, clearSpot, "catapult", ErrUnknownTowerType},
		{"on the path", 1000, component.Position{X: 150, Y: 5}, defs.TowerDarts, ErrInvalidPlacement},
		{"next to a tower", 1000, component.Position{X: 400, Y: 410}, defs.TowerDarts, ErrInvalidPlacement},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t)
			g.ECS.GameState.Gold = 1000
			if _, err := g.TryPlaceTower(component.Position{X: 400, Y: 400}, defs.TowerDarts); err != nil {
				t.Fatalf("setup placement failed: %v", err)
			}
			g.ECS.GameState.Gold = tt.gold
			before := g.Snapshot()

			_, err := g.TryPlaceTower(tt.pos, tt.tower)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			after := g.Snapshot()
			if after.Gold != before.Gold || len(after.Towers) != len(before.Towers) {
				t.Errorf("rejected placement mutated state: gold %d->%d towers %d->%d",
					before.Gold, after.Gold, len(before.Towers), len(after.Towers))
			}
		})
	}
}

func TestPlacementChecksCanBeDisabled(t *testing.T) {
	g, _ := newTestGame(t)
	g.Settings.PathClearance = -1
	g.Settings.TowerSpacing = -1
	if !g.PlaceTower(component.Position{X: 150, Y: 0}, defs.TowerDarts) {
		t.Error("placement on the path should pass with the check disabled")
	}
	if !g.PlaceTower(component.Position{X: 150, Y: 0}, defs.TowerDarts) {
		t.Error("stacked placement should pass with spacing disabled")
	}
}

func TestUpgradeTower(t *testing.T) {
	g, rec := newTestGame(t)
	g.ECS.GameState.Gold = 1000
	id, err := g.TryPlaceTower(clearSpot, defs.TowerDarts)
	if err != nil {
		t.Fatal(err)
	}

	if cost, _ := g.UpgradeCost(id); cost != 40 {
		t.Errorf("level 1 upgrade cost = %d, want 40", cost)
	}
	g.UpgradeTower(id)
	if cost, _ := g.UpgradeCost(id); cost != 80 {
		t.Errorf("level 2 upgrade cost = %d, want 80", cost)
	}
	g.UpgradeTower(id)

	tw, _ := g.Snapshot().Tower(id)
	if tw.Level != 3 {
		t.Fatalf("level = %d, want 3", tw.Level)
	}
	// 10 -> 15 -> 22; 120 -> 132 -> 145
	if tw.Damage != 22 || tw.Range != 145 {
		t.Errorf("damage=%v range=%v, want 22 and 145", tw.Damage, tw.Range)
	}
	wantSpeed := 2.0
	wantSpeed *= config.UpgradeAttackSpeedMultiplier
	wantSpeed *= config.UpgradeAttackSpeedMultiplier
	if tw.AttackSpeed != wantSpeed {
		t.Errorf("attackSpeed = %v, want %v", tw.AttackSpeed, wantSpeed)
	}
	if gold := g.Snapshot().Gold; gold != 1000-50-40-80 {
		t.Errorf("gold = %d, want %d", gold, 1000-50-40-80)
	}
	if rec.Count(event.TowerUpgraded) != 2 {
		t.Errorf("TowerUpgraded dispatched %d times", rec.Count(event.TowerUpgraded))
	}
}

func TestUpgradeRejections(t *testing.T) {
	g, _ := newTestGame(t)
	if err := g.TryUpgradeTower(999); !errors.Is(err, ErrTowerNotFound) {
		t.Errorf("missing tower: err = %v", err)
	}

	id, _ := g.TryPlaceTower(clearSpot, defs.TowerKeg) // 80 gold left, upgrade costs 90
	before, _ := g.Snapshot().Tower(id)
	if err := g.TryUpgradeTower(id); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("poor upgrade: err = %v", err)
	}
	after, _ := g.Snapshot().Tower(id)
	if after != before || g.Snapshot().Gold != 80 {
		t.Error("rejected upgrade mutated state")
	}
}

func TestSellTower(t *testing.T) {
	tests := []struct {
		name     string
		upgrades int
		refund   int
	}{
		{"level 1", 0, 37},  // floor(0.75 * 50)
		{"level 2", 1, 67},  // floor(0.75 * 90)
		{"level 3", 2, 127}, // floor(0.75 * 170)
		{"level 4", 3, 217}, // floor(0.75 * 290)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, rec := newTestGame(t)
			g.ECS.GameState.Gold = 10000
			id, _ := g.TryPlaceTower(clearSpot, defs.TowerDarts)
			for i := 0; i < tt.upgrades; i++ {
				if err := g.TryUpgradeTower(id); err != nil {
					t.Fatal(err)
				}
			}
			g.SelectTower(id)
			if v, _ := g.SellValue(id); v != tt.refund {
				t.Errorf("SellValue() = %d, want %d", v, tt.refund)
			}
			gold := g.Snapshot().Gold

			g.SellTower(id)
			s := g.Snapshot()
			if s.Gold != gold+tt.refund {
				t.Errorf("gold = %d, want %d", s.Gold, gold+tt.refund)
			}
			if _, ok := s.Tower(id); ok {
				t.Error("sold tower still present")
			}
			if s.SelectedTower != 0 {
				t.Error("selection not cleared")
			}
			if rec.Count(event.TowerSold) != 1 {
				t.Error("TowerSold not dispatched")
			}
			if err := g.TrySellTower(id); !errors.Is(err, ErrTowerNotFound) {
				t.Errorf("second sell: err = %v", err)
			}
		})
	}
}

func TestSelectionCommands(t *testing.T) {
	g, _ := newTestGame(t)
	id, _ := g.TryPlaceTower(clearSpot, defs.TowerDarts)

	g.SelectTower(id)
	if g.Snapshot().SelectedTower != id {
		t.Error("tower not selected")
	}
	g.SelectTower(12345)
	if g.Snapshot().SelectedTower != id {
		t.Error("unknown id changed the selection")
	}
	g.SelectTower(0)
	if g.Snapshot().SelectedTower != 0 {
		t.Error("selection not cleared")
	}

	g.SetPlacingTowerType(defs.TowerBard)
	g.SetPlacingTowerType("catapult")
	if g.Snapshot().PlacingTowerType != defs.TowerBard {
		t.Error("unknown tower type changed placement mode")
	}
	g.SetPlacingTowerType("")
	if g.Snapshot().PlacingTowerType != "" {
		t.Error("placement mode not cleared")
	}
}
