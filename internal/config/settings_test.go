package config

import (
	"errors"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.StartingGold != StartingGold || s.StartingLives != StartingLives {
		t.Errorf("economy = %d/%d", s.StartingGold, s.StartingLives)
	}
	if s.World != "tavern" {
		t.Errorf("World = %q, want tavern", s.World)
	}
	if s.PathClearance != DefaultPathClearance || s.TowerSpacing != DefaultTowerSpacing {
		t.Errorf("placement = %v/%v", s.PathClearance, s.TowerSpacing)
	}
}

func TestLoadSettings(t *testing.T) {
	s, err := LoadSettings("testdata/settings.yaml")
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.StartingGold != 500 || s.StartingLives != 5 || s.World != "forest" || s.Seed != 42 {
		t.Errorf("unexpected settings: %+v", s)
	}
	if s.TowerSpacing != -1 {
		t.Errorf("TowerSpacing = %v, negative must survive defaults", s.TowerSpacing)
	}
	if s.PathClearance != DefaultPathClearance {
		t.Errorf("PathClearance = %v, want default", s.PathClearance)
	}
}

func TestParseSettings(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantWorld string
		wantErr   error
	}{
		{"empty file", "", "tavern", nil},
		{"map replaces world", "mapPath: maps/pub.tmx\n", "", nil},
		{"negative gold", "startingGold: -5\n", "", ErrInvalidSettings},
		{"negative lives", "startingLives: -1\n", "", ErrInvalidSettings},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseSettings([]byte(tt.yaml))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseSettings() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSettings() error = %v", err)
			}
			if s.World != tt.wantWorld {
				t.Errorf("World = %q, want %q", s.World, tt.wantWorld)
			}
		})
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	if _, err := LoadSettings("testdata/missing.yaml"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
