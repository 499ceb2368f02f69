package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(default) failed: %v", err)
	}
	if cfg != DefaultGameConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultGameConfig())
	}
}

func TestProfilesTable(t *testing.T) {
	profiles := DefaultGameConfig().Profiles

	tests := []struct {
		level    Level
		expected Profile
	}{
		{LevelEasy, Profile{Lives: 15, MinSpeed: 2, MaxSpeed: 15, EnemyChance: 60}},
		{LevelMedium, Profile{Lives: 10, MinSpeed: 4, MaxSpeed: 20, EnemyChance: 70}},
		{LevelHard, Profile{Lives: 5, MinSpeed: 10, MaxSpeed: 30, EnemyChance: 80}},
	}

	for _, tc := range tests {
		t.Run(tc.level.String(), func(t *testing.T) {
			if got := profiles.For(tc.level); got != tc.expected {
				t.Errorf("For(%s) = %+v, expected %+v", tc.level, got, tc.expected)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected Level
		wantErr  bool
	}{
		{"easy", LevelEasy, false},
		{"Medium", LevelMedium, false},
		{"normal", LevelMedium, false},
		{" hard ", LevelHard, false},
		{"3", LevelHard, false},
		{"insane", LevelEasy, true},
	}

	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("timing:\n  spawn_ms: 350\nprofiles:\n  hard:\n    lives: 3\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Timing.SpawnMS != 350 {
		t.Errorf("SpawnMS = %d, expected 350", cfg.Timing.SpawnMS)
	}
	if cfg.Timing.TickMS != 35 {
		t.Errorf("TickMS should keep default 35, got %d", cfg.Timing.TickMS)
	}
	if cfg.Profiles.Hard.Lives != 3 || cfg.Profiles.Hard.MaxSpeed != 30 {
		t.Errorf("Hard profile = %+v", cfg.Profiles.Hard)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero canvas", "canvas:\n  width: 0\n"},
		{"entity wider than canvas", "entity:\n  size: 5000\n"},
		{"min above max", "profiles:\n  easy:\n    min_speed: 20\n    max_speed: 10\n"},
		{"chance above 100", "profiles:\n  medium:\n    enemy_chance: 101\n"},
		{"no lives", "profiles:\n  hard:\n    lives: 0\n"},
		{"zero tick", "timing:\n  tick_ms: 0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Error("Parse() should fail")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("canvas:\n  width: 800\n  height: 600\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Canvas.Width != 800 || cfg.Canvas.Height != 600 {
		t.Errorf("Canvas = %+v, expected 800x600", cfg.Canvas)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing explicit path should fail")
	}
}

func TestTimingDurations(t *testing.T) {
	timing := DefaultGameConfig().Timing
	if timing.Tick().Milliseconds() != 35 {
		t.Errorf("Tick() = %v", timing.Tick())
	}
	if timing.GameOverDelay().Seconds() != 3 {
		t.Errorf("GameOverDelay() = %v", timing.GameOverDelay())
	}
}
