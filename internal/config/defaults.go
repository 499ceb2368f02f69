package config

import (
	_ "embed"
)

//go:embed defaults/iedie.yaml
var defaultYAML []byte

// DefaultGameConfig returns the built-in configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Canvas: CanvasConfig{
			Width:  1024,
			Height: 860,
		},
		Entity: EntityConfig{
			Size: 100,
		},
		Timing: TimingConfig{
			TickMS:          35,
			SpawnMS:         700,
			GameOverDelayMS: 3000,
		},
		Profiles: Profiles{
			Easy:   Profile{Lives: 15, MinSpeed: 2, MaxSpeed: 15, EnemyChance: 60},
			Medium: Profile{Lives: 10, MinSpeed: 4, MaxSpeed: 20, EnemyChance: 70},
			Hard:   Profile{Lives: 5, MinSpeed: 10, MaxSpeed: 30, EnemyChance: 80},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
