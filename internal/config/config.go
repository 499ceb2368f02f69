// Package config provides YAML-based game configuration loading and the
// difficulty profile table.
package config

import (
	"errors"
	"fmt"
	"time"
)

// GameConfig contains all tunables of the game.
type GameConfig struct {
	Canvas   CanvasConfig `yaml:"canvas"`
	Entity   EntityConfig `yaml:"entity"`
	Timing   TimingConfig `yaml:"timing"`
	Profiles Profiles     `yaml:"profiles"`
}

// CanvasConfig is the logical drawing area. Spawn bounds and the bottom
// boundary are measured in these units.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// EntityConfig defines the falling shapes.
type EntityConfig struct {
	Size int `yaml:"size"` // Width and height of every shape
}

// TimingConfig defines the simulation clock, in milliseconds.
type TimingConfig struct {
	TickMS          int `yaml:"tick_ms"`
	SpawnMS         int `yaml:"spawn_ms"`
	GameOverDelayMS int `yaml:"game_over_delay_ms"`
}

// Tick returns the simulation tick interval.
func (t TimingConfig) Tick() time.Duration {
	return time.Duration(t.TickMS) * time.Millisecond
}

// Spawn returns the minimum time between two spawns.
func (t TimingConfig) Spawn() time.Duration {
	return time.Duration(t.SpawnMS) * time.Millisecond
}

// GameOverDelay returns how long the game over banner stays up.
func (t TimingConfig) GameOverDelay() time.Duration {
	return time.Duration(t.GameOverDelayMS) * time.Millisecond
}

// Profile is one difficulty preset.
type Profile struct {
	Lives       int `yaml:"lives"`
	MinSpeed    int `yaml:"min_speed"`
	MaxSpeed    int `yaml:"max_speed"`
	EnemyChance int `yaml:"enemy_chance"` // Percent of spawns that are hostile
}

// Profiles holds the three presets.
type Profiles struct {
	Easy   Profile `yaml:"easy"`
	Medium Profile `yaml:"medium"`
	Hard   Profile `yaml:"hard"`
}

// For returns the profile of a level. Unknown levels get the Easy profile.
func (p Profiles) For(level Level) Profile {
	switch level {
	case LevelMedium:
		return p.Medium
	case LevelHard:
		return p.Hard
	default:
		return p.Easy
	}
}

// Validate checks a profile for values the simulation cannot work with.
func (p Profile) Validate() error {
	if p.Lives <= 0 {
		return fmt.Errorf("lives must be positive, got %d", p.Lives)
	}
	if p.MinSpeed <= 0 {
		return fmt.Errorf("min_speed must be positive, got %d", p.MinSpeed)
	}
	if p.MinSpeed > p.MaxSpeed {
		return fmt.Errorf("min_speed %d exceeds max_speed %d", p.MinSpeed, p.MaxSpeed)
	}
	if p.EnemyChance < 0 || p.EnemyChance > 100 {
		return fmt.Errorf("enemy_chance must be within 0..100, got %d", p.EnemyChance)
	}
	return nil
}

// Validate checks the whole configuration.
func (c GameConfig) Validate() error {
	var errs []error
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height))
	}
	if c.Entity.Size <= 0 || c.Entity.Size > c.Canvas.Width {
		errs = append(errs, fmt.Errorf("entity size %d does not fit canvas width %d", c.Entity.Size, c.Canvas.Width))
	}
	if c.Timing.TickMS <= 0 || c.Timing.SpawnMS <= 0 || c.Timing.GameOverDelayMS < 0 {
		errs = append(errs, errors.New("timing values must be positive"))
	}
	for _, level := range Levels() {
		if err := c.Profiles.For(level).Validate(); err != nil {
			errs = append(errs, fmt.Errorf("profile %s: %w", level, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
