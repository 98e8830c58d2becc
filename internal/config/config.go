// Package config provides YAML-based game configuration loading and
// mode presets for the invaders game.
package config

import (
	"errors"
	"fmt"
)

// InvadersConfig contains all configuration for the invaders game.
// Distances are in canvas units, speeds in canvas units per tick.
type InvadersConfig struct {
	Canvas   CanvasConfig   `yaml:"canvas"`
	Player   PlayerConfig   `yaml:"player"`
	Bullet   BulletConfig   `yaml:"bullet"`
	Enemy    EnemyConfig    `yaml:"enemy"`
	Boss     BossConfig     `yaml:"boss"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// CanvasConfig defines the logical playfield the simulation runs on.
// It is independent of the terminal size.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from ship top to canvas bottom
}

// BulletConfig defines bullets for both sides.
type BulletConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// EnemyConfig defines standard enemies and the grid formation.
// A stage s grid has RowsBase+s rows and ColsBase+s columns and moves at
// SpeedBase+s*SpeedPerStage.
type EnemyConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Padding       float64 `yaml:"padding"`
	OffsetX       float64 `yaml:"offset_x"`
	OffsetY       float64 `yaml:"offset_y"`
	RowsBase      int     `yaml:"rows_base"`
	ColsBase      int     `yaml:"cols_base"`
	SpeedBase     float64 `yaml:"speed_base"`
	SpeedPerStage float64 `yaml:"speed_per_stage"`
	FireChance    float64 `yaml:"fire_chance"` // Per tick, once a shooter is picked
}

// BossConfig defines the final-stage boss.
type BossConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Health     int     `yaml:"health"`
	Speed      float64 `yaml:"speed"`
	Drop       float64 `yaml:"drop"` // Descent on a wall bounce
	FireChance float64 `yaml:"fire_chance"`
}

// GameplayConfig defines scoring, lives and stage progression.
type GameplayConfig struct {
	Lives           int     `yaml:"lives"`
	MaxStage        int     `yaml:"max_stage"`
	StageClearDelay float64 `yaml:"stage_clear_delay"` // Seconds
	EnemyPoints     int     `yaml:"enemy_points"`
	BossPoints      int     `yaml:"boss_points"`
}

// Mode selects a preset on top of the loaded configuration.
type Mode string

const (
	ModeCampaign Mode = "campaign" // Grid stages followed by a boss stage
	ModeClassic  Mode = "classic"  // One grid, no boss
)

// ApplyModePreset modifies the config for the given mode.
func ApplyModePreset(cfg *InvadersConfig, mode Mode) {
	switch mode {
	case ModeClassic:
		cfg.Gameplay.MaxStage = 1
		cfg.Boss.Enabled = false
		cfg.Enemy.RowsBase = 3
		cfg.Enemy.ColsBase = 7
		cfg.Enemy.SpeedBase = 1
		cfg.Enemy.SpeedPerStage = 1
	}
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the configuration for values the simulation cannot run with.
func (c InvadersConfig) Validate() error {
	positive := []struct {
		name string
		val  float64
	}{
		{"canvas.width", c.Canvas.Width},
		{"canvas.height", c.Canvas.Height},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.speed", c.Player.Speed},
		{"bullet.width", c.Bullet.Width},
		{"bullet.height", c.Bullet.Height},
		{"bullet.speed", c.Bullet.Speed},
		{"enemy.width", c.Enemy.Width},
		{"enemy.height", c.Enemy.Height},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.val)
		}
	}

	if c.Player.Width > c.Canvas.Width {
		return fmt.Errorf("%w: player wider than canvas", ErrInvalidConfig)
	}
	if c.Enemy.RowsBase < 0 || c.Enemy.ColsBase < 0 {
		return fmt.Errorf("%w: enemy.rows_base and enemy.cols_base cannot be negative", ErrInvalidConfig)
	}
	if c.Gameplay.Lives < 1 {
		return fmt.Errorf("%w: gameplay.lives must be at least 1", ErrInvalidConfig)
	}
	if c.Gameplay.MaxStage < 1 {
		return fmt.Errorf("%w: gameplay.max_stage must be at least 1", ErrInvalidConfig)
	}
	if c.Gameplay.StageClearDelay < 0 {
		return fmt.Errorf("%w: gameplay.stage_clear_delay cannot be negative", ErrInvalidConfig)
	}
	if c.Enemy.FireChance < 0 || c.Enemy.FireChance > 1 {
		return fmt.Errorf("%w: enemy.fire_chance must be within [0, 1]", ErrInvalidConfig)
	}

	if c.Boss.Enabled {
		if c.Boss.Width <= 0 || c.Boss.Height <= 0 {
			return fmt.Errorf("%w: boss dimensions must be positive", ErrInvalidConfig)
		}
		if c.Boss.Health < 1 {
			return fmt.Errorf("%w: boss.health must be at least 1", ErrInvalidConfig)
		}
		if c.Boss.FireChance < 0 || c.Boss.FireChance > 1 {
			return fmt.Errorf("%w: boss.fire_chance must be within [0, 1]", ErrInvalidConfig)
		}
	}

	return nil
}
