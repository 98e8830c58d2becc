package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default invaders configuration.
// Mirrors defaults/invaders.yaml; used when the embedded file fails to parse.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:        50,
			Height:       30,
			Speed:        5,
			BottomOffset: 60,
		},
		Bullet: BulletConfig{
			Width:  5,
			Height: 15,
			Speed:  7,
		},
		Enemy: EnemyConfig{
			Width:         40,
			Height:        30,
			Padding:       20,
			OffsetX:       60,
			OffsetY:       50,
			RowsBase:      2,
			ColsBase:      7,
			SpeedBase:     1,
			SpeedPerStage: 1,
			FireChance:    0.02,
		},
		Boss: BossConfig{
			Enabled:    true,
			Width:      150,
			Height:     100,
			Health:     20,
			Speed:      1.5,
			Drop:       20,
			FireChance: 0.05,
		},
		Gameplay: GameplayConfig{
			Lives:           3,
			MaxStage:        3,
			StageClearDelay: 2.0,
			EnemyPoints:     10,
			BossPoints:      100,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "invaders", "invaders_classic":
		return defaultInvadersYAML
	default:
		return nil
	}
}
