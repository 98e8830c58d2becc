package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Formation is the set of enemies for one stage, moving as a single block.
type Formation struct {
	Enemies    []Enemy
	Direction  int     // +1 right, -1 left
	Speed      float64 // Horizontal speed of standard enemies
	FireChance float64 // Per-tick fire chance of a chosen standard enemy
	Stage      int
}

// StageSize returns the grid dimensions and standard speed for a stage.
func StageSize(stage int, ec config.EnemyConfig) (rows, cols int, speed float64) {
	rows = ec.RowsBase + stage
	cols = ec.ColsBase + stage
	speed = ec.SpeedBase + float64(stage)*ec.SpeedPerStage
	return rows, cols, speed
}

// SpawnStage builds the formation for a stage.
// Stage MaxStage spawns a single boss when the boss is enabled; any other
// stage spawns a rows x cols grid laid out column by column.
// Panics when stage is outside [1, MaxStage].
func SpawnStage(stage int, cfg config.InvadersConfig) Formation {
	if stage < 1 || stage > cfg.Gameplay.MaxStage {
		panic(fmt.Sprintf("invaders: stage overflow: %d not in [1, %d]", stage, cfg.Gameplay.MaxStage))
	}

	rows, cols, speed := StageSize(stage, cfg.Enemy)
	f := Formation{
		Direction:  1,
		Speed:      speed,
		FireChance: cfg.Enemy.FireChance,
		Stage:      stage,
	}

	if cfg.Boss.Enabled && stage == cfg.Gameplay.MaxStage {
		x := (cfg.Canvas.Width - cfg.Boss.Width) / 2
		f.Enemies = []Enemy{NewBoss(x, cfg.Enemy.OffsetY, cfg.Boss)}
		return f
	}

	ec := cfg.Enemy
	f.Enemies = make([]Enemy, 0, rows*cols)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			x := float64(c)*(ec.Width+ec.Padding) + ec.OffsetX
			y := float64(r)*(ec.Height+ec.Padding) + ec.OffsetY
			f.Enemies = append(f.Enemies, NewStandardEnemy(x, y, ec))
		}
	}
	return f
}

// speedOf returns the horizontal speed of one enemy.
func (f *Formation) speedOf(e *Enemy) float64 {
	if b, ok := e.Boss(); ok {
		return b.Speed
	}
	return f.Speed
}

// dropOf returns how far an enemy descends when the formation bounces.
func dropOf(e *Enemy) float64 {
	if b, ok := e.Boss(); ok {
		return b.Drop
	}
	return e.Box.H
}

// Advance moves the formation one tick. If any live enemy would cross either
// canvas edge, nobody moves horizontally: every live enemy descends and the
// direction flips instead. Returns true when a bounce happened.
func (f *Formation) Advance(canvasWidth float64) bool {
	dir := float64(f.Direction)

	bounce := false
	for i := range f.Enemies {
		e := &f.Enemies[i]
		if !e.Alive {
			continue
		}
		nx := e.Box.X + dir*f.speedOf(e)
		if nx < 0 || nx+e.Box.W > canvasWidth {
			bounce = true
			break
		}
	}

	for i := range f.Enemies {
		e := &f.Enemies[i]
		if !e.Alive {
			continue
		}
		if bounce {
			e.Box.Y += dropOf(e)
		} else {
			e.Box.X += dir * f.speedOf(e)
		}
	}

	if bounce {
		f.Direction = -f.Direction
	}
	return bounce
}

// MaybeFire picks one live enemy at random and lets it fire with its chance.
// Returns false when nobody is alive or the roll fails.
func (f *Formation) MaybeFire(rng *core.RNG, bc config.BulletConfig) (Bullet, bool) {
	alive := f.AliveCount()
	if alive == 0 {
		return Bullet{}, false
	}

	pick := rng.Intn(alive)
	for i := range f.Enemies {
		e := &f.Enemies[i]
		if !e.Alive {
			continue
		}
		if pick > 0 {
			pick--
			continue
		}

		chance := f.FireChance
		if b, ok := e.Boss(); ok {
			chance = b.FireChance
		}
		if !rng.Chance(chance) {
			return Bullet{}, false
		}
		return NewEnemyBullet(e.Box, bc), true
	}
	return Bullet{}, false
}

// AliveCount returns the number of live enemies.
func (f *Formation) AliveCount() int {
	n := 0
	for i := range f.Enemies {
		if f.Enemies[i].Alive {
			n++
		}
	}
	return n
}

// Cleared reports whether every enemy is dead.
func (f *Formation) Cleared() bool {
	return f.AliveCount() == 0
}

// Boss returns the boss if this formation has one, alive or not.
func (f *Formation) Boss() (*Enemy, *Boss, bool) {
	for i := range f.Enemies {
		if b, ok := f.Enemies[i].Boss(); ok {
			return &f.Enemies[i], b, true
		}
	}
	return nil, nil, false
}
