package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Move is the horizontal movement intent for one tick.
type Move int

const (
	MoveNone Move = iota
	MoveLeft
	MoveRight
)

// Player is the player's ship.
type Player struct {
	Box      core.RectF
	Speed    float64
	DX       float64 // -Speed, 0 or +Speed
	CanShoot bool    // Fire gate, re-armed when the fire request is released
}

// NewPlayer creates a ship centred at the bottom of the canvas.
func NewPlayer(cfg config.InvadersConfig) Player {
	return Player{
		Box: core.NewRectF(
			cfg.Canvas.Width/2-cfg.Player.Width/2,
			cfg.Canvas.Height-cfg.Player.BottomOffset,
			cfg.Player.Width,
			cfg.Player.Height,
		),
		Speed:    cfg.Player.Speed,
		CanShoot: true,
	}
}

// Steer sets the velocity from a movement intent.
func (p *Player) Steer(m Move) {
	switch m {
	case MoveLeft:
		p.DX = -p.Speed
	case MoveRight:
		p.DX = p.Speed
	default:
		p.DX = 0
	}
}

// Move applies the velocity and clamps the ship to [0, canvasWidth-width].
func (p *Player) Move(canvasWidth float64) {
	p.Box.X = core.ClampF(p.Box.X+p.DX, 0, canvasWidth-p.Box.W)
}

// Owner tells which side fired a bullet.
type Owner int

const (
	OwnerPlayer Owner = iota // Travels up
	OwnerEnemy               // Travels down
)

// Bullet is a projectile. It has no identity beyond its slot in a slice.
type Bullet struct {
	Box   core.RectF
	Owner Owner
}

// NewPlayerBullet spawns a bullet centred on the ship's top edge.
func NewPlayerBullet(p Player, bc config.BulletConfig) Bullet {
	return Bullet{
		Box:   core.NewRectF(p.Box.CenterX()-bc.Width/2, p.Box.Y, bc.Width, bc.Height),
		Owner: OwnerPlayer,
	}
}

// NewEnemyBullet spawns a bullet centred just below the shooter.
func NewEnemyBullet(shooter core.RectF, bc config.BulletConfig) Bullet {
	return Bullet{
		Box:   core.NewRectF(shooter.CenterX()-bc.Width/2, shooter.Bottom(), bc.Width, bc.Height),
		Owner: OwnerEnemy,
	}
}

// Advance moves the bullet along its travel axis.
func (b *Bullet) Advance(speed float64) {
	if b.Owner == OwnerPlayer {
		b.Box.Y -= speed
	} else {
		b.Box.Y += speed
	}
}

// Expired reports whether the bullet has fully left the canvas on its travel axis.
func (b Bullet) Expired(canvasHeight float64) bool {
	if b.Owner == OwnerPlayer {
		return b.Box.Bottom() < 0
	}
	return b.Box.Y > canvasHeight
}

// Kind is the enemy variant: Standard or *Boss.
// The interface is sealed so a standard enemy can never carry health.
type Kind interface {
	enemyKind()
}

// Standard is a grid enemy. Its speed and fire chance belong to the formation.
type Standard struct{}

func (Standard) enemyKind() {}

// Boss is the final-stage enemy.
type Boss struct {
	Health     int
	MaxHealth  int
	Speed      float64
	Drop       float64
	FireChance float64
}

func (*Boss) enemyKind() {}

// Damage removes one point of health and reports whether the boss is now dead.
// Health never goes below zero.
func (b *Boss) Damage() bool {
	if b.Health > 0 {
		b.Health--
	}
	return b.Health == 0
}

// HealthPercent returns remaining health in [0, 100].
func (b *Boss) HealthPercent() int {
	if b.MaxHealth <= 0 {
		return 0
	}
	return b.Health * 100 / b.MaxHealth
}

// Enemy is one member of a formation. Dead enemies stay in the slice but are
// never drawn, collided or counted.
type Enemy struct {
	Box   core.RectF
	Alive bool
	Kind  Kind
}

// NewStandardEnemy creates a live grid enemy at (x, y).
func NewStandardEnemy(x, y float64, ec config.EnemyConfig) Enemy {
	return Enemy{
		Box:   core.NewRectF(x, y, ec.Width, ec.Height),
		Alive: true,
		Kind:  Standard{},
	}
}

// NewBoss creates a live boss at (x, y) with full health.
func NewBoss(x, y float64, bc config.BossConfig) Enemy {
	return Enemy{
		Box:   core.NewRectF(x, y, bc.Width, bc.Height),
		Alive: true,
		Kind: &Boss{
			Health:     bc.Health,
			MaxHealth:  bc.Health,
			Speed:      bc.Speed,
			Drop:       bc.Drop,
			FireChance: bc.FireChance,
		},
	}
}

// Boss returns the boss attributes if this enemy is the boss.
func (e *Enemy) Boss() (*Boss, bool) {
	b, ok := e.Kind.(*Boss)
	return b, ok
}

// IsBoss reports whether this enemy is the boss.
func (e *Enemy) IsBoss() bool {
	_, ok := e.Kind.(*Boss)
	return ok
}
