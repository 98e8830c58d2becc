package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
)

// Fire runs the player's fire gate. A bullet is produced only when fire is
// requested and the gate is armed; the gate then stays closed until a tick
// without a fire request.
func Fire(p *Player, requested bool, bc config.BulletConfig) (Bullet, bool) {
	if !requested {
		p.CanShoot = true
		return Bullet{}, false
	}
	if !p.CanShoot {
		return Bullet{}, false
	}
	p.CanShoot = false
	return NewPlayerBullet(*p, bc), true
}

// AdvanceBullets moves every bullet one tick and returns the ones still on
// the canvas. The input slices are not modified.
func AdvanceBullets(playerBullets, enemyBullets []Bullet, speed, canvasHeight float64) (players, enemies []Bullet) {
	players = make([]Bullet, 0, len(playerBullets))
	for _, b := range playerBullets {
		b.Advance(speed)
		if !b.Expired(canvasHeight) {
			players = append(players, b)
		}
	}

	enemies = make([]Bullet, 0, len(enemyBullets))
	for _, b := range enemyBullets {
		b.Advance(speed)
		if !b.Expired(canvasHeight) {
			enemies = append(enemies, b)
		}
	}
	return players, enemies
}

// Rules holds the scoring and boundary values collision resolution needs.
type Rules struct {
	CanvasHeight float64
	EnemyPoints  int
	BossPoints   int
}

// RulesFromConfig extracts collision rules from a game config.
func RulesFromConfig(cfg config.InvadersConfig) Rules {
	return Rules{
		CanvasHeight: cfg.Canvas.Height,
		EnemyPoints:  cfg.Gameplay.EnemyPoints,
		BossPoints:   cfg.Gameplay.BossPoints,
	}
}

// CollisionOutcome is the result of one collision pass.
type CollisionOutcome struct {
	PlayerBullets []Bullet // Survivors
	EnemyBullets  []Bullet // Survivors
	ScoreGained   int
	Kills         int
	BossHits      int
	LivesLost     int
	Lives         int // Remaining, never negative
	Loss          LossReason
	Events        []Event
}

// ResolveCollisions applies every hit for one tick and mutates the formation.
//
// Each player bullet is tested against live enemies in slice order and is
// consumed by the first one it overlaps. An enemy killed by an earlier bullet
// no longer collides, but a live one may absorb several bullets in the same
// tick. Enemy bullets that overlap the ship cost one life each.
func ResolveCollisions(f *Formation, playerBullets, enemyBullets []Bullet, player Player, lives int, rules Rules) CollisionOutcome {
	out := CollisionOutcome{
		PlayerBullets: make([]Bullet, 0, len(playerBullets)),
		EnemyBullets:  make([]Bullet, 0, len(enemyBullets)),
	}

	for _, b := range playerBullets {
		if !hitEnemy(f, b, rules, &out) {
			out.PlayerBullets = append(out.PlayerBullets, b)
		}
	}

	for _, b := range enemyBullets {
		if !b.Box.Intersects(player.Box) {
			out.EnemyBullets = append(out.EnemyBullets, b)
			continue
		}
		out.LivesLost++
		out.Events = append(out.Events, EventPlayerHit)
	}

	out.Lives = lives - out.LivesLost
	if out.Lives < 0 {
		out.Lives = 0
	}
	if out.Lives == 0 {
		out.Loss = LossLivesExhausted
		return out
	}

	for i := range f.Enemies {
		e := &f.Enemies[i]
		if !e.Alive {
			continue
		}
		if e.Box.Intersects(player.Box) {
			out.Loss = LossEnemyContact
			return out
		}
		if !e.IsBoss() && e.Box.Y > rules.CanvasHeight {
			out.Loss = LossEnemyLanded
			return out
		}
	}
	return out
}

// hitEnemy applies bullet b to the first live enemy it overlaps.
// Returns false when the bullet hit nothing.
func hitEnemy(f *Formation, b Bullet, rules Rules, out *CollisionOutcome) bool {
	for i := range f.Enemies {
		e := &f.Enemies[i]
		if !e.Alive || !b.Box.Intersects(e.Box) {
			continue
		}

		boss, ok := e.Boss()
		if !ok {
			e.Alive = false
			out.Kills++
			out.ScoreGained += rules.EnemyPoints
			out.Events = append(out.Events, EventEnemyKilled)
			return true
		}

		out.BossHits++
		out.Events = append(out.Events, EventBossHit)
		if boss.Damage() {
			e.Alive = false
			out.Kills++
			out.ScoreGained += rules.BossPoints
			out.Events = append(out.Events, EventBossKilled)
		}
		return true
	}
	return false
}
