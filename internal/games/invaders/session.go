package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Intent is the player's input for one tick, already resolved by the platform.
type Intent struct {
	Move    Move
	Fire    bool
	Restart bool
}

// TickReport describes what one Step did.
type TickReport struct {
	Tick   uint64
	Phase  Phase
	Events []Event
}

// Session is one run of the game: player, formation, bullets, score, lives
// and stage. It is not safe for concurrent use.
type Session struct {
	cfg      config.InvadersConfig
	tickRate int
	seed     int64
	rules    Rules
	rng      *core.RNG

	player        Player
	formation     Formation
	playerBullets []Bullet
	enemyBullets  []Bullet

	score     int
	lives     int
	stage     int
	phase     Phase
	loss      LossReason
	countdown int // Ticks left in PhaseStageClear
	tick      uint64
}

// NewSession creates a session at stage 1. The config must already be valid.
func NewSession(cfg config.InvadersConfig, tickRate int, seed int64) *Session {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	s := &Session{
		cfg:      cfg,
		tickRate: tickRate,
		seed:     seed,
		rules:    RulesFromConfig(cfg),
	}
	s.Restart()
	return s
}

// Restart resets the whole session to stage 1. The RNG is reseeded so a
// restarted run replays identically under identical input.
func (s *Session) Restart() {
	s.rng = core.NewRNG(s.seed)
	s.player = NewPlayer(s.cfg)
	s.score = 0
	s.lives = s.cfg.Gameplay.Lives
	s.loss = LossNone
	s.tick = 0
	s.startStage(1, nil)
}

// Step advances the session by one fixed tick.
func (s *Session) Step(in Intent) TickReport {
	if in.Restart {
		s.Restart()
		return TickReport{Tick: s.tick, Phase: s.phase, Events: []Event{EventRestarted}}
	}

	var report TickReport
	switch s.phase {
	case PhasePlaying:
		s.tick++
		s.simulate(in, &report)
	case PhaseStageClear:
		s.tick++
		s.tickCountdown(&report)
	}

	report.Tick = s.tick
	report.Phase = s.phase
	return report
}

// simulate runs one playing tick in fixed order.
func (s *Session) simulate(in Intent, report *TickReport) {
	s.formation.Advance(s.cfg.Canvas.Width)
	if b, ok := s.formation.MaybeFire(s.rng, s.cfg.Bullet); ok {
		s.enemyBullets = append(s.enemyBullets, b)
	}

	s.player.Steer(in.Move)
	s.player.Move(s.cfg.Canvas.Width)
	if b, ok := Fire(&s.player, in.Fire, s.cfg.Bullet); ok {
		s.playerBullets = append(s.playerBullets, b)
	}

	s.playerBullets, s.enemyBullets = AdvanceBullets(s.playerBullets, s.enemyBullets, s.cfg.Bullet.Speed, s.cfg.Canvas.Height)

	out := ResolveCollisions(&s.formation, s.playerBullets, s.enemyBullets, s.player, s.lives, s.rules)
	s.playerBullets = out.PlayerBullets
	s.enemyBullets = out.EnemyBullets
	s.score += out.ScoreGained
	s.lives = out.Lives
	report.Events = append(report.Events, out.Events...)

	if out.Loss != LossNone {
		s.lose(out.Loss, report)
		return
	}
	s.checkClear(report)
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Stage returns the current stage, 1-based.
func (s *Session) Stage() int { return s.stage }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Running reports whether the simulation is live (not paused between stages
// and not over).
func (s *Session) Running() bool { return s.phase == PhasePlaying }

// LossReason returns why the run was lost, or LossNone.
func (s *Session) LossReason() LossReason { return s.loss }

// Tick returns the number of simulated ticks since the last restart.
func (s *Session) Tick() uint64 { return s.tick }

// Countdown returns the ticks left before the next stage spawns.
func (s *Session) Countdown() int { return s.countdown }

// Config returns the config the session runs with.
func (s *Session) Config() config.InvadersConfig { return s.cfg }

// BossHealthPercent returns the boss's remaining health in [0, 100], or false
// when the current stage has no live boss.
func (s *Session) BossHealthPercent() (int, bool) {
	e, b, ok := s.formation.Boss()
	if !ok || !e.Alive {
		return 0, false
	}
	return b.HealthPercent(), true
}

// EnemyView is a read-only copy of one enemy.
type EnemyView struct {
	Box    core.RectF
	Alive  bool
	IsBoss bool
}

// View is a copy of everything a renderer draws. Mutating it does not
// affect the session.
type View struct {
	Player        core.RectF
	Enemies       []EnemyView
	PlayerBullets []core.RectF
	EnemyBullets  []core.RectF
}

// View returns a copy of the drawable state.
func (s *Session) View() View {
	v := View{
		Player:        s.player.Box,
		Enemies:       make([]EnemyView, len(s.formation.Enemies)),
		PlayerBullets: make([]core.RectF, len(s.playerBullets)),
		EnemyBullets:  make([]core.RectF, len(s.enemyBullets)),
	}
	for i := range s.formation.Enemies {
		e := &s.formation.Enemies[i]
		v.Enemies[i] = EnemyView{Box: e.Box, Alive: e.Alive, IsBoss: e.IsBoss()}
	}
	for i, b := range s.playerBullets {
		v.PlayerBullets[i] = b.Box
	}
	for i, b := range s.enemyBullets {
		v.EnemyBullets[i] = b.Box
	}
	return v
}
