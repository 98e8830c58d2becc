package invaders

import (
	"fmt"
	"math"
)

// Phase is the top-level state of a session.
type Phase string

const (
	PhasePlaying    Phase = "playing"
	PhaseStageClear Phase = "stage_clear" // Countdown before the next stage spawns
	PhaseWon        Phase = "won"
	PhaseLost       Phase = "lost"
)

// Terminal reports whether the phase only accepts a restart.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// stageClearTicks converts the configured delay in seconds to ticks.
func stageClearTicks(seconds float64, tickRate int) int {
	return int(math.Round(seconds * float64(tickRate)))
}

// checkClear moves a playing session on once its formation is empty.
func (s *Session) checkClear(report *TickReport) {
	if !s.formation.Cleared() {
		return
	}
	report.Events = append(report.Events, EventStageCleared)

	if s.stage >= s.cfg.Gameplay.MaxStage {
		s.phase = PhaseWon
		report.Events = append(report.Events, EventGameClear)
		return
	}
	s.phase = PhaseStageClear
	s.countdown = stageClearTicks(s.cfg.Gameplay.StageClearDelay, s.tickRate)
}

// tickCountdown runs one tick of the stage-clear pause and spawns the next
// stage when it expires.
func (s *Session) tickCountdown(report *TickReport) {
	s.countdown--
	if s.countdown > 0 {
		return
	}
	s.startStage(s.stage+1, report)
}

// startStage spawns a fresh formation and clears every bullet in flight.
func (s *Session) startStage(stage int, report *TickReport) {
	if stage > s.cfg.Gameplay.MaxStage {
		panic(fmt.Sprintf("invaders: stage overflow: %d > %d", stage, s.cfg.Gameplay.MaxStage))
	}
	s.stage = stage
	s.formation = SpawnStage(stage, s.cfg)
	s.playerBullets = nil
	s.enemyBullets = nil
	s.countdown = 0
	s.phase = PhasePlaying
	if report != nil {
		report.Events = append(report.Events, EventStageStarted)
	}
}

// lose ends the run.
func (s *Session) lose(reason LossReason, report *TickReport) {
	s.phase = PhaseLost
	s.loss = reason
	report.Events = append(report.Events, EventGameOver)
}
