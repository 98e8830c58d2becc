package invaders

// Event is something that happened during one tick.
type Event int

const (
	EventEnemyKilled Event = iota
	EventBossHit
	EventBossKilled
	EventPlayerHit
	EventStageCleared
	EventStageStarted
	EventGameOver
	EventGameClear
	EventRestarted
)

func (e Event) String() string {
	switch e {
	case EventEnemyKilled:
		return "enemy_killed"
	case EventBossHit:
		return "boss_hit"
	case EventBossKilled:
		return "boss_killed"
	case EventPlayerHit:
		return "player_hit"
	case EventStageCleared:
		return "stage_cleared"
	case EventStageStarted:
		return "stage_started"
	case EventGameOver:
		return "game_over"
	case EventGameClear:
		return "game_clear"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// LossReason tells why a run was lost.
type LossReason int

const (
	LossNone LossReason = iota
	LossLivesExhausted
	LossEnemyContact // An enemy touched the ship
	LossEnemyLanded  // A standard enemy passed the bottom of the canvas
)

func (r LossReason) String() string {
	switch r {
	case LossNone:
		return "none"
	case LossLivesExhausted:
		return "lives_exhausted"
	case LossEnemyContact:
		return "enemy_contact"
	case LossEnemyLanded:
		return "enemy_landed"
	default:
		return "unknown"
	}
}
