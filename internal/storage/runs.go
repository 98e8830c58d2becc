package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
	OutcomeQuit Outcome = "quit" // Player left before the run ended
)

// ErrInvalidOutcome is returned when saving a run with an unknown outcome.
var ErrInvalidOutcome = errors.New("storage: invalid run outcome")

// Valid reports whether o is one of the known outcomes.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomeWon, OutcomeLost, OutcomeQuit:
		return true
	}
	return false
}

// Run is one finished play-through.
type Run struct {
	ID        string    `json:"id"`
	GameID    string    `json:"game_id"`
	Score     int       `json:"score"`
	Stage     int       `json:"stage"`
	Outcome   Outcome   `json:"outcome"`
	Ticks     uint64    `json:"ticks"`
	CreatedAt time.Time `json:"created_at"`
}

const runColumns = `id, game_id, score, stage, outcome, ticks, created_at`

// SaveRun records a finished run and returns its ID.
// A random UUID is assigned when run.ID is empty.
func (s *Store) SaveRun(run Run) (string, error) {
	if !run.Outcome.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidOutcome, run.Outcome)
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	} else if _, err := uuid.Parse(run.ID); err != nil {
		return "", fmt.Errorf("storage: invalid run id %q: %w", run.ID, err)
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, game_id, score, stage, outcome, ticks)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.GameID, run.Score, run.Stage, string(run.Outcome), int64(run.Ticks), //#nosec G115 -- tick counts fit in int64
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.ID, nil
}

// RunByID retrieves a run by its ID. Returns nil, nil if it does not exist.
func (s *Store) RunByID(id string) (*Run, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &run, nil
}

// RecentRuns retrieves the most recent runs, newest first.
// gameID filters by game when non-empty; limit <= 0 means 20.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	var (
		rows *sql.Rows
		err  error
	)
	if gameID == "" {
		rows, err = s.db.Query(
			`SELECT `+runColumns+` FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?`,
			limit,
		)
	} else {
		rows, err = s.db.Query(
			`SELECT `+runColumns+` FROM runs WHERE game_id = ? ORDER BY created_at DESC, rowid DESC LIMIT ?`,
			gameID, limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(r rowScanner) (Run, error) {
	var (
		run       Run
		outcome   string
		ticks     int64
		createdAt any
	)
	if err := r.Scan(&run.ID, &run.GameID, &run.Score, &run.Stage, &outcome, &ticks, &createdAt); err != nil {
		return Run{}, err
	}
	run.Outcome = Outcome(outcome)
	run.Ticks = uint64(ticks) //#nosec G115 -- stored from a uint64
	run.CreatedAt = parseTimestamp(createdAt)
	return run, nil
}
