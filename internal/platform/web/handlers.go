package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// gameResponse is one entry of /api/games.
type gameResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	HighScore int    `json:"high_score"`
	Plays     int    `json:"plays"`
	Wins      int    `json:"wins"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGames(w http.ResponseWriter, _ *http.Request) {
	games := registry.List()
	out := make([]gameResponse, 0, len(games))
	for _, g := range games {
		entry := gameResponse{ID: g.ID, Title: g.Title}
		if s.store != nil {
			stats, err := s.store.GetGameStats(g.ID)
			if err != nil {
				s.serverError(w, err)
				return
			}
			entry.HighScore = stats.HighScore
			entry.Plays = stats.GamesCount
			entry.Wins = stats.Wins
		}
		out = append(out, entry)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["game"]
	if !registry.Exists(gameID) {
		writeError(w, http.StatusNotFound, "unknown game")
		return
	}
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	scores := []storage.ScoreEntry{}
	if s.store != nil {
		got, err := s.store.TopScores(gameID, limit)
		if err != nil {
			s.serverError(w, err)
			return
		}
		if got != nil {
			scores = got
		}
	}
	writeJSON(w, http.StatusOK, scores)
}

// handleRuns lists recent runs, optionally filtered with ?game=.
func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	if gameID != "" && !registry.Exists(gameID) {
		writeError(w, http.StatusNotFound, "unknown game")
		return
	}
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	runs := []storage.Run{}
	if s.store != nil {
		got, err := s.store.RecentRuns(gameID, limit)
		if err != nil {
			s.serverError(w, err)
			return
		}
		if got != nil {
			runs = got
		}
	}
	writeJSON(w, http.StatusOK, runs)
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if s.store == nil {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}

	run, err := s.store.RunByID(id)
	if err != nil {
		s.serverError(w, err)
		return
	}
	if run == nil {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// parseLimit reads ?limit=, defaulting to 10 and capping at 100.
func parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultLimit, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		writeError(w, http.StatusBadRequest, "limit must be a positive integer")
		return 0, false
	}
	if n > maxLimit {
		n = maxLimit
	}
	return n, true
}

func (s *Server) serverError(w http.ResponseWriter, err error) {
	s.logger.Error("request failed", "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Client may have gone away
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
