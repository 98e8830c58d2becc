package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

func newTestServer(t *testing.T) (*Server, *storage.Store) {
	t.Helper()
	store, err := storage.Open(t.TempDir() + "/web.db")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return NewServer(":0", store, log.New(io.Discard)), store
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGames(t *testing.T) {
	s, store := newTestServer(t)
	_, err := store.SaveScore("invaders", 300)
	require.NoError(t, err)
	_, err = store.SaveRun(storage.Run{GameID: "invaders", Score: 300, Stage: 3, Outcome: storage.OutcomeWon})
	require.NoError(t, err)

	rec := get(t, s, "/api/games")
	require.Equal(t, http.StatusOK, rec.Code)

	var games []gameResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &games))
	require.Len(t, games, 2)
	assert.Equal(t, gameResponse{ID: "invaders", Title: "Invaders", HighScore: 300, Plays: 1, Wins: 1}, games[0])
	assert.Equal(t, "invaders_classic", games[1].ID)
	assert.Zero(t, games[1].Plays)
}

func TestScores(t *testing.T) {
	s, store := newTestServer(t)
	for _, score := range []int{50, 200, 120} {
		_, err := store.SaveScore("invaders", score)
		require.NoError(t, err)
	}

	rec := get(t, s, "/api/scores/invaders?limit=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var scores []storage.ScoreEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &scores))
	require.Len(t, scores, 2)
	assert.Equal(t, 200, scores[0].Score)
	assert.Equal(t, 120, scores[1].Score)

	rec = get(t, s, "/api/scores/invaders_classic")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestScoresErrors(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		path string
		code int
	}{
		{"/api/scores/pacman", http.StatusNotFound},
		{"/api/scores/invaders?limit=abc", http.StatusBadRequest},
		{"/api/scores/invaders?limit=0", http.StatusBadRequest},
		{"/api/runs?game=pacman", http.StatusNotFound},
		{"/api/nothing", http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			rec := get(t, s, tc.path)
			assert.Equal(t, tc.code, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestRuns(t *testing.T) {
	s, store := newTestServer(t)
	id, err := store.SaveRun(storage.Run{GameID: "invaders", Score: 90, Stage: 1, Outcome: storage.OutcomeLost, Ticks: 1200})
	require.NoError(t, err)
	_, err = store.SaveRun(storage.Run{GameID: "invaders_classic", Score: 40, Stage: 1, Outcome: storage.OutcomeQuit})
	require.NoError(t, err)

	rec := get(t, s, "/api/runs")
	require.Equal(t, http.StatusOK, rec.Code)
	var runs []storage.Run
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &runs))
	assert.Len(t, runs, 2)

	rec = get(t, s, "/api/runs?game=invaders")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, id, runs[0].ID)

	rec = get(t, s, "/api/runs/"+id)
	require.Equal(t, http.StatusOK, rec.Code)
	var run storage.Run
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))
	assert.Equal(t, storage.OutcomeLost, run.Outcome)
	assert.Equal(t, uint64(1200), run.Ticks)

	rec = get(t, s, "/api/runs/00000000-0000-0000-0000-000000000000")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/games"},
		{http.MethodDelete, "/api/runs/00000000-0000-0000-0000-000000000000"},
		{http.MethodPut, "/api/scores/invaders"},
		{http.MethodPost, "/healthz"},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, req)
			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}

	// Unknown paths stay 404 whatever the method
	req := httptest.NewRequest(http.MethodPost, "/api/nope", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
