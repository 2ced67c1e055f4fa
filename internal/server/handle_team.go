package server

import (
	"net/http"
	"strings"

	"github.com/trailworks/cluehunt/internal/hunt"
)

type RegisterRequest struct {
	Name string `json:"name"`
}

type RegisterResponse struct {
	TeamID      int64  `json:"teamId"`
	Token       string `json:"token"`
	Name        string `json:"name"`
	Started     bool   `json:"started"`
	FirstClueID *int64 `json:"firstClueId,omitempty"`
}

func handleRegister(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}

		// Duplicate names are allowed; the token differentiates teams.
		team, err := store.CreateTeam(r.Context(), req.Name, newToken())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		started, err := gameStarted(r.Context(), store)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		resp := RegisterResponse{
			TeamID:  team.ID,
			Token:   team.Token,
			Name:    team.Name,
			Started: started,
		}

		clues, err := store.ListClues(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if first := hunt.FirstClue(clues); first != nil {
			resp.FirstClueID = &first.ID
		}

		writeJSON(w, http.StatusCreated, resp)
	}
}

type MeResponse struct {
	TeamID        int64  `json:"teamId"`
	Name          string `json:"name"`
	Status        string `json:"status"` // waiting | playing | finished
	CurrentClueID *int64 `json:"currentClueId,omitempty"`
	Solved        int    `json:"solved"`
	Total         int    `json:"total"`
}

func handleTeamMe(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := teamFrom(r)

		started, err := gameStarted(r.Context(), store)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		clues, err := store.ListClues(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		entries, err := store.ProgressByTeam(r.Context(), team.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		resp := MeResponse{
			TeamID: team.ID,
			Name:   team.Name,
			Total:  len(clues),
		}
		for _, p := range entries {
			if p.SolvedAt != nil {
				resp.Solved++
			}
		}

		switch {
		case team.CompletedAt != nil:
			resp.Status = "finished"
		case !started:
			resp.Status = "waiting"
		default:
			resp.Status = "playing"
			if current := currentClue(clues, entries); current != nil {
				resp.CurrentClueID = &current.ID
			}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// currentClue is the first clue in sequence the team has not yet passed,
// or nil when every clue is behind them.
func currentClue(clues []hunt.Clue, entries []hunt.Progress) *hunt.Clue {
	passed := make(map[int64]bool, len(entries))
	for _, p := range entries {
		if p.SolvedAt != nil {
			passed[p.ClueID] = true
		}
	}
	for c := hunt.FirstClue(clues); c != nil; c = hunt.NextClue(clues, *c) {
		if !passed[c.ID] {
			return c
		}
	}
	return nil
}
