package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/trailworks/cluehunt/internal/hunt"
)

type AdminTeamRow struct {
	TeamID      int64   `json:"teamId"`
	Name        string  `json:"name"`
	Current     string  `json:"current"` // "3/6" or "Finished"
	Score       int     `json:"score"`
	Hints       int     `json:"hints"`
	Skips       int     `json:"skips"`
	Wrong       int     `json:"wrong"`
	StartedAt   string  `json:"startedAt"`
	CompletedAt *string `json:"completedAt,omitempty"`
}

type AdminOverviewResponse struct {
	Started     bool           `json:"started"`
	StartedAt   *string        `json:"startedAt,omitempty"`
	ActiveTeams int            `json:"activeTeams"`
	TotalClues  int            `json:"totalClues"`
	Teams       []AdminTeamRow `json:"teams"`
}

func handleAdminOverview(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		board, err := loadScoreboard(r.Context(), store)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		resp := AdminOverviewResponse{
			Started:     hunt.Started(board.startRaw),
			ActiveTeams: len(board.teams),
			TotalClues:  len(board.clues),
			Teams:       []AdminTeamRow{},
		}
		if _, err := hunt.ParseTime(board.startRaw); err == nil {
			resp.StartedAt = &board.startRaw
		}

		for _, team := range board.teams {
			score := board.scoreFor(team)
			row := AdminTeamRow{
				TeamID:    team.ID,
				Name:      team.Name,
				Score:     score.Points,
				Hints:     score.Hints,
				Skips:     score.Skips,
				Wrong:     score.Wrong,
				StartedAt: hunt.FormatTime(team.CreatedAt),
			}
			if team.CompletedAt != nil {
				row.Current = "Finished"
				completed := hunt.FormatTime(*team.CompletedAt)
				row.CompletedAt = &completed
			} else {
				row.Current = fmt.Sprintf("%d/%d",
					min(score.Solved+1, len(board.clues)), len(board.clues))
			}
			resp.Teams = append(resp.Teams, row)
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

type StartGameResponse struct {
	StartedAt string `json:"startedAt"`
}

// handleAdminStartGame stamps the shared start instant. Calling it again
// resets that instant, which shifts the elapsed-time baseline for every
// team — in-progress and completed alike.
func handleAdminStartGame(store Store, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startedAt := nowUTC()
		if err := store.SetConfig(r.Context(), hunt.KeyGameStartedAt, startedAt); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		logger.Info("game started", "started_at", startedAt)
		writeJSON(w, http.StatusOK, StartGameResponse{StartedAt: startedAt})
	}
}

// handleAdminReset clears all teams and progress; clues survive.
func handleAdminReset(store Store, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.ResetGame(r.Context()); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		logger.Info("game reset, all teams and progress cleared")
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
