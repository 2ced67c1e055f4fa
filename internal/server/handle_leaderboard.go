package server

import (
	"fmt"
	"net/http"

	"github.com/trailworks/cluehunt/internal/hunt"
)

type LeaderboardRow struct {
	Rank           int    `json:"rank"`
	Team           string `json:"team"`
	Score          int    `json:"score"`
	Completed      bool   `json:"completed"`
	Time           string `json:"time"`
	ElapsedSeconds *int64 `json:"elapsedSeconds,omitempty"`
}

func handleLeaderboard(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		board, err := loadScoreboard(r.Context(), store)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		standings := board.standings()
		rows := make([]LeaderboardRow, 0, len(standings))
		for _, s := range standings {
			rows = append(rows, leaderboardRow(s, len(board.clues)))
		}

		writeJSON(w, http.StatusOK, rows)
	}
}

func leaderboardRow(s hunt.Standing, totalClues int) LeaderboardRow {
	row := LeaderboardRow{
		Rank:      s.Rank,
		Team:      s.Team.Name,
		Score:     s.Score.Points,
		Completed: s.Team.CompletedAt != nil,
	}
	if row.Completed && s.Score.Elapsed != nil {
		row.Time = hunt.FormatDuration(*s.Score.Elapsed)
		secs := int64(s.Score.Elapsed.Seconds())
		row.ElapsedSeconds = &secs
	} else {
		row.Time = progressDisplay(s.Score.Solved, totalClues)
	}
	return row
}

// progressDisplay shows where an unfinished team currently is.
func progressDisplay(solved, total int) string {
	return fmt.Sprintf("Clue %d of %d", min(solved+1, total), total)
}
