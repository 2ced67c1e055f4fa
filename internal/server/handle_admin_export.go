package server

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/trailworks/cluehunt/internal/hunt"
)

// ExportClueCell is one team's record for one clue.
type ExportClueCell struct {
	ClueID        int64   `json:"clueId"`
	Variant       string  `json:"variant"`
	StartedAt     string  `json:"startedAt"`
	SolvedAt      *string `json:"solvedAt,omitempty"`
	UsedHint      bool    `json:"usedHint"`
	Skipped       bool    `json:"skipped"`
	WrongAttempts int     `json:"wrongAttempts"`
}

type ExportTeamRow struct {
	TeamID      int64                     `json:"teamId"`
	Name        string                    `json:"name"`
	CreatedAt   string                    `json:"createdAt"`
	CompletedAt *string                   `json:"completedAt,omitempty"`
	Score       int                       `json:"score"`
	Solved      int                       `json:"solved"`
	Hints       int                       `json:"hints"`
	Skips       int                       `json:"skips"`
	Wrong       int                       `json:"wrong"`
	Clues       map[string]ExportClueCell `json:"clues"` // keyed by clue id
}

type ExportResponse struct {
	ExportedAt string          `json:"exportedAt"`
	Started    bool            `json:"started"`
	StartedAt  string          `json:"startedAt,omitempty"`
	Teams      []ExportTeamRow `json:"teams"`
}

// handleAdminExport dumps every team with its full per-clue record.
// JSON by default; ?format=csv flattens the per-clue record into columns
// ordered by clue sequence.
func handleAdminExport(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		board, err := loadScoreboard(r.Context(), store)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		rows := make([]ExportTeamRow, 0, len(board.teams))
		for _, team := range board.teams {
			score := board.scoreFor(team)
			row := ExportTeamRow{
				TeamID:    team.ID,
				Name:      team.Name,
				CreatedAt: hunt.FormatTime(team.CreatedAt),
				Score:     score.Points,
				Solved:    score.Solved,
				Hints:     score.Hints,
				Skips:     score.Skips,
				Wrong:     score.Wrong,
				Clues:     make(map[string]ExportClueCell),
			}
			if team.CompletedAt != nil {
				completed := hunt.FormatTime(*team.CompletedAt)
				row.CompletedAt = &completed
			}
			for _, p := range board.entries[team.ID] {
				cell := ExportClueCell{
					ClueID:        p.ClueID,
					Variant:       string(p.Variant),
					StartedAt:     hunt.FormatTime(p.StartedAt),
					UsedHint:      p.UsedHint,
					Skipped:       p.Skipped,
					WrongAttempts: p.WrongAttempts,
				}
				if p.SolvedAt != nil {
					solved := hunt.FormatTime(*p.SolvedAt)
					cell.SolvedAt = &solved
				}
				row.Clues[strconv.FormatInt(p.ClueID, 10)] = cell
			}
			rows = append(rows, row)
		}

		if r.URL.Query().Get("format") == "csv" {
			writeExportCSV(w, board.clues, rows)
			return
		}

		writeJSON(w, http.StatusOK, ExportResponse{
			ExportedAt: nowUTC(),
			Started:    hunt.Started(board.startRaw),
			StartedAt:  board.startRaw,
			Teams:      rows,
		})
	}
}

func writeExportCSV(w http.ResponseWriter, clues []hunt.Clue, rows []ExportTeamRow) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="export.csv"`)
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"team_id", "name", "created_at", "completed_at",
		"score", "solved", "hints", "skips", "wrong",
	}
	for _, c := range clues {
		prefix := fmt.Sprintf("clue_%d", c.ID)
		header = append(header,
			prefix+"_variant",
			prefix+"_started_at",
			prefix+"_solved_at",
			prefix+"_hint",
			prefix+"_skipped",
			prefix+"_wrong",
		)
	}
	cw.Write(header)

	for _, row := range rows {
		completed := ""
		if row.CompletedAt != nil {
			completed = *row.CompletedAt
		}
		rec := []string{
			strconv.FormatInt(row.TeamID, 10),
			row.Name,
			row.CreatedAt,
			completed,
			strconv.Itoa(row.Score),
			strconv.Itoa(row.Solved),
			strconv.Itoa(row.Hints),
			strconv.Itoa(row.Skips),
			strconv.Itoa(row.Wrong),
		}
		for _, c := range clues {
			cell, ok := row.Clues[strconv.FormatInt(c.ID, 10)]
			if !ok {
				rec = append(rec, "", "", "", "", "", "")
				continue
			}
			solved := ""
			if cell.SolvedAt != nil {
				solved = *cell.SolvedAt
			}
			rec = append(rec,
				cell.Variant,
				cell.StartedAt,
				solved,
				strconv.FormatBool(cell.UsedHint),
				strconv.FormatBool(cell.Skipped),
				strconv.Itoa(cell.WrongAttempts),
			)
		}
		cw.Write(rec)
	}
}
