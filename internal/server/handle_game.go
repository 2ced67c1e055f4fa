package server

import (
	"net/http"

	"github.com/trailworks/cluehunt/internal/hunt"
)

type GameStatusResponse struct {
	Started    bool    `json:"started"`
	StartedAt  *string `json:"startedAt,omitempty"`
	TotalClues int     `json:"totalClues"`
}

func handleGameStatus(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := store.GetConfig(r.Context(), hunt.KeyGameStartedAt)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		clues, err := store.ListClues(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		resp := GameStatusResponse{
			Started:    hunt.Started(raw),
			TotalClues: len(clues),
		}
		// Expose the instant only when it is an actual timestamp.
		if _, perr := hunt.ParseTime(raw); perr == nil {
			resp.StartedAt = &raw
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
