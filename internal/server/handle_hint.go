package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

type HintResponse struct {
	Finished bool   `json:"finished"`
	Revealed bool   `json:"revealed"`
	Hint     string `json:"hint,omitempty"`
}

func handleHint(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := teamFrom(r)

		clueID, err := strconv.ParseInt(chi.URLParam(r, "clueID"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid clue id")
			return
		}

		started, err := gameStarted(r.Context(), store)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if !started {
			writeError(w, http.StatusConflict, "game has not started")
			return
		}

		clue, err := store.ClueByID(r.Context(), clueID)
		if errors.Is(err, ErrNotFound) {
			writeJSON(w, http.StatusOK, HintResponse{Finished: true})
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		prog, err := store.GetOrCreateProgress(r.Context(), team, clue)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		// The hint unlocks a short while after the team first sees the
		// clue. Once revealed it stays available.
		if !prog.UsedHint {
			weights, err := loadWeights(r.Context(), store)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
			if time.Since(prog.StartedAt) < weights.HintDelay {
				writeError(w, http.StatusConflict, "hint not available yet")
				return
			}
			if err := store.MarkHintUsed(r.Context(), team.ID, clue.ID); err != nil {
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
		}

		writeJSON(w, http.StatusOK, HintResponse{Revealed: true, Hint: clue.HintText})
	}
}
