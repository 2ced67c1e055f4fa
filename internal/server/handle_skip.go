package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type SkipResponse struct {
	Finished   bool   `json:"finished"`
	NextClueID *int64 `json:"nextClueId,omitempty"`
}

func handleSkip(store Store) http.HandlerFunc {
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
			writeJSON(w, http.StatusOK, SkipResponse{Finished: true})
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		if _, err := store.GetOrCreateProgress(r.Context(), team, clue); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		// Skipping passes the clue: the skip penalty is scored from the
		// flag, and the entry counts as solved for sequencing.
		if err := store.MarkSkipped(r.Context(), team.ID, clue.ID); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		clues, err := store.ListClues(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		next, finished, err := advance(r.Context(), store, team, clues, clue)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		resp := SkipResponse{Finished: finished}
		if next != nil {
			resp.NextClueID = &next.ID
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
