package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/trailworks/cluehunt/internal/hunt"
)

type AnswerRequest struct {
	Answer string `json:"answer"`
}

type AnswerResponse struct {
	Correct       bool   `json:"correct"`
	Finished      bool   `json:"finished"`
	NextClueID    *int64 `json:"nextClueId,omitempty"`
	WrongAttempts int    `json:"wrongAttempts,omitempty"`
}

func handleAnswer(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := teamFrom(r)

		clueID, err := strconv.ParseInt(chi.URLParam(r, "clueID"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid clue id")
			return
		}

		var req AnswerRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
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
			writeJSON(w, http.StatusOK, AnswerResponse{Finished: true})
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

		spec := hunt.ParseAnswerSpec(clue.Kind, clue.AnswerPayload)
		if !spec.Check(req.Answer) {
			resp := AnswerResponse{WrongAttempts: prog.WrongAttempts}
			if spec.CountsWrong(req.Answer) {
				if err := store.RecordWrongAttempt(r.Context(), team.ID, clue.ID); err != nil {
					writeError(w, http.StatusInternalServerError, "internal error")
					return
				}
				resp.WrongAttempts++
			}
			writeJSON(w, http.StatusOK, resp)
			return
		}

		// Solve first, completion second: a crash in between leaves the
		// team in-progress and re-deriving on retry.
		if err := store.MarkSolved(r.Context(), team.ID, clue.ID); err != nil {
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

		resp := AnswerResponse{Correct: true, Finished: finished}
		if next != nil {
			resp.NextClueID = &next.ID
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
